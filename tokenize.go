package serverstat

import "strings"

// Tokenize splits one record line into its fields. A double quote toggles
// quotation mode and is never emitted; a space outside quotes ends the
// current token (consecutive separators produce empty tokens), a space
// inside quotes is kept verbatim. The final token is always emitted, so an
// empty line yields a single empty token. An unterminated quote is
// tolerated.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false

	for _, c := range line {
		switch c {
		case '"':
			inQuote = !inQuote
		case ' ':
			if inQuote {
				current.WriteRune(c)
			} else {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(c)
		}
	}

	return append(tokens, current.String())
}
