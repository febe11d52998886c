package serverstat

import "errors"

// Structural errors invalidate a whole response; record errors are
// reported per line and callers are expected to drop the line.
var (
	// ErrHeaderMismatch means a response does not start with the
	// protocol magic bytes for the query that produced it.
	ErrHeaderMismatch = errors.New("serverstat: invalid response header")

	// ErrBodyTooShort means a response passed the header check but its
	// body is too small to contain anything decodable.
	ErrBodyTooShort = errors.New("serverstat: invalid response body")

	// ErrInvalidRecord means a record has fewer fields than its layout
	// requires, or a numeric field failed to parse.
	ErrInvalidRecord = errors.New("serverstat: invalid record")

	// ErrAddressFormat means a host:port string could not be parsed.
	ErrAddressFormat = errors.New("serverstat: invalid address, expected host:port")
)
