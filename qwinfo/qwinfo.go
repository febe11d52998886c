// Package qwinfo parses the \key\value serverinfo string published by
// QuakeWorld servers.
package qwinfo

import (
	"strconv"
	"strings"
)

// Settings is the parsed serverinfo key/value map.
type Settings map[string]string

// Parse decodes a serverinfo string of the form \key\value\key\value.
// The leading backslash is optional and a trailing key without a value
// maps to the empty string. Empty input yields an empty, usable map.
func Parse(s string) Settings {
	settings := Settings{}

	parts := strings.Split(strings.TrimPrefix(s, `\`), `\`)
	for i := 0; i < len(parts); i += 2 {
		key := parts[i]
		if key == "" {
			continue
		}
		value := ""
		if i+1 < len(parts) {
			value = parts[i+1]
		}
		settings[key] = value
	}

	return settings
}

// Get returns the value for key, or the empty string.
func (s Settings) Get(key string) string { return s[key] }

// Has reports whether key is present.
func (s Settings) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Int returns the value for key parsed as an integer, or zero when the
// key is absent or not numeric.
func (s Settings) Int(key string) int {
	n, _ := strconv.Atoi(s[key])
	return n
}

// Hostname returns the advertised server name.
func (s Settings) Hostname() string { return s["hostname"] }

// Hostport returns the advertised public address, when the server
// publishes one.
func (s Settings) Hostport() string { return s["hostport"] }

// Version returns the server software version string.
func (s Settings) Version() string { return s["*version"] }

// Maxclients returns the advertised client slot count.
func (s Settings) Maxclients() int { return s.Int("maxclients") }

// Teamplay returns the teamplay mode; any value above zero means team
// scoring is active.
func (s Settings) Teamplay() int { return s.Int("teamplay") }

// Map returns the current map name.
func (s Settings) Map() string { return s["map"] }
