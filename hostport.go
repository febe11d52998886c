package serverstat

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hostport is a host:port server address.
type Hostport struct {
	Host string
	Port uint16
}

// NewHostport builds a Hostport from its parts.
func NewHostport(host string, port uint16) Hostport {
	return Hostport{Host: host, Port: port}
}

// ParseHostport parses an address of the form "host:port".
func ParseHostport(address string) (Hostport, error) {
	host, portStr, found := strings.Cut(address, ":")
	if !found {
		return Hostport{}, fmt.Errorf("%w: %q", ErrAddressFormat, address)
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return Hostport{}, fmt.Errorf("%w: %q", ErrAddressFormat, address)
	}

	return Hostport{Host: host, Port: uint16(port)}, nil
}

func (h Hostport) String() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// MarshalJSON renders the address as a single "host:port" string.
func (h Hostport) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hostport) UnmarshalJSON(data []byte) error {
	var address string
	if err := json.Unmarshal(data, &address); err != nil {
		return err
	}

	parsed, err := ParseHostport(address)
	if err != nil {
		return err
	}

	*h = parsed

	return nil
}
