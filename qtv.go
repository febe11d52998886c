package serverstat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quakeworld/serverstat/qwinfo"
	"github.com/quakeworld/serverstat/qwtext"
)

// QtvStream describes the broadcast relay stream a server announces in
// its status response.
type QtvStream struct {
	ID          uint32   `json:"id"`
	Name        string   `json:"name"`
	Number      uint32   `json:"number"`
	Address     Hostport `json:"address"`
	ClientCount uint32   `json:"client_count"`
	ClientNames []string `json:"client_names"`
}

// ParseQtvStream decodes a "qtv ..." announcement record. The locator
// token has the form "<number>@<host>:<port>"; a missing @, a malformed
// number or a missing port fall back to zero values instead of failing
// the record.
func ParseQtvStream(record []byte) (QtvStream, error) {
	tokens := Tokenize(qwtext.Decode(record))
	if len(tokens) < 5 {
		return QtvStream{}, fmt.Errorf("%w: want at least 5 fields, got %d", ErrInvalidRecord, len(tokens))
	}

	id, err := strconv.ParseUint(tokens[1], 10, 32)
	if err != nil {
		return QtvStream{}, fmt.Errorf("%w: stream id %q", ErrInvalidRecord, tokens[1])
	}

	clientCount, err := strconv.ParseUint(tokens[4], 10, 32)
	if err != nil {
		return QtvStream{}, fmt.Errorf("%w: client count %q", ErrInvalidRecord, tokens[4])
	}

	var number uint32
	locator := tokens[3]

	if prefix, rest, found := strings.Cut(locator, "@"); found {
		if n, err := strconv.ParseUint(prefix, 10, 32); err == nil {
			number = uint32(n)
		}
		locator = rest
	}

	address := Hostport{Host: locator}
	if host, portStr, found := strings.Cut(locator, ":"); found {
		address.Host = host
		if port, err := strconv.ParseUint(portStr, 10, 16); err == nil {
			address.Port = uint16(port)
		}
	}

	return QtvStream{
		ID:          uint32(id),
		Name:        tokens[2],
		Number:      number,
		Address:     address,
		ClientCount: uint32(clientCount),
		ClientNames: []string{},
	}, nil
}

// QtvServer is the reduced view of a server running QTV broadcast
// software: a relay has no teams or frags, only connected viewers.
type QtvServer struct {
	Settings QtvSettings `json:"settings"`
	Clients  []QtvClient `json:"clients"`
}

// QtvSettings keeps the few serverinfo keys a relay actually publishes.
type QtvSettings struct {
	Hostname   string `json:"hostname"`
	Maxclients uint32 `json:"maxclients"`
	Version    string `json:"version"`
}

// QtvClient is a viewer connected directly to the relay.
type QtvClient struct {
	ID   uint32 `json:"id"`
	Time uint32 `json:"time"`
	Name string `json:"name"`
}

// NewQtvServer projects the QTV view of a snapshot.
func NewQtvServer(server *QuakeServer) QtvServer {
	clients := make([]QtvClient, 0, len(server.Clients))
	for _, client := range server.Clients {
		clients = append(clients, QtvClient{ID: client.ID, Time: client.Time, Name: client.Name})
	}

	return QtvServer{
		Settings: newQtvSettings(server.Settings),
		Clients:  clients,
	}
}

func newQtvSettings(settings qwinfo.Settings) QtvSettings {
	return QtvSettings{
		Hostname:   settings.Hostname(),
		Maxclients: uint32(settings.Maxclients()),
		Version:    settings.Version(),
	}
}
