package serverstat

import (
	"context"
	"encoding/json"
	"net"
	"strings"

	"github.com/quakeworld/serverstat/qwinfo"
)

// QuakeServer is one decoded snapshot of a live server: its settings,
// connected clients, optional QTV stream and the classification derived
// from its version string.
type QuakeServer struct {
	ServerType   ServerType
	SoftwareType SoftwareType
	Address      Hostport
	IP           string
	Settings     qwinfo.Settings
	Clients      []QuakeClient
	QtvStream    *QtvStream
	Geo          GeoInfo
}

// NewQuakeServer assembles a snapshot from a decoded status response.
// When the server advertises a public hostport setting it replaces the
// queried address.
func NewQuakeServer(queriedAddress string, status StatusResponse) (*QuakeServer, error) {
	addressStr := status.Settings.Hostport()
	if addressStr == "" {
		addressStr = queriedAddress
	}

	address, err := ParseHostport(addressStr)
	if err != nil {
		return nil, err
	}

	version := status.Settings.Version()

	return &QuakeServer{
		ServerType:   ServerTypeFromVersion(version),
		SoftwareType: SoftwareTypeFromVersion(version),
		Address:      address,
		Settings:     status.Settings,
		Clients:      status.Clients,
		QtvStream:    status.QtvStream,
		Geo:          GeoFromSettings(status.Settings),
	}, nil
}

type serverCommon struct {
	ServerType   ServerType   `json:"server_type"`
	SoftwareType SoftwareType `json:"software_type"`
	Host         string       `json:"host"`
	IP           string       `json:"ip"`
	Port         uint16       `json:"port"`
	Address      Hostport     `json:"address"`
}

func (s QuakeServer) common() serverCommon {
	return serverCommon{
		ServerType:   s.ServerType,
		SoftwareType: s.SoftwareType,
		Host:         s.Address.Host,
		IP:           s.IP,
		Port:         s.Address.Port,
		Address:      s.Address,
	}
}

// MarshalJSON shapes the snapshot by its software type: relays and
// proxies serialize their reduced views, everything else serializes the
// full game view.
func (s QuakeServer) MarshalJSON() ([]byte, error) {
	switch s.SoftwareType {
	case SoftwareTypeQtv:
		return json.Marshal(struct {
			serverCommon
			QtvServer
			Geo GeoInfo `json:"geo"`
		}{s.common(), NewQtvServer(&s), s.Geo})
	case SoftwareTypeQwfwd:
		return json.Marshal(struct {
			serverCommon
			QwfwdServer
			Geo GeoInfo `json:"geo"`
		}{s.common(), NewQwfwdServer(&s), s.Geo})
	default:
		return json.Marshal(struct {
			serverCommon
			GameServer
			Geo GeoInfo `json:"geo"`
		}{s.common(), NewGameServer(&s), s.Geo})
	}
}

// resolveIPv4 maps the queried address to a dotted-quad IP, best effort:
// lookup failures yield an empty string, never an error.
func resolveIPv4(ctx context.Context, address string) string {
	host, _, _ := strings.Cut(address, ":")

	if ip := net.ParseIP(host); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
		return ""
	}

	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(ips) == 0 {
		return ""
	}

	return ips[0].To4().String()
}
