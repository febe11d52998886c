package serverstat

import "github.com/quakeworld/serverstat/qwinfo"

// QwfwdServer is the reduced view of a QWFWD forwarding proxy: clients
// pass through it on their way to a game server, so only identity and
// connect time are meaningful.
type QwfwdServer struct {
	Settings QwfwdSettings `json:"settings"`
	Clients  []QwfwdClient `json:"clients"`
}

// QwfwdSettings keeps the serverinfo keys a proxy publishes, including
// the location hints proxies tend to advertise.
type QwfwdSettings struct {
	Hostname    string `json:"hostname"`
	Maxclients  uint32 `json:"maxclients"`
	Version     string `json:"version"`
	City        string `json:"city,omitempty"`
	Coords      string `json:"coords,omitempty"`
	Countrycode string `json:"countrycode,omitempty"`
	Hostport    string `json:"hostport,omitempty"`
}

// QwfwdClient is a client connected through the proxy.
type QwfwdClient struct {
	ID   uint32 `json:"id"`
	Time uint32 `json:"time"`
	Name string `json:"name"`
}

// NewQwfwdServer projects the proxy view of a snapshot.
func NewQwfwdServer(server *QuakeServer) QwfwdServer {
	clients := make([]QwfwdClient, 0, len(server.Clients))
	for _, client := range server.Clients {
		clients = append(clients, QwfwdClient{ID: client.ID, Time: client.Time, Name: client.Name})
	}

	return QwfwdServer{
		Settings: newQwfwdSettings(server.Settings),
		Clients:  clients,
	}
}

func newQwfwdSettings(settings qwinfo.Settings) QwfwdSettings {
	return QwfwdSettings{
		Hostname:    settings.Hostname(),
		Maxclients:  uint32(settings.Maxclients()),
		Version:     settings.Version(),
		City:        settings.Get("city"),
		Coords:      settings.Get("coords"),
		Countrycode: settings.Get("countrycode"),
		Hostport:    settings.Hostport(),
	}
}
