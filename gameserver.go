package serverstat

import (
	"slices"

	"github.com/quakeworld/serverstat/qwinfo"
	"github.com/quakeworld/serverstat/qwtext"
)

// GameServer is the classified view of a game host: clients split into
// players and spectators, with team standings when teamplay is on.
type GameServer struct {
	Settings   qwinfo.Settings `json:"settings"`
	Teams      []Team          `json:"teams"`
	Players    []Player        `json:"players"`
	Spectators []Spectator     `json:"spectators"`
	QtvStream  *QtvStream      `json:"qtv_stream"`
}

// Player is a client taking part in the match.
type Player struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Team        string `json:"team"`
	Frags       int32  `json:"frags"`
	Ping        uint32 `json:"ping"`
	Time        uint32 `json:"time"`
	TopColor    uint8  `json:"top_color"`
	BottomColor uint8  `json:"bottom_color"`
	Skin        string `json:"skin"`
	AuthCC      string `json:"auth_cc"`
	IsBot       bool   `json:"is_bot"`
}

// Spectator is a client watching the match; only identity survives the
// classification.
type Spectator struct {
	ID     uint32 `json:"id"`
	Name   string `json:"name"`
	AuthCC string `json:"auth_cc"`
	IsBot  bool   `json:"is_bot"`
}

// PlayerFromClient copies the playing fields out of a raw client record.
func PlayerFromClient(client QuakeClient) Player {
	return Player{
		ID:          client.ID,
		Name:        client.Name,
		Team:        client.Team,
		Frags:       client.Frags,
		Ping:        client.Ping,
		Time:        client.Time,
		TopColor:    client.TopColor,
		BottomColor: client.BottomColor,
		Skin:        client.Skin,
		AuthCC:      client.AuthCC,
		IsBot:       client.IsBot,
	}
}

// SpectatorFromClient copies the identity fields out of a raw client
// record.
func SpectatorFromClient(client QuakeClient) Spectator {
	return Spectator{
		ID:     client.ID,
		Name:   client.Name,
		AuthCC: client.AuthCC,
		IsBot:  client.IsBot,
	}
}

// NewGameServer classifies a snapshot's clients into the game view.
// Clients are ordered by display name; with teamplay active the players
// are regrouped by team name and team standings are aggregated.
func NewGameServer(server *QuakeServer) GameServer {
	clients := slices.Clone(server.Clients)
	slices.SortStableFunc(clients, func(a, b QuakeClient) int {
		return qwtext.Compare(a.Name, b.Name)
	})

	players := []Player{}
	spectators := []Spectator{}

	for _, client := range clients {
		if client.IsSpectator {
			spectators = append(spectators, SpectatorFromClient(client))
		} else {
			players = append(players, PlayerFromClient(client))
		}
	}

	teams := []Team{}

	if server.Settings.Teamplay() > 0 {
		slices.SortStableFunc(players, func(a, b Player) int {
			return qwtext.Compare(a.Team, b.Team)
		})
		teams = TeamsFromPlayers(players)
	}

	return GameServer{
		Settings:   server.Settings,
		Teams:      teams,
		Players:    players,
		Spectators: spectators,
		QtvStream:  server.QtvStream,
	}
}
