package serverstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakeworld/serverstat/qwinfo"
)

func TestPlayerFromClient(t *testing.T) {
	client := QuakeClient{
		ID:          7,
		Name:        "XantoM",
		Team:        "f0m",
		Frags:       12,
		Ping:        25,
		Time:        15,
		TopColor:    4,
		BottomColor: 2,
		Skin:        "XantoM",
		AuthCC:      "xtm",
	}

	assert.Equal(t, Player{
		ID:          7,
		Name:        "XantoM",
		Team:        "f0m",
		Frags:       12,
		Ping:        25,
		Time:        15,
		TopColor:    4,
		BottomColor: 2,
		Skin:        "XantoM",
		AuthCC:      "xtm",
	}, PlayerFromClient(client))
}

func TestSpectatorFromClient(t *testing.T) {
	client := QuakeClient{
		ID:          7,
		Name:        "XantoM",
		Team:        "f0m",
		Frags:       12,
		Ping:        25,
		AuthCC:      "xtm",
		IsSpectator: true,
	}

	assert.Equal(t, Spectator{ID: 7, Name: "XantoM", AuthCC: "xtm"}, SpectatorFromClient(client))
}

func TestNewGameServer(t *testing.T) {
	server := &QuakeServer{
		Settings: qwinfo.Parse(`\teamplay\2\hostname\test`),
		Clients: []QuakeClient{
			{ID: 1, Name: "foo", Team: "red", Frags: 10, Ping: 12},
			{ID: 2, Name: "áøå2", Team: "blue", Frags: 7, Ping: 52, TopColor: 13, BottomColor: 13},
			{ID: 3, Name: "axe", Team: "red", Frags: 5, Ping: 25, TopColor: 4, BottomColor: 4},
			{ID: 4, Name: "B", Team: "red", Frags: 2, Ping: 25, TopColor: 4, BottomColor: 4},
			{ID: 5, Name: "watcher", IsSpectator: true, Ping: 38},
		},
	}

	game := NewGameServer(server)

	// Players grouped by team after the name sort; blue before red.
	require.Len(t, game.Players, 4)
	assert.Equal(t, "áøå2", game.Players[0].Name)
	for _, player := range game.Players[1:] {
		assert.Equal(t, "red", player.Team)
	}
	// Within red, name order holds: axe before B before foo.
	assert.Equal(t, []string{"axe", "B", "foo"}, []string{
		game.Players[1].Name, game.Players[2].Name, game.Players[3].Name,
	})

	require.Len(t, game.Spectators, 1)
	assert.Equal(t, "watcher", game.Spectators[0].Name)

	assert.Equal(t, []Team{
		{Name: "blue", Frags: 7, Ping: 52, TopColor: 13, BottomColor: 13},
		{Name: "red", Frags: 17, Ping: 21, TopColor: 4, BottomColor: 4},
	}, game.Teams)
}

func TestNewGameServerWithoutTeamplay(t *testing.T) {
	server := &QuakeServer{
		Settings: qwinfo.Parse(`\hostname\ffa`),
		Clients: []QuakeClient{
			{ID: 1, Name: "b", Team: "red", Ping: 25},
			{ID: 2, Name: "a", Team: "blue", Ping: 25},
		},
	}

	game := NewGameServer(server)

	assert.Empty(t, game.Teams)
	// Name order only, no team regrouping.
	assert.Equal(t, "a", game.Players[0].Name)
	assert.Equal(t, "b", game.Players[1].Name)
}

func TestNewGameServerDoesNotMutateSnapshot(t *testing.T) {
	server := &QuakeServer{
		Settings: qwinfo.Parse(`\teamplay\1`),
		Clients: []QuakeClient{
			{ID: 2, Name: "zzz", Team: "b", Ping: 25},
			{ID: 1, Name: "aaa", Team: "a", Ping: 25},
		},
	}

	NewGameServer(server)

	assert.Equal(t, "zzz", server.Clients[0].Name)
	assert.Equal(t, "aaa", server.Clients[1].Name)
}
