package serverstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamsFromPlayers(t *testing.T) {
	players := []Player{
		{Team: "red", Frags: 10, Ping: 12, TopColor: 0, BottomColor: 0},
		{Team: "red", Frags: 5, Ping: 25, TopColor: 4, BottomColor: 4},
		{Team: "red", Frags: 2, Ping: 25, TopColor: 4, BottomColor: 4},
		{Team: "blue", Frags: 7, Ping: 52, TopColor: 13, BottomColor: 13},
	}

	teams := TeamsFromPlayers(players)

	assert.Equal(t, []Team{
		{Name: "blue", Frags: 7, Ping: 52, TopColor: 13, BottomColor: 13},
		{Name: "red", Frags: 17, Ping: 21, TopColor: 4, BottomColor: 4},
	}, teams)
}

func TestTeamsFromPlayersEmpty(t *testing.T) {
	assert.Empty(t, TeamsFromPlayers(nil))
}

func TestTeamsFromPlayersPingRounding(t *testing.T) {
	// Mean 12.5 rounds half away from zero.
	teams := TeamsFromPlayers([]Player{
		{Team: "x", Ping: 12},
		{Team: "x", Ping: 13},
	})
	assert.Equal(t, uint32(13), teams[0].Ping)
}

func TestMajorityColor(t *testing.T) {
	assert.Equal(t, colorPair{}, majorityColor(nil))
	assert.Equal(t, colorPair{1, 1}, majorityColor([]colorPair{{1, 1}}))
	assert.Equal(t, colorPair{1, 1}, majorityColor([]colorPair{{1, 1}, {0, 0}}))
	assert.Equal(t, colorPair{1, 1}, majorityColor([]colorPair{{0, 0}, {1, 1}, {1, 1}}))
}

func TestMajorityColorTieGoesToEarliestMember(t *testing.T) {
	colors := []colorPair{{4, 2}, {13, 13}, {4, 2}, {13, 13}}
	assert.Equal(t, colorPair{4, 2}, majorityColor(colors))

	colors = []colorPair{{13, 13}, {4, 2}, {13, 13}, {4, 2}}
	assert.Equal(t, colorPair{13, 13}, majorityColor(colors))
}
