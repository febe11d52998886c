package serverstat

import (
	"math"
	"slices"

	"github.com/quakeworld/serverstat/qwtext"
)

// Team is the aggregate standing of one team name among the players.
type Team struct {
	Name        string `json:"name"`
	Frags       int32  `json:"frags"`
	Ping        uint32 `json:"ping"`
	TopColor    uint8  `json:"top_color"`
	BottomColor uint8  `json:"bottom_color"`
}

type colorPair struct {
	top    uint8
	bottom uint8
}

// TeamsFromPlayers groups players by team name and aggregates standings:
// frags are summed, ping is the mean rounded half away from zero, and the
// jersey colors are the pair most members wear. Teams come back sorted by
// name.
func TeamsFromPlayers(players []Player) []Team {
	type teamTally struct {
		frags   int32
		pingSum float64
		count   int
		colors  []colorPair
	}

	tallies := map[string]*teamTally{}
	var names []string // first-seen order

	for _, player := range players {
		tally, ok := tallies[player.Team]
		if !ok {
			tally = &teamTally{}
			tallies[player.Team] = tally
			names = append(names, player.Team)
		}

		tally.frags += player.Frags
		tally.pingSum += float64(player.Ping)
		tally.count++
		tally.colors = append(tally.colors, colorPair{player.TopColor, player.BottomColor})
	}

	teams := make([]Team, 0, len(names))
	for _, name := range names {
		tally := tallies[name]
		colors := majorityColor(tally.colors)

		teams = append(teams, Team{
			Name:        name,
			Frags:       tally.frags,
			Ping:        uint32(math.Round(tally.pingSum / float64(tally.count))),
			TopColor:    colors.top,
			BottomColor: colors.bottom,
		})
	}

	slices.SortStableFunc(teams, func(a, b Team) int {
		return qwtext.Compare(a.Name, b.Name)
	})

	return teams
}

// majorityColor returns the pair occurring most often. With fewer than
// three members the first pair stands without counting; ties resolve to
// the earliest member's pair.
func majorityColor(colors []colorPair) colorPair {
	if len(colors) == 0 {
		return colorPair{}
	}

	if len(colors) < 3 {
		return colors[0]
	}

	counts := make(map[colorPair]int, len(colors))
	for _, pair := range colors {
		counts[pair]++
	}

	best := colors[0]
	bestCount := 0

	for _, pair := range colors {
		if counts[pair] > bestCount {
			best = pair
			bestCount = counts[pair]
		}
	}

	return best
}
