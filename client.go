package serverstat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quakeworld/serverstat/qwtext"
)

// Real clients rarely report latency outside this band; values outside it
// are almost always bots.
const (
	playerMinPing = 12
	playerMaxPing = 600
)

// spectatorNamePrefix marks a name as currently spectating.
const spectatorNamePrefix = `\s\`

// QuakeClient is one connected client as reported in a status response,
// before classification into player or spectator.
type QuakeClient struct {
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
	IsSpectator bool   `json:"is_spectator"`
	IsBot       bool   `json:"is_bot"`
}

// ParseQuakeClient decodes one client record line. The record layout is
// positional: id, frags, time, ping, name, skin, top color, bottom color,
// then optional team and auth fields. A negative or zero ping marks a
// spectator; spectators report no frags and may carry a \s\ name prefix
// that is stripped.
func ParseQuakeClient(record []byte) (QuakeClient, error) {
	tokens := Tokenize(qwtext.Decode(record))
	if len(tokens) < 8 {
		return QuakeClient{}, fmt.Errorf("%w: want at least 8 fields, got %d", ErrInvalidRecord, len(tokens))
	}

	id, err := strconv.ParseUint(tokens[0], 10, 32)
	if err != nil {
		return QuakeClient{}, fmt.Errorf("%w: id %q", ErrInvalidRecord, tokens[0])
	}

	frags, err := strconv.ParseInt(tokens[1], 10, 32)
	if err != nil {
		return QuakeClient{}, fmt.Errorf("%w: frags %q", ErrInvalidRecord, tokens[1])
	}

	elapsed, err := strconv.ParseUint(tokens[2], 10, 32)
	if err != nil {
		return QuakeClient{}, fmt.Errorf("%w: time %q", ErrInvalidRecord, tokens[2])
	}

	rawPing, err := strconv.ParseInt(tokens[3], 10, 32)
	if err != nil {
		return QuakeClient{}, fmt.Errorf("%w: ping %q", ErrInvalidRecord, tokens[3])
	}

	name := tokens[4]
	skin := tokens[5]

	topColor, err := strconv.ParseUint(tokens[6], 10, 8)
	if err != nil {
		return QuakeClient{}, fmt.Errorf("%w: top color %q", ErrInvalidRecord, tokens[6])
	}

	bottomColor, err := strconv.ParseUint(tokens[7], 10, 8)
	if err != nil {
		return QuakeClient{}, fmt.Errorf("%w: bottom color %q", ErrInvalidRecord, tokens[7])
	}

	team := ""
	if len(tokens) >= 9 {
		team = tokens[8]
	}

	authCC := ""
	if len(tokens) >= 10 {
		authCC = tokens[9]
	}

	isSpectator := rawPing < 1
	if isSpectator {
		frags = 0
		name = strings.TrimPrefix(name, spectatorNamePrefix)
	}

	ping := uint32(rawPing)
	if rawPing < 0 {
		ping = uint32(-int64(rawPing))
	}

	return QuakeClient{
		ID:          uint32(id),
		Name:        name,
		Team:        team,
		Frags:       int32(frags),
		Ping:        ping,
		Time:        uint32(elapsed),
		TopColor:    uint8(topColor),
		BottomColor: uint8(bottomColor),
		Skin:        skin,
		AuthCC:      authCC,
		IsSpectator: isSpectator,
		IsBot:       ping < playerMinPing || ping > playerMaxPing,
	}, nil
}
