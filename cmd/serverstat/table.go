package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quakeworld/serverstat"
	"github.com/quakeworld/serverstat/qwtext"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable renders headers and rows as a rounded-style table.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderServer renders one snapshot in the view matching its software.
func renderServer(server *serverstat.QuakeServer) string {
	var out strings.Builder

	hostname := qwtext.Plain(server.Settings.Hostname())
	if hostname == "" {
		hostname = server.Address.String()
	}

	fmt.Fprintf(&out, "%s — %s at %s", hostname, server.SoftwareType, server.Address)

	if server.Geo.CountryName != "" {
		fmt.Fprintf(&out, " (%s)", server.Geo.CountryName)
	}

	out.WriteByte('\n')

	switch server.SoftwareType {
	case serverstat.SoftwareTypeQtv:
		renderRelayClients(&out, "viewers", serverstat.NewQtvServer(server))
	case serverstat.SoftwareTypeQwfwd:
		renderProxyClients(&out, serverstat.NewQwfwdServer(server))
	default:
		renderGameServer(&out, serverstat.NewGameServer(server))
	}

	return strings.TrimRight(out.String(), "\n")
}

func renderGameServer(out *strings.Builder, game serverstat.GameServer) {
	if mapName := game.Settings.Map(); mapName != "" {
		fmt.Fprintf(out, "map %s, %d/%d clients\n", mapName, len(game.Players)+len(game.Spectators), game.Settings.Maxclients())
	}

	if len(game.Teams) > 0 {
		rows := make([][]string, 0, len(game.Teams))
		for _, team := range game.Teams {
			rows = append(rows, []string{
				qwtext.Plain(team.Name),
				fmt.Sprintf("%d", team.Frags),
				fmt.Sprintf("%d", team.Ping),
				fmt.Sprintf("%d/%d", team.TopColor, team.BottomColor),
			})
		}
		out.WriteString(renderTable(
			[]string{"team", "frags", "ping", "colors"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
		))
		out.WriteByte('\n')
	}

	if len(game.Players) > 0 {
		rows := make([][]string, 0, len(game.Players))
		for _, player := range game.Players {
			name := qwtext.Plain(player.Name)
			if player.IsBot {
				name += " (bot)"
			}
			rows = append(rows, []string{
				name,
				qwtext.Plain(player.Team),
				fmt.Sprintf("%d", player.Frags),
				fmt.Sprintf("%d", player.Ping),
				fmt.Sprintf("%d/%d", player.TopColor, player.BottomColor),
			})
		}
		out.WriteString(renderTable(
			[]string{"player", "team", "frags", "ping", "colors"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
		))
		out.WriteByte('\n')
	} else {
		out.WriteString("no players\n")
	}

	if len(game.Spectators) > 0 {
		names := make([]string, 0, len(game.Spectators))
		for _, spectator := range game.Spectators {
			names = append(names, qwtext.Plain(spectator.Name))
		}
		fmt.Fprintf(out, "spectators: %s\n", strings.Join(names, ", "))
	}

	if stream := game.QtvStream; stream != nil {
		fmt.Fprintf(out, "qtv: %s (%d@%s, %d viewers)", qwtext.Plain(stream.Name), stream.Number, stream.Address, stream.ClientCount)
		if len(stream.ClientNames) > 0 {
			names := make([]string, 0, len(stream.ClientNames))
			for _, name := range stream.ClientNames {
				names = append(names, qwtext.Plain(name))
			}
			fmt.Fprintf(out, ": %s", strings.Join(names, ", "))
		}
		out.WriteByte('\n')
	}
}

func renderRelayClients(out *strings.Builder, label string, qtv serverstat.QtvServer) {
	if len(qtv.Clients) == 0 {
		fmt.Fprintf(out, "no %s\n", label)
		return
	}

	rows := make([][]string, 0, len(qtv.Clients))
	for _, client := range qtv.Clients {
		rows = append(rows, []string{
			qwtext.Plain(client.Name),
			fmt.Sprintf("%d", client.Time),
		})
	}
	out.WriteString(renderTable(
		[]string{label, "time"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	out.WriteByte('\n')
}

func renderProxyClients(out *strings.Builder, proxy serverstat.QwfwdServer) {
	if len(proxy.Clients) == 0 {
		out.WriteString("no clients\n")
		return
	}

	rows := make([][]string, 0, len(proxy.Clients))
	for _, client := range proxy.Clients {
		rows = append(rows, []string{
			qwtext.Plain(client.Name),
			fmt.Sprintf("%d", client.Time),
		})
	}
	out.WriteString(renderTable(
		[]string{"client", "time"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	out.WriteByte('\n')
}
