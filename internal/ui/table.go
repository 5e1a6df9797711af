package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/wificonnect/internal/netconf"
	"github.com/muurk/wificonnect/internal/network"
)

// SignalBars renders a quality percentage as four bars.
func SignalBars(quality int) string {
	if quality == network.QualityUnknown {
		return "    "
	}
	bars := []rune("▂▄▆█")
	var b strings.Builder
	for i, threshold := range []int{6, 25, 50, 75} {
		if quality >= threshold {
			b.WriteRune(bars[i])
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(PrimaryColor)).
		Headers(headers...)
}

// RenderAccessPoints renders scan results. saved marks SSIDs that have a
// stored configuration.
func RenderAccessPoints(aps []network.AccessPoint, saved map[string]bool) string {
	t := newTable("SSID", "Signal", "", "Security", "Saved", "MAC").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 5:
				return TableMutedCellStyle
			default:
				return TableCellStyle
			}
		})

	for _, ap := range aps {
		quality := "?"
		if ap.Quality != network.QualityUnknown {
			quality = fmt.Sprintf("%d%%", ap.Quality)
		}
		security := string(ap.Encryption)
		if security == "" {
			security = "?"
		}
		mark := ""
		if saved[ap.SSID] {
			mark = SuccessMarker
		}
		t.Row(ap.SSID, quality, SignalBars(ap.Quality), security, mark, ap.MAC)
	}
	return t.Render()
}

// RenderSavedNetworks renders stored network records. Passphrases are
// shown only when reveal is set.
func RenderSavedNetworks(recs []netconf.Record, reveal bool) string {
	t := newTable("SSID", "Security", "Key").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			if col == 2 {
				return TableMutedCellStyle
			}
			return TableCellStyle
		})

	for _, rec := range recs {
		security := rec.Encryption
		key := ""
		switch {
		case rec.Open():
			security = "open"
		case reveal:
			key = rec.Passphrase
		default:
			key = strings.Repeat("•", 8)
		}
		t.Row(rec.SSID, security, key)
	}
	return t.Render()
}

// RenderStatus renders an interface snapshot.
func RenderStatus(info network.Info) string {
	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	return newTable("Interface", "Status", "SSID", "IP", "MAC").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		}).
		Row(info.Interface, info.Status.String(), dash(info.SSID), dash(info.IP), dash(info.MAC)).
		Render()
}
