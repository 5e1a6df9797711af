package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the banner printed at the start of a subcommand.
type Header struct {
	Title   string            // e.g., "SCAN"
	Command string            // e.g., "wificonnect scan"
	Params  map[string]string // e.g., {"Interface": "wlan0"}
	Width   int
}

// NewHeader creates a header sized to the current terminal.
func NewHeader(title, command string, params map[string]string) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the render width.
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header. Parameters are listed in key order.
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command))

	content := top
	if len(h.Params) > 0 {
		divider := lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Render(strings.Repeat("─", width-6))
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, renderPairs(h.Params, HeaderParamKeyStyle, HeaderParamValueStyle, "", ":"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

func (h *Header) String() string {
	return h.Render()
}

// renderPairs renders key/value lines sorted by key.
func renderPairs(pairs map[string]string, keyStyle, valueStyle lipgloss.Style, indent, sep string) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, keyStyle.Render(indent+k+sep)+" "+valueStyle.Render(pairs[k]))
	}
	return strings.Join(lines, "\n")
}
