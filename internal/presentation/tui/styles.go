package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type palette struct {
	title     lipgloss.Style
	row       lipgloss.Style
	current   lipgloss.Style
	elapsed   lipgloss.Style
	gaugeFill lipgloss.Style
	gaugeRest lipgloss.Style
	overtime  lipgloss.Style
	helpBar   lipgloss.Style
}

// newPalette picks colors for the detected terminal background, the same
// light/dark split the original tool made with its COLORFGBG probe.
func newPalette(dark bool) palette {
	p := palette{
		title:     lipgloss.NewStyle().Bold(true),
		row:       lipgloss.NewStyle(),
		current:   lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")).Bold(true),
		gaugeRest: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		overtime:  lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true),
		helpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
	if dark {
		p.elapsed = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	} else {
		p.elapsed = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	}
	return p
}

var defaultPalette = newPalette(termenv.HasDarkBackground())

// gaugeColor maps the remaining fraction of the meeting onto the original's
// green-to-red gradient.
func gaugeColor(fraction float64) lipgloss.Color {
	switch {
	case fraction > 0.75:
		return lipgloss.Color("#22c55e")
	case fraction > 0.5:
		return lipgloss.Color("#84cc16")
	case fraction > 0.35:
		return lipgloss.Color("#a3a300")
	case fraction > 0.25:
		return lipgloss.Color("#eab308")
	case fraction > 0.15:
		return lipgloss.Color("#f97316")
	case fraction > 0.05:
		return lipgloss.Color("#ef4444")
	default:
		return lipgloss.Color("#dc2626")
	}
}

// gaugeIcon flips from a running hourglass to a nearly-done one when less
// than three minutes remain.
func gaugeIcon(remaining time.Duration) string {
	if remaining > 3*time.Minute {
		return "⏳"
	}
	return "⌛"
}
