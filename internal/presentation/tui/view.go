package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/nextup/internal/session"
)

const fallbackWidth = 72

// render turns one snapshot into a full frame. It is a pure function of the
// snapshot and terminal width, which keeps it trivially testable.
func render(snap session.Snapshot, width int) string {
	if width <= 0 {
		width = fallbackWidth
	}
	pal := defaultPalette

	var b strings.Builder
	b.WriteString(pal.title.Render(snap.Title))
	b.WriteString("\n\n")
	b.WriteString(renderOrder(snap, pal))
	b.WriteString("\n")
	if snap.ShowTimer {
		b.WriteString(renderGauge(snap, width, pal))
		b.WriteString("\n")
	}
	b.WriteString(pal.helpBar.Render(helpBar(snap.ShowTimer)))
	return b.String()
}

// renderOrder lists the speaking order, one numbered row per participant,
// highlighting the current speaker.
func renderOrder(snap session.Snapshot, pal palette) string {
	var b strings.Builder
	for i, p := range snap.Participants {
		row := fmt.Sprintf("%2d. %s", i+1, p.Name)
		if p.ShowElapsed {
			row += pal.elapsed.Render(fmt.Sprintf("  (%s)", formatDuration(p.Elapsed)))
		}
		if p.Current {
			b.WriteString("› " + pal.current.Render(row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderGauge draws the meeting countdown bar. The bar drains as time runs
// out; once the meeting runs over it stays empty and the label switches to
// an overtime reading instead of clamping silently.
func renderGauge(snap session.Snapshot, width int, pal palette) string {
	barWidth := width - 2
	if barWidth < 10 {
		barWidth = 10
	}

	remaining := snap.Remaining()
	fraction := 0.0
	if snap.Total > 0 {
		fraction = float64(remaining) / float64(snap.Total)
	}

	var label string
	if snap.Overtime() {
		label = pal.overtime.Render(fmt.Sprintf("%s +%s over", gaugeIcon(0), formatDuration(snap.Elapsed-snap.Total)))
	} else {
		label = fmt.Sprintf("%s %s left", gaugeIcon(remaining), formatDuration(remaining))
	}

	filled := int(fraction * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	fill := lipgloss.NewStyle().Foreground(gaugeColor(fraction))
	bar := fill.Render(strings.Repeat("█", filled)) + pal.gaugeRest.Render(strings.Repeat("░", barWidth-filled))

	return label + "\n" + bar + "\n"
}

func helpBar(showTimer bool) string {
	if showTimer {
		return "<Ctrl+R> Reset timer | <Ctrl+N> Reshuffle | <Tab/↓> Next | <↑> Previous | <?> Help | <Q> Quit"
	}
	return "<Ctrl+N> Reshuffle | <Tab/↓> Next | <↑> Previous | <?> Help | <Q> Quit"
}

// formatDuration renders durations the way people read meeting time:
// "12m 5s", or just "42s" under a minute.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	minutes := total / 60
	seconds := total % 60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
