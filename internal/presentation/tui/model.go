// Package tui renders the meeting and drives the event loop. The bubbletea
// runtime owns the terminal (raw mode, alternate screen, restore on every
// exit path); the Model here is the single writer of session state, turning
// timer ticks and keypresses into session events one at a time.
package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/aretw0/nextup/internal/session"
)

// tickInterval is the redraw cadence. The applied delta is measured from the
// wall clock, not assumed to be the interval, so scheduling jitter never
// skews the timers.
const tickInterval = 500 * time.Millisecond

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Model is the bubbletea model wrapping one meeting session.
type Model struct {
	sess     *session.Session
	logger   *slog.Logger
	clock    clockwork.Clock
	lastTick time.Time
	width    int
	height   int
	showHelp bool
	helpView string
}

// New builds the model. The clock is injectable so tests can drive ticks
// with a fake; production passes clockwork.NewRealClock().
func New(sess *session.Session, logger *slog.Logger, clock clockwork.Clock) Model {
	return Model{
		sess:     sess,
		logger:   logger,
		clock:    clock,
		lastTick: clock.Now(),
		helpView: renderHelp(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := m.clock.Now()
		delta := now.Sub(m.lastTick)
		m.lastTick = now
		m.sess.Apply(session.Tick{Delta: delta})
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey maps raw keys onto session events. Unmapped keys are no-ops.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showHelp {
		// Any key dismisses the overlay, except quit which still works.
		if key == "q" || key == "ctrl+c" {
			return m.quit()
		}
		m.showHelp = false
		return m, nil
	}

	switch key {
	case "tab", "down":
		m.sess.Apply(session.NextPerson{})
	case "up", "shift+tab":
		m.sess.Apply(session.PrevPerson{})
	case "ctrl+n":
		m.sess.Apply(session.Reshuffle{})
		m.logger.Debug("order reshuffled")
	case "ctrl+r":
		m.sess.Apply(session.ResetTimer{})
		m.logger.Debug("timers reset")
	case "?":
		m.showHelp = true
	case "q", "ctrl+c":
		return m.quit()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.sess.Apply(session.Quit{})
	return m, tea.Quit
}

func (m Model) View() string {
	if m.showHelp {
		return m.helpView
	}
	return render(m.sess.Snapshot(), m.width)
}
