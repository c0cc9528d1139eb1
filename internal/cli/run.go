// Package cli wires configuration, roster and session together and runs the
// terminal program. It owns the process-level policy: what prints where, and
// which failures are fatal.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"golang.org/x/term"

	"github.com/aretw0/nextup/internal/config"
	"github.com/aretw0/nextup/internal/logging"
	"github.com/aretw0/nextup/internal/presentation/tui"
	"github.com/aretw0/nextup/internal/roster"
	"github.com/aretw0/nextup/internal/session"
)

// Options carries everything the root command collected.
type Options struct {
	Flags      config.Flags
	ConfigPath string
	// ConfigPathSet distinguishes an explicit --config (must exist) from
	// the conventional default lookup (may be absent).
	ConfigPathSet bool
	// Print forces scripting mode: shuffle, print the order, exit.
	Print bool

	// Stdout is the program output; defaults to os.Stdout. Overridable for
	// tests.
	Stdout io.Writer
}

// Run executes one meeting session end to end. Configuration failures come
// back as errors for the command layer to report; a nil return means the
// session ended normally.
func Run(opts Options) error {
	logger := newLogger(opts.Flags.Debug)
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultFile
	}
	file, err := config.LoadFile(path, opts.ConfigPathSet)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(opts.Flags, file)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		"title", cfg.Title, "names", cfg.NamesFile, "duration", cfg.Duration, "hide_timer", cfg.HideTimer)

	names, err := roster.Load(cfg.NamesFile)
	if err != nil {
		return err
	}
	logger.Info("roster loaded", "names", len(names), "file", cfg.NamesFile)

	sess := session.New(session.Config{
		Title:     cfg.Title,
		Duration:  cfg.Duration,
		HideTimer: cfg.HideTimer,
	}, names, roster.NewRand())

	// Without a terminal on stdout there is nothing interactive to run:
	// print the shuffled order for scripts and pipelines.
	if opts.Print || !interactive() {
		printOrder(stdout, sess.Snapshot())
		return nil
	}

	model := tui.New(sess, logger, clockwork.NewRealClock())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		// bubbletea has already restored the terminal by the time Run
		// returns.
		return fmt.Errorf("terminal session failed: %w", err)
	}

	logger.Info("session finished", "meeting_elapsed", sess.Snapshot().Elapsed)
	return nil
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printOrder writes the shuffled speaking order, one name per line.
func printOrder(w io.Writer, snap session.Snapshot) {
	for _, p := range snap.Participants {
		fmt.Fprintln(w, p.Name)
	}
}

func newLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
