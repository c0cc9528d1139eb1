// Package session implements the meeting state machine: the speaking order,
// the cursor over it, the per-participant stopwatches and the meeting
// countdown. It is a synchronous reducer — every input is an Event applied
// on the caller's goroutine, and rendering reads an immutable Snapshot.
package session

import (
	"math/rand/v2"
	"time"

	"github.com/aretw0/nextup/internal/roster"
)

// warmUp is how long someone must have spoken before their elapsed time is
// surfaced to the renderer. Brief cursor passes stay visually quiet.
const warmUp = 5 * time.Second

// Participant is one entry in the speaking order.
type Participant struct {
	Name    string
	Elapsed time.Duration
}

// Config carries the immutable parameters of one meeting.
type Config struct {
	Title     string
	Duration  time.Duration
	HideTimer bool
}

// Session owns all mutable meeting state. It must only be driven from a
// single goroutine; the TUI event loop is that goroutine in production.
type Session struct {
	cfg          Config
	participants []Participant
	cursor       int
	elapsed      time.Duration
	terminated   bool
	rng          *rand.Rand
}

// New builds a session over names, already shuffled into the initial
// speaking order. names must be non-empty; the loader guarantees that.
func New(cfg Config, names []string, rng *rand.Rand) *Session {
	s := &Session{cfg: cfg, rng: rng}
	s.setOrder(roster.Shuffle(rng, names))
	return s
}

func (s *Session) setOrder(names []string) {
	s.participants = make([]Participant, len(names))
	for i, name := range names {
		s.participants[i] = Participant{Name: name}
	}
	s.cursor = 0
	s.elapsed = 0
}

// Terminated reports whether a Quit event has been applied.
func (s *Session) Terminated() bool { return s.terminated }

// Apply advances the state machine by one event. Every transition is total:
// no event can fail or leave the cursor out of range.
func (s *Session) Apply(ev Event) {
	if s.terminated {
		return
	}
	switch ev := ev.(type) {
	case Tick:
		if ev.Delta <= 0 {
			return
		}
		s.elapsed += ev.Delta
		s.participants[s.cursor].Elapsed += ev.Delta
	case NextPerson:
		s.cursor = (s.cursor + 1) % len(s.participants)
	case PrevPerson:
		s.cursor = (s.cursor - 1 + len(s.participants)) % len(s.participants)
	case Reshuffle:
		names := make([]string, len(s.participants))
		for i, p := range s.participants {
			names[i] = p.Name
		}
		s.setOrder(roster.Shuffle(s.rng, names))
	case ResetTimer:
		for i := range s.participants {
			s.participants[i].Elapsed = 0
		}
		s.elapsed = 0
	case Quit:
		s.terminated = true
	}
}
