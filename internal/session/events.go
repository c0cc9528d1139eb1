package session

import "time"

// Event is the sealed input alphabet of the state machine.
type Event interface{ isEvent() }

// Tick advances both the meeting countdown and the current speaker's
// stopwatch by the measured wall-clock delta since the previous tick.
type Tick struct{ Delta time.Duration }

// NextPerson moves the cursor forward, wrapping past the end.
type NextPerson struct{}

// PrevPerson moves the cursor backward, wrapping past the start.
type PrevPerson struct{}

// Reshuffle redraws the speaking order, resets the cursor and zeroes every
// timer, meeting countdown included.
type Reshuffle struct{}

// ResetTimer zeroes every timer while keeping order and cursor.
type ResetTimer struct{}

// Quit terminates the session; later events are ignored.
type Quit struct{}

func (Tick) isEvent()       {}
func (NextPerson) isEvent() {}
func (PrevPerson) isEvent() {}
func (Reshuffle) isEvent()  {}
func (ResetTimer) isEvent() {}
func (Quit) isEvent()       {}
