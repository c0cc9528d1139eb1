package session

import "time"

// ParticipantView is one rendered row of the speaking order.
type ParticipantView struct {
	Name    string
	Elapsed time.Duration
	// Current marks the participant under the cursor.
	Current bool
	// ShowElapsed is a display hint: elapsed time is only surfaced once a
	// participant has spoken for a few seconds, so a quick pass of the
	// cursor does not flicker numbers onto the screen.
	ShowElapsed bool
}

// Snapshot is the render boundary: a read-only view of the session taken
// once per frame. Elapsed may exceed Total — overtime is the renderer's
// call, never clamped here.
type Snapshot struct {
	Title        string
	Participants []ParticipantView
	Cursor       int
	Elapsed      time.Duration
	Total        time.Duration
	ShowTimer    bool
}

// Snapshot derives the current frame's view.
func (s *Session) Snapshot() Snapshot {
	views := make([]ParticipantView, len(s.participants))
	for i, p := range s.participants {
		views[i] = ParticipantView{
			Name:        p.Name,
			Elapsed:     p.Elapsed,
			Current:     i == s.cursor,
			ShowElapsed: p.Elapsed >= warmUp,
		}
	}
	return Snapshot{
		Title:        s.cfg.Title,
		Participants: views,
		Cursor:       s.cursor,
		Elapsed:      s.elapsed,
		Total:        s.cfg.Duration,
		ShowTimer:    !s.cfg.HideTimer,
	}
}

// Remaining is the countdown value, clamped at zero once the meeting runs
// over.
func (s Snapshot) Remaining() time.Duration {
	if s.Elapsed >= s.Total {
		return 0
	}
	return s.Total - s.Elapsed
}

// Overtime reports whether the meeting has outrun its configured duration.
func (s Snapshot) Overtime() bool { return s.Elapsed > s.Total }
