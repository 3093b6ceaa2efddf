package entity

import "time"

// SessionID identifies a logical terminal session. Several views may show
// the same session; cloning a layout creates new views on the same sessions.
type SessionID string

// Session captures metadata about one logical terminal session.
type Session struct {
	ID        SessionID
	Title     string
	StartedAt time.Time
	EndedAt   *time.Time
}

// Short returns the last eight characters of the id, enough to tell
// sessions apart in pane titles.
func (id SessionID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id[len(id)-8:])
}

func (s *Session) ShortID() string {
	return s.ID.Short()
}

func (s *Session) IsActive() bool {
	return s != nil && s.EndedAt == nil
}

func (s *Session) End(endedAt time.Time) {
	endedAt = endedAt.UTC()
	s.EndedAt = &endedAt
}
