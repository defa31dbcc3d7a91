package domain

import (
	"time"
)

// Session represents one completed study interval in the domain model.
// This is a pure domain model without database-specific concerns.
type Session struct {
	ID              int64
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int64
}

// NewSession creates a new Session spanning the given interval.
// The duration is derived from the interval; callers overriding it
// (manual adjustments) set DurationSeconds afterwards.
func NewSession(start, end time.Time) Session {
	return Session{
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: int64(end.Sub(start).Seconds()),
	}
}

// Duration returns the recorded duration of the session.
func (s Session) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}

// Day returns midnight of the calendar day the session belongs to,
// in the given location. Sessions belong to the day they started on.
func (s Session) Day(loc *time.Location) time.Time {
	t := s.StartTime.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// IsValid checks if the session has valid data.
func (s Session) IsValid() bool {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return false
	}
	if s.EndTime.Before(s.StartTime) {
		return false
	}
	return s.DurationSeconds >= 0
}
