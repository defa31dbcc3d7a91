package sqlite

import "time"

// Session represents a completed study session row.
type Session struct {
	ID              int64
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int64
}

// ActiveSession represents the singleton running-timer row.
// Its presence means the timer is running.
type ActiveSession struct {
	StartTime time.Time
}
