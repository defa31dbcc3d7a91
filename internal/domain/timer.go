package domain

import (
	"time"
)

// TimerState represents the two states of the study timer.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
)

// String returns the string representation of the timer state.
func (ts TimerState) String() string {
	switch ts {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	default:
		return "unknown"
	}
}

// ActiveSession represents the running timer. At most one exists at a time;
// its presence is what makes the timer Running rather than Idle.
type ActiveSession struct {
	StartTime time.Time
}

// Elapsed returns how long the session has been running as of now.
func (a ActiveSession) Elapsed(now time.Time) time.Duration {
	return now.Sub(a.StartTime)
}
