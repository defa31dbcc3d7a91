package services

import (
	"context"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
)

// TimeRange represents a half-open interval [Start, End)
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RangeKind names the reporting windows Totals understands
type RangeKind string

const (
	RangeToday     RangeKind = "today"
	RangeThisWeek  RangeKind = "this_week" // weeks start Monday
	RangeThisMonth RangeKind = "this_month"
	RangeCustom    RangeKind = "custom"
)

// RangeQuery selects a reporting window. Start/End are only read for
// RangeCustom; the relative kinds resolve against the current time.
type RangeQuery struct {
	Kind  RangeKind `json:"kind"`
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// Totals aggregates durations across the standard reporting windows
type Totals struct {
	Today    time.Duration `json:"today"`
	Week     time.Duration `json:"week"`
	Month    time.Duration `json:"month"`
	Lifetime time.Duration `json:"lifetime"`
}

// Averages holds the lifetime total divided by distinct active periods
type Averages struct {
	PerActiveDay time.Duration `json:"per_active_day"`
	PerWeek      time.Duration `json:"per_week"`
	PerMonth     time.Duration `json:"per_month"`
}

// StreakSummary holds the consecutive-active-day counters
type StreakSummary struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// HeatmapEntry is one active day on the yearly activity heatmap.
// Intensity is 1..4 relative to the year's busiest day; days without
// sessions are absent from the heatmap entirely.
type HeatmapEntry struct {
	Day       time.Time     `json:"day"`
	Total     time.Duration `json:"total"`
	Intensity int           `json:"intensity"`
}

// Summary is the full statistics snapshot the dashboard and stats command
// render
type Summary struct {
	Totals       Totals        `json:"totals"`
	Averages     Averages      `json:"averages"`
	Streak       StreakSummary `json:"streak"`
	ActiveDays   int           `json:"active_days"`
	SessionCount int64         `json:"session_count"`
}

// TimerStatus describes the persisted timer state
type TimerStatus struct {
	State     domain.TimerState `json:"state"`
	StartedAt time.Time         `json:"started_at,omitempty"`
	Elapsed   time.Duration     `json:"elapsed"`
}

// ToggleAction names what a toggle did
type ToggleAction string

const (
	ToggleStarted   ToggleAction = "started"
	ToggleStopped   ToggleAction = "stopped"
	ToggleDiscarded ToggleAction = "discarded" // sub-second stop, nothing recorded
)

// ToggleResult reports the outcome of a timer toggle
type ToggleResult struct {
	Action    ToggleAction    `json:"action"`
	StartedAt time.Time       `json:"started_at,omitempty"`
	Session   *domain.Session `json:"session,omitempty"` // set when a session was recorded
}

// RewardProgress pairs a threshold with its achievement state
type RewardProgress struct {
	Threshold domain.RewardThreshold `json:"threshold"`
	Progress  float64                `json:"progress"` // 0.0 .. 1.0
	Achieved  bool                   `json:"achieved"`
	Remaining int                    `json:"remaining"` // coins or days still to go
}

// SessionService handles the session log lifecycle
type SessionService interface {
	// RecordSession stores a completed interval. The duration is derived
	// from the interval; an end before the start is rejected.
	RecordSession(ctx context.Context, start, end time.Time) (*domain.Session, error)

	// AddManualSession stores a session of the given length starting at
	// midnight of the given day.
	AddManualSession(ctx context.Context, day time.Time, minutes int64) (*domain.Session, error)

	// AdjustSession shifts a session's end time and duration by the signed
	// minute delta. When the new duration drops to zero or below the row is
	// deleted and (nil, nil) is returned.
	AdjustSession(ctx context.Context, id int64, deltaMinutes int64) (*domain.Session, error)

	// EditSession replaces a session's interval wholesale.
	EditSession(ctx context.Context, id int64, newStart, newEnd time.Time) (*domain.Session, error)

	// DeductTime removes the given minutes from a day's sessions, newest
	// first, deleting rows it fully consumes and shrinking the last partial
	// one. Returns the duration actually removed.
	DeductTime(ctx context.Context, day time.Time, minutes int64) (time.Duration, error)

	DeleteSession(ctx context.Context, id int64) error
	GetSession(ctx context.Context, id int64) (*domain.Session, error)

	// ListRecentSessions returns the newest sessions first; limit 0 means all.
	ListRecentSessions(ctx context.Context, limit int) ([]*domain.Session, error)
}

// AggregationService computes totals, streaks and averages over the log
type AggregationService interface {
	Totals(ctx context.Context, query RangeQuery) (time.Duration, error)
	LifetimeTotal(ctx context.Context) (time.Duration, error)

	// Heatmap returns the active days of a calendar year with five-level
	// display intensities relative to the year's maximum.
	Heatmap(ctx context.Context, year int) ([]HeatmapEntry, error)

	Streak(ctx context.Context) (StreakSummary, error)
	Averages(ctx context.Context) (Averages, error)
	Summary(ctx context.Context) (*Summary, error)
}

// RewardsService reads coin balances and threshold progress. It never
// mutates the store.
type RewardsService interface {
	// Coins is the floor of lifetime studied hours.
	Coins(ctx context.Context) (int, error)

	// Thresholds loads the rewards file; a missing file is an empty list.
	Thresholds() ([]domain.RewardThreshold, error)

	Progress(ctx context.Context) ([]RewardProgress, error)
}

// TimerService drives the persisted two-state timer
type TimerService interface {
	Toggle(ctx context.Context) (*ToggleResult, error)
	Status(ctx context.Context) (*TimerStatus, error)
}

// TransferService moves the session log in and out as JSON
type TransferService interface {
	// ExportAll renders every session as a JSON array, newest first.
	ExportAll(ctx context.Context) ([]byte, error)

	// ImportAll validates and appends every record from a JSON payload in
	// one transaction, writing a compressed backup first. Returns the
	// number of sessions imported.
	ImportAll(ctx context.Context, data []byte) (int, error)
}

// ServiceContainer bundles the services handed to the API facade
type ServiceContainer struct {
	Sessions    SessionService
	Aggregation AggregationService
	Rewards     RewardsService
	Timer       TimerService
	Transfer    TransferService
}
