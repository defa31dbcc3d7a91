package api

import (
	"context"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

// StatsReport is the aggregation summary plus the coin balance derived
// from it. `ett stats` and GET /api/summary render this.
type StatsReport struct {
	Summary *services.Summary `json:"summary"`
	Coins   int               `json:"coins"`
}

// OverlayState is the 1 Hz snapshot the OBS overlay polls. Today includes
// the running session; week counts recorded sessions only.
type OverlayState struct {
	Running        bool  `json:"running"`
	ElapsedSeconds int64 `json:"elapsed_seconds"`
	TodaySeconds   int64 `json:"today_seconds"`
	WeekSeconds    int64 `json:"week_seconds"`
	CurrentStreak  int   `json:"current_streak"`
}

// API is the single entry point the CLI, the HTTP server and the dashboard
// share. All methods honor the passed context.
type API interface {
	// ========== Timer ==========

	// Toggle flips the persisted timer and reports what happened.
	Toggle(ctx context.Context) (*services.ToggleResult, error)

	// TimerStatus reads the timer without touching it.
	TimerStatus(ctx context.Context) (*services.TimerStatus, error)

	// ========== Session log ==========

	// AddSession records a manual session of the given length on a day.
	AddSession(ctx context.Context, day time.Time, minutes int64) (*domain.Session, error)

	// DeductTime removes up to the given minutes from a day, newest
	// session first, and reports how much was actually removed.
	DeductTime(ctx context.Context, day time.Time, minutes int64) (time.Duration, error)

	// AdjustSession grows or shrinks a session by whole minutes. A
	// session shrunk to nothing is deleted and nil is returned.
	AdjustSession(ctx context.Context, id int64, deltaMinutes int64) (*domain.Session, error)

	// EditSession replaces a session's interval outright.
	EditSession(ctx context.Context, id int64, start, end time.Time) (*domain.Session, error)

	// DeleteSession removes a session from the log.
	DeleteSession(ctx context.Context, id int64) error

	// ListRecentSessions returns the newest sessions, all of them when
	// limit is zero.
	ListRecentSessions(ctx context.Context, limit int) ([]*domain.Session, error)

	// ========== Aggregate views ==========

	// Stats builds the summary snapshot with the coin balance.
	Stats(ctx context.Context) (*StatsReport, error)

	// Heatmap returns a year of per-day intensities.
	Heatmap(ctx context.Context, year int) ([]services.HeatmapEntry, error)

	// RewardProgress scores the configured thresholds.
	RewardProgress(ctx context.Context) ([]services.RewardProgress, error)

	// Overlay composes the snapshot the overlay page polls.
	Overlay(ctx context.Context) (*OverlayState, error)

	// ========== Transfer ==========

	// ExportSessions renders the whole log as JSON.
	ExportSessions(ctx context.Context) ([]byte, error)

	// ImportSessions appends a JSON export to the log.
	ImportSessions(ctx context.Context, data []byte) (int, error)
}

type apiImpl struct {
	services *services.ServiceContainer
}

// New creates an API over the assembled services.
func New(container *services.ServiceContainer) API {
	return &apiImpl{services: container}
}

// Timer

func (a *apiImpl) Toggle(ctx context.Context) (*services.ToggleResult, error) {
	return a.services.Timer.Toggle(ctx)
}

func (a *apiImpl) TimerStatus(ctx context.Context) (*services.TimerStatus, error) {
	return a.services.Timer.Status(ctx)
}

// Session log

func (a *apiImpl) AddSession(ctx context.Context, day time.Time, minutes int64) (*domain.Session, error) {
	return a.services.Sessions.AddManualSession(ctx, day, minutes)
}

func (a *apiImpl) DeductTime(ctx context.Context, day time.Time, minutes int64) (time.Duration, error) {
	return a.services.Sessions.DeductTime(ctx, day, minutes)
}

func (a *apiImpl) AdjustSession(ctx context.Context, id int64, deltaMinutes int64) (*domain.Session, error) {
	return a.services.Sessions.AdjustSession(ctx, id, deltaMinutes)
}

func (a *apiImpl) EditSession(ctx context.Context, id int64, start, end time.Time) (*domain.Session, error) {
	return a.services.Sessions.EditSession(ctx, id, start, end)
}

func (a *apiImpl) DeleteSession(ctx context.Context, id int64) error {
	return a.services.Sessions.DeleteSession(ctx, id)
}

func (a *apiImpl) ListRecentSessions(ctx context.Context, limit int) ([]*domain.Session, error) {
	return a.services.Sessions.ListRecentSessions(ctx, limit)
}

// Transfer

func (a *apiImpl) ExportSessions(ctx context.Context) ([]byte, error) {
	return a.services.Transfer.ExportAll(ctx)
}

func (a *apiImpl) ImportSessions(ctx context.Context, data []byte) (int, error) {
	return a.services.Transfer.ImportAll(ctx, data)
}
