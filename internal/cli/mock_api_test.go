package cli

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/api"
	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

// mockAPI implements the api.API interface for command tests. Sessions live
// in a map; the aggregate views return whatever the test planted.
type mockAPI struct {
	sessions map[int64]*domain.Session
	nextID   int64
	running  *time.Time

	stats    *api.StatsReport
	heatmap  []services.HeatmapEntry
	rewards  []services.RewardProgress
	overlay  *api.OverlayState
	imported int

	failWith error // when set, every call returns this
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		sessions: make(map[int64]*domain.Session),
		nextID:   1,
	}
}

func (m *mockAPI) addSession(start, end time.Time) *domain.Session {
	session := &domain.Session{
		ID:              m.nextID,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: int64(end.Sub(start) / time.Second),
	}
	m.sessions[session.ID] = session
	m.nextID++
	return session
}

func (m *mockAPI) Toggle(ctx context.Context) (*services.ToggleResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	now := timeNow()
	if m.running == nil {
		m.running = &now
		return &services.ToggleResult{Action: services.ToggleStarted, StartedAt: now}, nil
	}

	start := *m.running
	m.running = nil
	if now.Sub(start) < time.Second {
		return &services.ToggleResult{Action: services.ToggleDiscarded, StartedAt: start}, nil
	}
	return &services.ToggleResult{
		Action:    services.ToggleStopped,
		StartedAt: start,
		Session:   m.addSession(start, now),
	}, nil
}

func (m *mockAPI) TimerStatus(ctx context.Context) (*services.TimerStatus, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.running == nil {
		return &services.TimerStatus{State: domain.TimerIdle}, nil
	}
	return &services.TimerStatus{
		State:     domain.TimerRunning,
		StartedAt: *m.running,
		Elapsed:   timeNow().Sub(*m.running),
	}, nil
}

func (m *mockAPI) AddSession(ctx context.Context, day time.Time, minutes int64) (*domain.Session, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if minutes <= 0 || minutes > 24*60 {
		return nil, errors.NewValidationError("manual entry must be between 1 minute and 24 hours", nil)
	}
	return m.addSession(day, day.Add(time.Duration(minutes)*time.Minute)), nil
}

func (m *mockAPI) DeductTime(ctx context.Context, day time.Time, minutes int64) (time.Duration, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if minutes <= 0 {
		return 0, errors.NewValidationError("deduction must be positive", nil)
	}

	remaining := time.Duration(minutes) * time.Minute
	var removed time.Duration
	for _, session := range m.sessionsOn(day) {
		if remaining <= 0 {
			break
		}
		length := session.Duration()
		if length <= remaining {
			delete(m.sessions, session.ID)
			removed += length
			remaining -= length
			continue
		}
		session.DurationSeconds -= int64(remaining / time.Second)
		session.EndTime = session.EndTime.Add(-remaining)
		removed += remaining
		remaining = 0
	}
	return removed, nil
}

// sessionsOn returns the day's sessions newest first.
func (m *mockAPI) sessionsOn(day time.Time) []*domain.Session {
	var matched []*domain.Session
	for _, session := range m.sessions {
		if session.Day(time.Local).Equal(day) {
			matched = append(matched, session)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartTime.After(matched[j].StartTime)
	})
	return matched
}

func (m *mockAPI) AdjustSession(ctx context.Context, id int64, deltaMinutes int64) (*domain.Session, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFoundError("session", fmt.Sprintf("%d", id))
	}

	session.DurationSeconds += deltaMinutes * 60
	if session.DurationSeconds <= 0 {
		delete(m.sessions, id)
		return nil, nil
	}
	session.EndTime = session.StartTime.Add(time.Duration(session.DurationSeconds) * time.Second)
	return session, nil
}

func (m *mockAPI) EditSession(ctx context.Context, id int64, start, end time.Time) (*domain.Session, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFoundError("session", fmt.Sprintf("%d", id))
	}
	if end.Before(start) {
		return nil, errors.NewInvalidRangeError(start.String(), end.String())
	}

	session.StartTime = start
	session.EndTime = end
	session.DurationSeconds = int64(end.Sub(start) / time.Second)
	return session, nil
}

func (m *mockAPI) DeleteSession(ctx context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.sessions[id]; !ok {
		return errors.NewNotFoundError("session", fmt.Sprintf("%d", id))
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockAPI) ListRecentSessions(ctx context.Context, limit int) ([]*domain.Session, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	all := make([]*domain.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		all = append(all, session)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].StartTime.After(all[j].StartTime)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *mockAPI) Stats(ctx context.Context) (*api.StatsReport, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.stats != nil {
		return m.stats, nil
	}

	var lifetime time.Duration
	for _, session := range m.sessions {
		lifetime += session.Duration()
	}
	return &api.StatsReport{
		Summary: &services.Summary{
			Totals:       services.Totals{Lifetime: lifetime},
			SessionCount: int64(len(m.sessions)),
		},
		Coins: int(lifetime / time.Hour),
	}, nil
}

func (m *mockAPI) Heatmap(ctx context.Context, year int) ([]services.HeatmapEntry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if year < 2000 {
		return nil, errors.NewValidationError("invalid heatmap year", nil)
	}
	return m.heatmap, nil
}

func (m *mockAPI) RewardProgress(ctx context.Context) ([]services.RewardProgress, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.rewards, nil
}

func (m *mockAPI) Overlay(ctx context.Context) (*api.OverlayState, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.overlay != nil {
		return m.overlay, nil
	}
	return &api.OverlayState{}, nil
}

func (m *mockAPI) ExportSessions(ctx context.Context) ([]byte, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return []byte(`[{"id":1}]`), nil
}

func (m *mockAPI) ImportSessions(ctx context.Context, data []byte) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if len(bytes.TrimSpace(data)) == 0 || data[0] != '[' {
		return 0, errors.NewMalformedDataError("import payload is not a JSON session array", nil)
	}
	return m.imported, nil
}

// setupTestApp wires an App around the mock with captured output.
func setupTestApp(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()

	mock := newMockAPI()
	app := NewApp(mock, &config.Config{})
	out := &bytes.Buffer{}
	app.out = out
	return app, mock, out
}
