package api

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/audio"
	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/filestore"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
	"github.com/sajee05/effortless-time-tracker/internal/metrics"
	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

// setupTestAPI assembles the real service stack over an in-memory store.
func setupTestAPI(t *testing.T) (API, sqlite.Repository, string) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create in-memory repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	logger := logging.NewNopLogger()
	conf := &config.Config{} // metrics and audio stay disabled
	meter := metrics.NewMetricsProvider(conf)
	rewardsPath := filepath.Join(t.TempDir(), "rewards.yaml")

	compressor, err := filestore.NewZstdCompressor()
	if err != nil {
		t.Fatalf("failed to create compressor: %v", err)
	}
	store := filestore.NewStore(compressor, logger)
	t.Cleanup(store.Close)

	sessions := services.NewSessionService(repo, meter, logger)
	aggregation := services.NewAggregationService(repo)
	container := &services.ServiceContainer{
		Sessions:    sessions,
		Aggregation: aggregation,
		Rewards:     services.NewRewardsService(aggregation, rewardsPath, logger),
		Timer:       services.NewTimerService(repo, sessions, audio.NewPlayer(conf, logger), meter, logger),
		Transfer:    services.NewTransferService(repo, store, t.TempDir(), logger),
	}

	return New(container), repo, rewardsPath
}

func TestAPI_TimerLifecycle(t *testing.T) {
	api, repo, _ := setupTestAPI(t)
	ctx := context.Background()

	status, err := api.TimerStatus(ctx)
	if err != nil {
		t.Fatalf("TimerStatus failed: %v", err)
	}
	if status.State.String() != "idle" {
		t.Errorf("expected idle timer, got %s", status.State)
	}

	result, err := api.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if result.Action != services.ToggleStarted {
		t.Errorf("expected started, got %s", result.Action)
	}

	status, err = api.TimerStatus(ctx)
	if err != nil {
		t.Fatalf("TimerStatus failed: %v", err)
	}
	if status.State.String() != "running" {
		t.Errorf("expected running timer, got %s", status.State)
	}

	// Back-date the running timer so the stop records a real session.
	if err := repo.ClearActiveSession(ctx); err != nil {
		t.Fatalf("ClearActiveSession failed: %v", err)
	}
	if err := repo.SetActiveSession(ctx, time.Now().Add(-25*time.Minute)); err != nil {
		t.Fatalf("SetActiveSession failed: %v", err)
	}

	result, err = api.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if result.Action != services.ToggleStopped {
		t.Fatalf("expected stopped, got %s", result.Action)
	}
	if result.Session == nil {
		t.Fatal("expected a recorded session")
	}
	if result.Session.DurationSeconds < 1500 || result.Session.DurationSeconds > 1510 {
		t.Errorf("expected roughly 25 minutes, got %ds", result.Session.DurationSeconds)
	}
}

func TestAPI_Toggle_DiscardsImmediateStop(t *testing.T) {
	api, repo, _ := setupTestAPI(t)
	ctx := context.Background()

	if _, err := api.Toggle(ctx); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	result, err := api.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if result.Action != services.ToggleDiscarded {
		t.Errorf("expected discarded, got %s", result.Action)
	}

	count, err := repo.CountSessions(ctx)
	if err != nil {
		t.Fatalf("CountSessions failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no sessions after a discarded toggle, got %d", count)
	}
}

func TestAPI_SessionLog(t *testing.T) {
	api, _, _ := setupTestAPI(t)
	ctx := context.Background()
	day := time.Now()

	// Add
	session, err := api.AddSession(ctx, day, 90)
	if err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	if session.DurationSeconds != 90*60 {
		t.Errorf("expected 5400s, got %d", session.DurationSeconds)
	}

	// Adjust
	adjusted, err := api.AdjustSession(ctx, session.ID, -30)
	if err != nil {
		t.Fatalf("AdjustSession failed: %v", err)
	}
	if adjusted.DurationSeconds != 60*60 {
		t.Errorf("expected 3600s after adjustment, got %d", adjusted.DurationSeconds)
	}

	// Edit
	start := adjusted.StartTime.Add(time.Hour)
	edited, err := api.EditSession(ctx, session.ID, start, start.Add(45*time.Minute))
	if err != nil {
		t.Fatalf("EditSession failed: %v", err)
	}
	if edited.DurationSeconds != 45*60 {
		t.Errorf("expected 2700s after edit, got %d", edited.DurationSeconds)
	}

	// Deduct
	removed, err := api.DeductTime(ctx, day, 15)
	if err != nil {
		t.Fatalf("DeductTime failed: %v", err)
	}
	if removed != 15*time.Minute {
		t.Errorf("expected 15m removed, got %s", removed)
	}

	// List
	sessions, err := api.ListRecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].DurationSeconds != 30*60 {
		t.Errorf("expected 1800s after deduction, got %d", sessions[0].DurationSeconds)
	}

	// Delete
	if err := api.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	sessions, err = api.ListRecentSessions(ctx, 0)
	if err != nil {
		t.Fatalf("ListRecentSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty log, got %d sessions", len(sessions))
	}
}

func TestAPI_Stats_IncludesCoins(t *testing.T) {
	api, _, _ := setupTestAPI(t)
	ctx := context.Background()

	if _, err := api.AddSession(ctx, time.Now(), 90); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}

	report, err := api.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if report.Summary == nil {
		t.Fatal("expected a summary")
	}
	if report.Summary.Totals.Lifetime != 90*time.Minute {
		t.Errorf("expected 90m lifetime, got %s", report.Summary.Totals.Lifetime)
	}
	if report.Summary.SessionCount != 1 {
		t.Errorf("expected 1 session, got %d", report.Summary.SessionCount)
	}
	if report.Coins != 1 {
		t.Errorf("expected 1 coin from 90 minutes, got %d", report.Coins)
	}
}

func TestAPI_Overlay(t *testing.T) {
	api, repo, _ := setupTestAPI(t)
	ctx := context.Background()

	state, err := api.Overlay(ctx)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if state.Running || state.ElapsedSeconds != 0 || state.TodaySeconds != 0 {
		t.Errorf("expected an idle empty overlay, got %+v", state)
	}

	if err := repo.SetActiveSession(ctx, time.Now().Add(-10*time.Minute)); err != nil {
		t.Fatalf("SetActiveSession failed: %v", err)
	}

	state, err = api.Overlay(ctx)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if !state.Running {
		t.Error("expected a running overlay")
	}
	if state.ElapsedSeconds < 600 || state.ElapsedSeconds > 610 {
		t.Errorf("expected roughly 600s elapsed, got %d", state.ElapsedSeconds)
	}
	if state.TodaySeconds < state.ElapsedSeconds {
		t.Errorf("expected today to include the running session, got %d", state.TodaySeconds)
	}
}

func TestAPI_Heatmap(t *testing.T) {
	api, _, _ := setupTestAPI(t)
	ctx := context.Background()

	if _, err := api.AddSession(ctx, time.Now(), 60); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}

	entries, err := api.Heatmap(ctx, time.Now().Year())
	if err != nil {
		t.Fatalf("Heatmap failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 heatmap entry, got %d", len(entries))
	}
	if entries[0].Intensity != 4 {
		t.Errorf("the only active day should be the busiest, got intensity %d", entries[0].Intensity)
	}

	if _, err := api.Heatmap(ctx, 1990); err == nil {
		t.Error("expected an error for an unreasonable year")
	}
}

func TestAPI_RewardProgress(t *testing.T) {
	api, _, rewardsPath := setupTestAPI(t)
	ctx := context.Background()

	rewards := "rewards:\n  - coins: 2\n    description: espresso\n"
	if err := os.WriteFile(rewardsPath, []byte(rewards), 0o644); err != nil {
		t.Fatalf("failed to write rewards file: %v", err)
	}

	if _, err := api.AddSession(ctx, time.Now(), 60); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}

	progress, err := api.RewardProgress(ctx)
	if err != nil {
		t.Fatalf("RewardProgress failed: %v", err)
	}
	if len(progress) != 1 {
		t.Fatalf("expected 1 threshold, got %d", len(progress))
	}
	if progress[0].Achieved {
		t.Error("one coin should not unlock a two coin reward")
	}
	if progress[0].Progress != 0.5 {
		t.Errorf("expected 0.5 progress, got %f", progress[0].Progress)
	}
	if progress[0].Remaining != 1 {
		t.Errorf("expected 1 coin remaining, got %d", progress[0].Remaining)
	}
}

func TestAPI_ExportImportRoundTrip(t *testing.T) {
	api, repo, _ := setupTestAPI(t)
	ctx := context.Background()

	if _, err := api.AddSession(ctx, time.Now(), 30); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	if _, err := api.AddSession(ctx, time.Now().AddDate(0, 0, -1), 45); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}

	data, err := api.ExportSessions(ctx)
	if err != nil {
		t.Fatalf("ExportSessions failed: %v", err)
	}

	count, err := api.ImportSessions(ctx, data)
	if err != nil {
		t.Fatalf("ImportSessions failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 imported sessions, got %d", count)
	}

	total, err := repo.CountSessions(ctx)
	if err != nil {
		t.Fatalf("CountSessions failed: %v", err)
	}
	if total != 4 {
		t.Errorf("import should append, expected 4 rows, got %d", total)
	}
}

func TestAPI_ImportRejectsMalformedPayload(t *testing.T) {
	api, repo, _ := setupTestAPI(t)
	ctx := context.Background()

	_, err := api.ImportSessions(ctx, []byte(`{"not": "a session array"}`))
	if !errors.IsErrorType(err, errors.ErrorTypeMalformedData) {
		t.Fatalf("expected a malformed data error, got %v", err)
	}

	count, err := repo.CountSessions(ctx)
	if err != nil {
		t.Fatalf("CountSessions failed: %v", err)
	}
	if count != 0 {
		t.Errorf("a rejected import must not write rows, got %d", count)
	}
}
