package api

import (
	"context"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

// Aggregate views. These compose several services into the DTOs the
// outer surfaces render directly.

func (a *apiImpl) Stats(ctx context.Context) (*StatsReport, error) {
	summary, err := a.services.Aggregation.Summary(ctx)
	if err != nil {
		return nil, err
	}

	coins, err := a.services.Rewards.Coins(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsReport{Summary: summary, Coins: coins}, nil
}

func (a *apiImpl) Heatmap(ctx context.Context, year int) ([]services.HeatmapEntry, error) {
	return a.services.Aggregation.Heatmap(ctx, year)
}

func (a *apiImpl) RewardProgress(ctx context.Context) ([]services.RewardProgress, error) {
	return a.services.Rewards.Progress(ctx)
}

func (a *apiImpl) Overlay(ctx context.Context) (*OverlayState, error) {
	status, err := a.services.Timer.Status(ctx)
	if err != nil {
		return nil, err
	}

	today, err := a.services.Aggregation.Totals(ctx, services.RangeQuery{Kind: services.RangeToday})
	if err != nil {
		return nil, err
	}

	week, err := a.services.Aggregation.Totals(ctx, services.RangeQuery{Kind: services.RangeThisWeek})
	if err != nil {
		return nil, err
	}

	streak, err := a.services.Aggregation.Streak(ctx)
	if err != nil {
		return nil, err
	}

	state := &OverlayState{
		Running:        status.State == domain.TimerRunning,
		ElapsedSeconds: int64(status.Elapsed.Seconds()),
		TodaySeconds:   int64(today.Seconds()),
		WeekSeconds:    int64(week.Seconds()),
		CurrentStreak:  streak.Current,
	}

	// The running session is not in the log yet; the overlay should still
	// show it counting toward today.
	if state.Running {
		state.TodaySeconds += state.ElapsedSeconds
	}

	return state, nil
}
