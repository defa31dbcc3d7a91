package services

import (
	"context"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/audio"
	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
	"github.com/sajee05/effortless-time-tracker/internal/metrics"
	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite"
)

// minRecordedElapsed is the shortest stop that still records a session;
// anything quicker was an accidental double toggle.
const minRecordedElapsed = time.Second

// timerServiceImpl implements the TimerService interface
type timerServiceImpl struct {
	repo     sqlite.Repository
	sessions SessionService
	mapper   *domain.Mapper
	player   audio.Player
	metrics  metrics.Provider
	logger   logging.Logger
	now      func() time.Time
}

// NewTimerService creates a new TimerService instance
func NewTimerService(repo sqlite.Repository, sessions SessionService, player audio.Player, m metrics.Provider, logger logging.Logger) TimerService {
	return &timerServiceImpl{
		repo:     repo,
		sessions: sessions,
		mapper:   domain.NewMapper(),
		player:   player,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Toggle flips the timer. Idle starts it; running stops it and records the
// elapsed interval as a session.
func (t *timerServiceImpl) Toggle(ctx context.Context) (*ToggleResult, error) {
	active, err := t.repo.GetActiveSession(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return t.start(ctx)
		}
		return nil, err
	}
	return t.stop(ctx, t.mapper.ActiveSession.FromDatabase(*active))
}

// Status reports the timer state without changing it.
func (t *timerServiceImpl) Status(ctx context.Context) (*TimerStatus, error) {
	active, err := t.repo.GetActiveSession(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return &TimerStatus{State: domain.TimerIdle}, nil
		}
		return nil, err
	}

	running := t.mapper.ActiveSession.FromDatabase(*active)
	return &TimerStatus{
		State:     domain.TimerRunning,
		StartedAt: running.StartTime,
		Elapsed:   running.Elapsed(t.now()),
	}, nil
}

func (t *timerServiceImpl) start(ctx context.Context) (*ToggleResult, error) {
	startedAt := t.now()
	if err := t.repo.SetActiveSession(ctx, startedAt); err != nil {
		return nil, err
	}

	t.player.PlayStart()
	t.metrics.IncToggles("start")
	t.logger.Debugf("timer started at %s", startedAt.Format(time.RFC3339))

	return &ToggleResult{Action: ToggleStarted, StartedAt: startedAt}, nil
}

func (t *timerServiceImpl) stop(ctx context.Context, running domain.ActiveSession) (*ToggleResult, error) {
	stoppedAt := t.now()

	// Clear first so a failed record never leaves a phantom running timer.
	if err := t.repo.ClearActiveSession(ctx); err != nil {
		return nil, err
	}

	if running.Elapsed(stoppedAt) < minRecordedElapsed {
		t.player.PlayStop()
		t.metrics.IncToggles("discard")
		t.logger.Debugf("discarded sub-second toggle started at %s", running.StartTime.Format(time.RFC3339))
		return &ToggleResult{Action: ToggleDiscarded, StartedAt: running.StartTime}, nil
	}

	session, err := t.sessions.RecordSession(ctx, running.StartTime, stoppedAt)
	if err != nil {
		return nil, err
	}

	t.player.PlayStop()
	t.metrics.IncToggles("stop")

	return &ToggleResult{
		Action:    ToggleStopped,
		StartedAt: running.StartTime,
		Session:   session,
	}, nil
}
