package services

import (
	"context"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
	"github.com/sajee05/effortless-time-tracker/internal/metrics"
	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite"
	"github.com/sajee05/effortless-time-tracker/internal/validation"
)

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	sessionValidator *validation.SessionValidator
	metrics          metrics.Provider
	logger           logging.Logger
	loc              *time.Location
}

// NewSessionService creates a new SessionService instance
func NewSessionService(repo sqlite.Repository, m metrics.Provider, logger logging.Logger) SessionService {
	return &sessionServiceImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		sessionValidator: validation.NewSessionValidator(),
		metrics:          m,
		logger:           logger,
		loc:              time.Local,
	}
}

// RecordSession stores a completed interval with its derived duration
func (s *sessionServiceImpl) RecordSession(ctx context.Context, start, end time.Time) (*domain.Session, error) {
	if start.IsZero() || end.IsZero() {
		return nil, errors.NewValidationError("invalid session interval",
			s.sessionValidator.ValidateTimeRange(start, end))
	}
	if end.Before(start) {
		return nil, errors.NewInvalidRangeError(
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return s.createSession(ctx, domain.NewSession(start, end))
}

// AddManualSession stores a session of the given length starting at
// midnight of the given day
func (s *sessionServiceImpl) AddManualSession(ctx context.Context, day time.Time, minutes int64) (*domain.Session, error) {
	if err := s.sessionValidator.ValidateManualEntry(day, minutes); err != nil {
		return nil, errors.NewValidationError("invalid manual entry", err)
	}

	start := s.midnight(day)
	end := start.Add(time.Duration(minutes) * time.Minute)

	return s.createSession(ctx, domain.NewSession(start, end))
}

// AdjustSession shifts a session's end time and duration by the delta,
// deleting the row when nothing is left
func (s *sessionServiceImpl) AdjustSession(ctx context.Context, id int64, deltaMinutes int64) (*domain.Session, error) {
	if err := s.sessionValidator.ValidateSessionID(id); err != nil {
		return nil, errors.NewValidationError("invalid session ID", err)
	}
	if err := s.sessionValidator.ValidateAdjustment(deltaMinutes); err != nil {
		return nil, errors.NewValidationError("invalid adjustment", err)
	}

	dbSession, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	deltaSeconds := deltaMinutes * 60
	newDuration := dbSession.DurationSeconds + deltaSeconds
	if newDuration <= 0 {
		if err := s.repo.DeleteSession(ctx, id); err != nil {
			return nil, err
		}
		s.logger.Debugf("session %d adjusted to empty, deleted", id)
		return nil, nil
	}

	dbSession.EndTime = dbSession.EndTime.Add(time.Duration(deltaSeconds) * time.Second)
	dbSession.DurationSeconds = newDuration
	if err := s.repo.UpdateSession(ctx, dbSession); err != nil {
		return nil, err
	}

	updated := s.mapper.Session.FromDatabase(*dbSession)
	return &updated, nil
}

// EditSession replaces a session's interval wholesale
func (s *sessionServiceImpl) EditSession(ctx context.Context, id int64, newStart, newEnd time.Time) (*domain.Session, error) {
	if err := s.sessionValidator.ValidateSessionID(id); err != nil {
		return nil, errors.NewValidationError("invalid session ID", err)
	}
	if newStart.IsZero() || newEnd.IsZero() {
		return nil, errors.NewValidationError("invalid session interval",
			s.sessionValidator.ValidateTimeRange(newStart, newEnd))
	}
	if newEnd.Before(newStart) {
		return nil, errors.NewInvalidRangeError(
			newStart.Format(time.RFC3339), newEnd.Format(time.RFC3339))
	}

	dbSession, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement := domain.NewSession(newStart, newEnd)
	replacement.ID = dbSession.ID

	updated := s.mapper.Session.ToDatabase(replacement)
	if err := s.repo.UpdateSession(ctx, &updated); err != nil {
		return nil, err
	}

	return &replacement, nil
}

// DeductTime removes minutes from a day's sessions, newest first
func (s *sessionServiceImpl) DeductTime(ctx context.Context, day time.Time, minutes int64) (time.Duration, error) {
	if err := s.sessionValidator.ValidateManualEntry(day, minutes); err != nil {
		return 0, errors.NewValidationError("invalid deduction", err)
	}

	dbSessions, err := s.repo.ListSessionsByDay(ctx, s.midnight(day))
	if err != nil {
		return 0, err
	}

	total := minutes * 60
	remaining := total

	// The day query returns oldest first; consume from the newest end.
	for i := len(dbSessions) - 1; i >= 0 && remaining > 0; i-- {
		session := dbSessions[i]

		if session.DurationSeconds <= remaining {
			if err := s.repo.DeleteSession(ctx, session.ID); err != nil {
				return 0, err
			}
			remaining -= session.DurationSeconds
			continue
		}

		session.DurationSeconds -= remaining
		session.EndTime = session.EndTime.Add(-time.Duration(remaining) * time.Second)
		if err := s.repo.UpdateSession(ctx, session); err != nil {
			return 0, err
		}
		remaining = 0
	}

	removed := time.Duration(total-remaining) * time.Second
	s.logger.Debugf("deducted %s from %s", removed, s.midnight(day).Format("2006-01-02"))
	return removed, nil
}

// DeleteSession removes a session by ID
func (s *sessionServiceImpl) DeleteSession(ctx context.Context, id int64) error {
	if err := s.sessionValidator.ValidateSessionID(id); err != nil {
		return errors.NewValidationError("invalid session ID", err)
	}

	return s.repo.DeleteSession(ctx, id)
}

// GetSession retrieves a session by ID
func (s *sessionServiceImpl) GetSession(ctx context.Context, id int64) (*domain.Session, error) {
	if err := s.sessionValidator.ValidateSessionID(id); err != nil {
		return nil, errors.NewValidationError("invalid session ID", err)
	}

	dbSession, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session := s.mapper.Session.FromDatabase(*dbSession)
	return &session, nil
}

// ListRecentSessions returns the newest sessions first; limit 0 means all
func (s *sessionServiceImpl) ListRecentSessions(ctx context.Context, limit int) ([]*domain.Session, error) {
	if limit < 0 {
		return nil, errors.NewValidationError("limit must not be negative", nil)
	}

	dbSessions, err := s.repo.ListSessions(ctx, limit)
	if err != nil {
		return nil, err
	}

	sessions := make([]*domain.Session, len(dbSessions))
	for i, dbSession := range dbSessions {
		session := s.mapper.Session.FromDatabase(*dbSession)
		sessions[i] = &session
	}
	return sessions, nil
}

// createSession persists a validated domain session and reports metrics
func (s *sessionServiceImpl) createSession(ctx context.Context, session domain.Session) (*domain.Session, error) {
	dbSession := s.mapper.Session.ToDatabase(session)
	if err := s.repo.CreateSession(ctx, &dbSession); err != nil {
		return nil, err
	}

	created := s.mapper.Session.FromDatabase(dbSession)
	s.metrics.IncSessionsRecorded()
	s.metrics.ObserveSessionDuration(created.Duration())
	s.logger.Debugf("recorded session %d (%s)", created.ID, created.Duration())
	return &created, nil
}

// midnight normalizes a time to the start of its calendar day in the
// service's location.
func (s *sessionServiceImpl) midnight(day time.Time) time.Time {
	t := day.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}
