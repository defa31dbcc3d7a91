package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Session operations
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, id int64) (*Session, error)
	ListSessions(ctx context.Context, limit int) ([]*Session, error)
	ListSessionsByStartRange(ctx context.Context, from, to time.Time) ([]*Session, error)
	ListSessionsByDay(ctx context.Context, day time.Time) ([]*Session, error)
	ListAllSessions(ctx context.Context) ([]*Session, error)
	UpdateSession(ctx context.Context, session *Session) error
	DeleteSession(ctx context.Context, id int64) error
	ImportSessions(ctx context.Context, sessions []*Session) error

	// Aggregate queries
	SumDurations(ctx context.Context) (int64, error)
	SumDurationsByStartRange(ctx context.Context, from, to time.Time) (int64, error)
	CountSessions(ctx context.Context) (int64, error)

	// Active session (running timer) operations
	GetActiveSession(ctx context.Context) (*ActiveSession, error)
	SetActiveSession(ctx context.Context, start time.Time) error
	ClearActiveSession(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateSession creates a new session row and sets its ID
func (r *SQLiteRepository) CreateSession(ctx context.Context, session *Session) error {
	query := `
	INSERT INTO sessions (start_time, end_time, duration_seconds)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		FormatTimeForDB(session.StartTime), FormatTimeForDB(session.EndTime), session.DurationSeconds)
	if err != nil {
		return err
	}

	session.ID = id
	return nil
}

// GetSession retrieves a session by ID
func (r *SQLiteRepository) GetSession(ctx context.Context, id int64) (*Session, error) {
	query := `
	SELECT id, start_time, end_time, duration_seconds
	FROM sessions
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanSession, "session", fmt.Sprintf("%d", id), id)
}

// ListSessions retrieves sessions ordered newest first.
// A limit of 0 returns all sessions.
func (r *SQLiteRepository) ListSessions(ctx context.Context, limit int) ([]*Session, error) {
	query := `
	SELECT id, start_time, end_time, duration_seconds
	FROM sessions
	ORDER BY start_time DESC, id DESC`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions")
}

// ListSessionsByStartRange retrieves sessions with from <= start_time < to,
// ordered oldest first.
func (r *SQLiteRepository) ListSessionsByStartRange(ctx context.Context, from, to time.Time) ([]*Session, error) {
	query := `
	SELECT id, start_time, end_time, duration_seconds
	FROM sessions
	WHERE start_time >= ? AND start_time < ?
	ORDER BY start_time ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions",
		FormatTimeForDB(from), FormatTimeForDB(to))
}

// ListSessionsByDay retrieves the sessions that started on the calendar day
// containing the given time, ordered oldest first.
func (r *SQLiteRepository) ListSessionsByDay(ctx context.Context, day time.Time) ([]*Session, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.ListSessionsByStartRange(ctx, from, from.Add(24*time.Hour))
}

// ListAllSessions retrieves all sessions ordered oldest first
func (r *SQLiteRepository) ListAllSessions(ctx context.Context) ([]*Session, error) {
	query := `
	SELECT id, start_time, end_time, duration_seconds
	FROM sessions
	ORDER BY start_time ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions")
}

// UpdateSession updates an existing session
func (r *SQLiteRepository) UpdateSession(ctx context.Context, session *Session) error {
	query := `
	UPDATE sessions
	SET start_time = ?, end_time = ?, duration_seconds = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "session", fmt.Sprintf("%d", session.ID),
		FormatTimeForDB(session.StartTime), FormatTimeForDB(session.EndTime), session.DurationSeconds, session.ID)
}

// DeleteSession deletes a session by ID
func (r *SQLiteRepository) DeleteSession(ctx context.Context, id int64) error {
	query := `DELETE FROM sessions WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "session", fmt.Sprintf("%d", id), id)
}

// ImportSessions appends all given sessions in a single transaction.
// Either every row is inserted or none are.
func (r *SQLiteRepository) ImportSessions(ctx context.Context, sessions []*Session) error {
	if len(sessions) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin import transaction", err)
	}

	query := `
	INSERT INTO sessions (start_time, end_time, duration_seconds)
	VALUES (?, ?, ?)`

	for _, session := range sessions {
		id, err := ExecuteWithLastInsertID(ctx, tx, query,
			FormatTimeForDB(session.StartTime), FormatTimeForDB(session.EndTime), session.DurationSeconds)
		if err != nil {
			tx.Rollback()
			return err
		}
		session.ID = id
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit import transaction", err)
	}
	return nil
}

// SumDurations returns the total recorded duration across all sessions
func (r *SQLiteRepository) SumDurations(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(duration_seconds), 0) FROM sessions`

	var total int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, HandleDatabaseError("sum durations", err)
	}
	return total, nil
}

// SumDurationsByStartRange returns the total duration of sessions with
// from <= start_time < to.
func (r *SQLiteRepository) SumDurationsByStartRange(ctx context.Context, from, to time.Time) (int64, error) {
	query := `
	SELECT COALESCE(SUM(duration_seconds), 0)
	FROM sessions
	WHERE start_time >= ? AND start_time < ?`

	var total int64
	err := r.db.QueryRowContext(ctx, query, FormatTimeForDB(from), FormatTimeForDB(to)).Scan(&total)
	if err != nil {
		return 0, HandleDatabaseError("sum durations by range", err)
	}
	return total, nil
}

// CountSessions returns the number of recorded sessions
func (r *SQLiteRepository) CountSessions(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM sessions`

	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count sessions", err)
	}
	return count, nil
}

// GetActiveSession retrieves the running-timer row.
// Returns a not found error when the timer is idle.
func (r *SQLiteRepository) GetActiveSession(ctx context.Context) (*ActiveSession, error) {
	query := `SELECT start_time FROM active_session WHERE id = 1`

	return QuerySingle(ctx, r.db, query, ScanActiveSession, "active session", "1")
}

// SetActiveSession stores the running-timer start, replacing any previous value
func (r *SQLiteRepository) SetActiveSession(ctx context.Context, start time.Time) error {
	query := `
	INSERT INTO active_session (id, start_time) VALUES (1, ?)
	ON CONFLICT(id) DO UPDATE SET start_time = excluded.start_time`

	if _, err := r.db.ExecContext(ctx, query, FormatTimeForDB(start)); err != nil {
		return HandleDatabaseError("set active session", err)
	}
	return nil
}

// ClearActiveSession removes the running-timer row.
// Returns a not found error when the timer is already idle.
func (r *SQLiteRepository) ClearActiveSession(ctx context.Context) error {
	query := `DELETE FROM active_session WHERE id = 1`
	return ExecuteWithRowsAffected(ctx, r.db, query, "active session", "1")
}
