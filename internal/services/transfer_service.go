package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/filestore"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite"
	"github.com/sajee05/effortless-time-tracker/internal/validation"
)

// exportRecord is the interchange shape of one session. DurationSeconds is
// a pointer so a missing field is distinguishable from zero on import.
type exportRecord struct {
	ID              int64  `json:"id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationSeconds *int64 `json:"duration_seconds"`
}

// transferServiceImpl implements the TransferService interface
type transferServiceImpl struct {
	repo            sqlite.Repository
	mapper          *domain.Mapper
	importValidator *validation.ImportValidator
	store           *filestore.Store
	logger          logging.Logger
	backupDir       string
	now             func() time.Time
}

// NewTransferService creates a new TransferService instance. Backups taken
// before imports land in backupDir.
func NewTransferService(repo sqlite.Repository, store *filestore.Store, backupDir string, logger logging.Logger) TransferService {
	return &transferServiceImpl{
		repo:            repo,
		mapper:          domain.NewMapper(),
		importValidator: validation.NewImportValidator(),
		store:           store,
		logger:          logger,
		backupDir:       backupDir,
		now:             time.Now,
	}
}

// ExportAll renders the whole session log as an indented JSON array,
// newest first.
func (t *transferServiceImpl) ExportAll(ctx context.Context) ([]byte, error) {
	dbSessions, err := t.repo.ListSessions(ctx, 0)
	if err != nil {
		return nil, err
	}

	records := make([]exportRecord, 0, len(dbSessions))
	for _, dbSession := range dbSessions {
		duration := dbSession.DurationSeconds
		records = append(records, exportRecord{
			ID:              dbSession.ID,
			StartTime:       dbSession.StartTime.UTC().Format(time.RFC3339),
			EndTime:         dbSession.EndTime.UTC().Format(time.RFC3339),
			DurationSeconds: &duration,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, errors.NewInternalError("failed to encode sessions", err)
	}
	return data, nil
}

// ImportAll appends every record from a JSON export in one transaction.
// The whole payload is validated up front; one bad record rejects the lot
// and nothing is written. Existing sessions are backed up first.
func (t *transferServiceImpl) ImportAll(ctx context.Context, data []byte) (int, error) {
	var records []exportRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, errors.NewMalformedDataError("import payload is not a JSON session array", err)
	}

	sessions := make([]*sqlite.Session, 0, len(records))
	for i, record := range records {
		start, end, err := t.importValidator.ValidateRecord(i, record.StartTime, record.EndTime, record.DurationSeconds)
		if err != nil {
			return 0, errors.NewMalformedDataError(
				fmt.Sprintf("import record %d is invalid", i), err)
		}
		dbSession := t.mapper.Session.ToDatabase(domain.NewSession(start, end))
		sessions = append(sessions, &dbSession)
	}

	if err := t.backupExisting(ctx); err != nil {
		return 0, err
	}

	if err := t.repo.ImportSessions(ctx, sessions); err != nil {
		return 0, err
	}

	t.logger.Infof("imported %d sessions", len(sessions))
	return len(sessions), nil
}

// backupExisting snapshots the current log as compressed JSON before an
// import touches it. An empty log needs no backup.
func (t *transferServiceImpl) backupExisting(ctx context.Context) error {
	count, err := t.repo.CountSessions(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	snapshot, err := t.ExportAll(ctx)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("sessions-backup-%s.json.zst", t.now().UTC().Format("20060102-150405"))
	path := filepath.Join(t.backupDir, name)
	if err := t.store.SaveCompressed(path, snapshot); err != nil {
		return err
	}

	t.logger.Infof("backed up %d sessions to %s", count, path)
	return nil
}
