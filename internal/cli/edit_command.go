package cli

import (
	"context"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/errors"
)

// EditOptions carries the edit command's flags. Either a minute delta or a
// full replacement interval, never both.
type EditOptions struct {
	DeltaMinutes int64
	HasDelta     bool
	Start        string
	End          string
}

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute adjusts a session by a minute delta or replaces its interval.
func (c *EditCommand) Execute(ctx context.Context, idArg string, opts EditOptions) error {
	id, err := parseSessionID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	replacing := opts.Start != "" || opts.End != ""
	switch {
	case opts.HasDelta && replacing:
		return c.errorHandler.HandleSimple(
			errors.NewValidationError("use either --minutes or --start/--end, not both", nil))
	case opts.HasDelta:
		return c.adjust(ctx, id, opts.DeltaMinutes)
	case replacing:
		return c.replace(ctx, id, opts.Start, opts.End)
	default:
		return c.errorHandler.HandleSimple(
			errors.NewValidationError("nothing to change, pass --minutes or --start/--end", nil))
	}
}

// adjust shifts the session's length by whole minutes.
func (c *EditCommand) adjust(ctx context.Context, id, deltaMinutes int64) error {
	session, err := c.app.api.AdjustSession(ctx, id, deltaMinutes)
	if err != nil {
		return c.errorHandler.Handle("edit session", err)
	}

	if session == nil {
		c.app.printf("Session #%d shrunk to nothing and was deleted\n", id)
		return nil
	}
	c.app.printf("Session #%d is now %s\n", session.ID, formatDuration(session.Duration()))
	return nil
}

// replace swaps the session's interval for a new one.
func (c *EditCommand) replace(ctx context.Context, id int64, startArg, endArg string) error {
	if startArg == "" || endArg == "" {
		return c.errorHandler.HandleSimple(
			errors.NewValidationError("--start and --end must be given together", nil))
	}

	start, err := time.Parse(time.RFC3339, startArg)
	if err != nil {
		return c.errorHandler.HandleSimple(
			errors.NewValidationError("invalid --start, want RFC 3339 like 2025-03-01T09:00:00Z", err))
	}
	end, err := time.Parse(time.RFC3339, endArg)
	if err != nil {
		return c.errorHandler.HandleSimple(
			errors.NewValidationError("invalid --end, want RFC 3339 like 2025-03-01T09:45:00Z", err))
	}

	session, err := c.app.api.EditSession(ctx, id, start, end)
	if err != nil {
		return c.errorHandler.Handle("edit session", err)
	}

	c.app.printf("Session #%d is now %s - %s (%s)\n",
		session.ID,
		formatStamp(session.StartTime),
		session.EndTime.Local().Format("15:04"),
		formatDuration(session.Duration()))
	return nil
}
