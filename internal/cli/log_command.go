package cli

import (
	"context"
)

// LogCommand handles the log command
type LogCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the newest sessions, one line each.
func (c *LogCommand) Execute(ctx context.Context, limit int) error {
	sessions, err := c.app.api.ListRecentSessions(ctx, limit)
	if err != nil {
		return c.errorHandler.Handle("list sessions", err)
	}

	if len(sessions) == 0 {
		c.app.println("No sessions logged yet")
		return nil
	}

	for _, session := range sessions {
		c.app.printf("#%-5d %s - %s  %s\n",
			session.ID,
			formatStamp(session.StartTime),
			session.EndTime.Local().Format("15:04"),
			formatDuration(session.Duration()))
	}
	return nil
}
