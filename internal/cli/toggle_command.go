package cli

import (
	"context"

	"github.com/sajee05/effortless-time-tracker/internal/services"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute flips the timer and reports what happened.
func (c *ToggleCommand) Execute(ctx context.Context) error {
	result, err := c.app.api.Toggle(ctx)
	if err != nil {
		return c.errorHandler.Handle("toggle timer", err)
	}

	switch result.Action {
	case services.ToggleStarted:
		c.app.printf("Timer started at %s\n", result.StartedAt.Local().Format("15:04:05"))
	case services.ToggleStopped:
		session := result.Session
		c.app.printf("Recorded %s (session #%d, %s - %s)\n",
			formatDuration(session.Duration()),
			session.ID,
			formatStamp(session.StartTime),
			session.EndTime.Local().Format("15:04"))
	case services.ToggleDiscarded:
		c.app.println("Timer stopped, nothing recorded (shorter than a second)")
	}
	return nil
}
