package cli

import (
	"context"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute logs a manual session on the given day.
func (c *AddCommand) Execute(ctx context.Context, dateArg, minutesArg string) error {
	day, err := parseDay(dateArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	minutes, err := parseMinutes(minutesArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	session, err := c.app.api.AddSession(ctx, day, minutes)
	if err != nil {
		return c.errorHandler.Handle("add session", err)
	}

	c.app.printf("Added %s on %s (session #%d)\n",
		formatDuration(session.Duration()), formatDay(day), session.ID)
	return nil
}
