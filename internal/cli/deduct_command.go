package cli

import (
	"context"
)

// DeductCommand handles the deduct command
type DeductCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeductCommand creates a new deduct command handler
func NewDeductCommand(app *App) *DeductCommand {
	return &DeductCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes minutes from a day's sessions, newest first.
func (c *DeductCommand) Execute(ctx context.Context, dateArg, minutesArg string) error {
	day, err := parseDay(dateArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	minutes, err := parseMinutes(minutesArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	removed, err := c.app.api.DeductTime(ctx, day, minutes)
	if err != nil {
		return c.errorHandler.Handle("deduct time", err)
	}

	if removed == 0 {
		c.app.printf("Nothing logged on %s, nothing removed\n", formatDay(day))
		return nil
	}
	c.app.printf("Removed %s from %s\n", formatDuration(removed), formatDay(day))
	return nil
}
