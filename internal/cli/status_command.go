package cli

import (
	"context"
	"time"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute shows the timer state, today's total and the current streak.
func (c *StatusCommand) Execute(ctx context.Context) error {
	state, err := c.app.api.Overlay(ctx)
	if err != nil {
		return c.errorHandler.Handle("read timer status", err)
	}

	if state.Running {
		c.app.printf("Timer running for %s\n", formatClock(time.Duration(state.ElapsedSeconds)*time.Second))
	} else {
		c.app.println("Timer idle")
	}

	c.app.printf("Today: %s   Week: %s   Streak: %d %s\n",
		formatDuration(time.Duration(state.TodaySeconds)*time.Second),
		formatDuration(time.Duration(state.WeekSeconds)*time.Second),
		state.CurrentStreak,
		pluralDays(state.CurrentStreak))
	return nil
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
