package cli

import (
	"context"

	"github.com/sajee05/effortless-time-tracker/internal/tui"
)

// DashboardCommand handles the dashboard command
type DashboardCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDashboardCommand creates a new dashboard command handler
func NewDashboardCommand(app *App) *DashboardCommand {
	return &DashboardCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute opens the full-screen dashboard until the user quits it.
func (c *DashboardCommand) Execute(ctx context.Context) error {
	if err := tui.Run(ctx, c.app.api); err != nil {
		return c.errorHandler.Handle("run dashboard", err)
	}
	return nil
}
