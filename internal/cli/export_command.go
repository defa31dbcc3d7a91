package cli

import (
	"context"
	"os"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute writes the whole session log as JSON, to a file when asked,
// otherwise to standard output so it pipes cleanly.
func (c *ExportCommand) Execute(ctx context.Context, outputPath string) error {
	data, err := c.app.api.ExportSessions(ctx)
	if err != nil {
		return c.errorHandler.Handle("export sessions", err)
	}

	if outputPath == "" {
		c.app.printf("%s\n", data)
		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return c.errorHandler.Handle("write export file", err)
	}
	c.app.printf("Exported session log to %s\n", outputPath)
	return nil
}
