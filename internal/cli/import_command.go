package cli

import (
	"context"
	"os"
)

// ImportCommand handles the import command
type ImportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute appends every session from a JSON export file to the log.
func (c *ImportCommand) Execute(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return c.errorHandler.Handle("read import file", err)
	}

	imported, err := c.app.api.ImportSessions(ctx, data)
	if err != nil {
		return c.errorHandler.Handle("import sessions", err)
	}

	c.app.printf("Imported %d %s from %s\n", imported, pluralSessions(imported), path)
	return nil
}

func pluralSessions(n int) string {
	if n == 1 {
		return "session"
	}
	return "sessions"
}
