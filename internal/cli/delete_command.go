package cli

import (
	"context"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes one session from the log.
func (c *DeleteCommand) Execute(ctx context.Context, idArg string) error {
	id, err := parseSessionID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.DeleteSession(ctx, id); err != nil {
		return c.errorHandler.Handle("delete session", err)
	}

	c.app.printf("Deleted session #%d\n", id)
	return nil
}
