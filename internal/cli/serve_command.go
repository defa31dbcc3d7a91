package cli

import (
	"context"

	"github.com/sajee05/effortless-time-tracker/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	app    *App
	server *server.Server
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App, srv *server.Server) *ServeCommand {
	return &ServeCommand{
		app:    app,
		server: srv,
	}
}

// Execute runs the overlay server until it is interrupted.
func (c *ServeCommand) Execute(ctx context.Context) error {
	c.app.printf("Serving overlay on http://%s/overlay (ctrl-c to stop)\n",
		c.app.config.ListenAddr())
	return c.server.Run(ctx)
}
