package cli

import (
	"context"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the full statistics snapshot.
func (c *StatsCommand) Execute(ctx context.Context) error {
	report, err := c.app.api.Stats(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}

	summary := report.Summary
	c.app.printf("Today        %s\n", formatDuration(summary.Totals.Today))
	c.app.printf("This week    %s\n", formatDuration(summary.Totals.Week))
	c.app.printf("This month   %s\n", formatDuration(summary.Totals.Month))
	c.app.printf("Lifetime     %s\n", formatDuration(summary.Totals.Lifetime))
	c.app.println()
	c.app.printf("Coins        %d\n", report.Coins)
	c.app.printf("Streak       %d %s (longest %d)\n",
		summary.Streak.Current, pluralDays(summary.Streak.Current), summary.Streak.Longest)
	c.app.printf("Active days  %d\n", summary.ActiveDays)
	c.app.printf("Sessions     %d\n", summary.SessionCount)
	c.app.println()
	c.app.printf("Average per active day  %s\n", formatDuration(summary.Averages.PerActiveDay))
	c.app.printf("Average per week        %s\n", formatDuration(summary.Averages.PerWeek))
	c.app.printf("Average per month       %s\n", formatDuration(summary.Averages.PerMonth))
	return nil
}
