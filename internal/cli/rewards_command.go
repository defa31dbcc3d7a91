package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

const rewardBarWidth = 10

// RewardsCommand handles the rewards command
type RewardsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRewardsCommand creates a new rewards command handler
func NewRewardsCommand(app *App) *RewardsCommand {
	return &RewardsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the coin balance and a progress bar per threshold.
func (c *RewardsCommand) Execute(ctx context.Context) error {
	report, err := c.app.api.Stats(ctx)
	if err != nil {
		return c.errorHandler.Handle("read coin balance", err)
	}

	progress, err := c.app.api.RewardProgress(ctx)
	if err != nil {
		return c.errorHandler.Handle("score rewards", err)
	}

	c.app.printf("Coins: %d\n", report.Coins)

	if len(progress) == 0 {
		c.app.println("\nNo rewards configured. Add some to rewards.yaml in the data directory.")
		return nil
	}

	c.app.println()
	for _, entry := range progress {
		c.app.printf("%s  %-15s  %s\n",
			progressBar(entry.Progress), progressLabel(entry), entry.Threshold.Description)
	}
	return nil
}

// progressBar renders a fixed-width fill bar for a 0..1 ratio.
func progressBar(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * rewardBarWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", rewardBarWidth-filled) + "]"
}

// progressLabel describes how far along a threshold is in its own unit.
func progressLabel(entry services.RewardProgress) string {
	if entry.Achieved {
		return "achieved!"
	}
	unit := "coins"
	if entry.Threshold.Kind == domain.RewardKindStreak {
		unit = "days"
	}
	if entry.Remaining == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return fmt.Sprintf("%d %s to go", entry.Remaining, unit)
}
