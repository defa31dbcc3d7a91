// Package tui renders the interactive dashboard: a tabbed terminal view over
// the study log with live timer state, the yearly heatmap, recent sessions
// and reward progress.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sajee05/effortless-time-tracker/internal/api"
)

// Run blocks until the dashboard exits or ctx is cancelled.
func Run(ctx context.Context, studyAPI api.API) error {
	program := tea.NewProgram(newModel(studyAPI), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard terminated: %w", err)
	}
	return nil
}
