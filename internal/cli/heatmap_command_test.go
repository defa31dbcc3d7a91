package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajee05/effortless-time-tracker/internal/services"
)

func TestHeatmapCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("draws the year with totals underneath", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		mock.heatmap = []services.HeatmapEntry{
			{Day: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), Total: 2 * time.Hour, Intensity: 4},
			{Day: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local), Total: time.Hour, Intensity: 3},
		}

		err := NewHeatmapCommand(app).Execute(ctx, 2024)
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "2024")
		assert.Contains(t, output, "█")
		assert.Contains(t, output, "▓")
		assert.Contains(t, output, "2 active days, 3h 00m total")
	})

	t.Run("wraps rejected years", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		err := NewHeatmapCommand(app).Execute(ctx, 1995)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to build heatmap")
	})
}

func TestRenderHeatmap(t *testing.T) {
	// 2024 starts on a Monday, so the grid begins exactly on January 1st.
	grid := renderHeatmap(2024, map[string]int{
		"2024-01-01": 4,
		"2024-01-02": 1,
	})
	lines := strings.Split(grid, "\n")

	// Header plus seven weekday rows.
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "    Jan"), "header %q should start with Jan", lines[0])

	monday := lines[1]
	tuesday := lines[2]
	assert.True(t, strings.HasPrefix(monday, "Mon █"), "Monday row %q", monday)
	assert.True(t, strings.HasPrefix(tuesday, "    ░"), "Tuesday row %q", tuesday)

	// Inactive days render as dots, one cell per week of the year.
	wednesday := lines[3]
	assert.Equal(t, "    ", wednesday[:4])
	assert.True(t, strings.HasPrefix(wednesday[4:], "·"))
}

func TestRenderHeatmap_BlanksDaysOutsideTheYear(t *testing.T) {
	// 2025 starts on a Wednesday; Monday and Tuesday of the first grid
	// column belong to 2024 and must stay blank.
	grid := renderHeatmap(2025, map[string]int{})
	lines := strings.Split(grid, "\n")
	require.Len(t, lines, 8)

	assert.True(t, strings.HasPrefix(lines[1], "Mon  "), "Monday row %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "    ·"), "Wednesday row %q", lines[3])
}

func TestMonthHeader(t *testing.T) {
	gridStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	header := monthHeader(gridStart, 53)

	assert.Contains(t, header, "Jan")
	assert.Contains(t, header, "Jun")
	assert.Contains(t, header, "Dec")
	assert.True(t, strings.Index(header, "Jan") < strings.Index(header, "Jun"))
	assert.True(t, strings.Index(header, "Jun") < strings.Index(header, "Dec"))
}
