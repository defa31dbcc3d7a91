package cli

import (
	"context"
	"strings"
	"time"
)

// intensityCells maps heatmap intensities 0..4 to their glyphs.
var intensityCells = [5]string{"·", "░", "▒", "▓", "█"}

// gutterWidth is the row label column, "Mon " and friends.
const gutterWidth = 4

// HeatmapCommand handles the heatmap command
type HeatmapCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewHeatmapCommand creates a new heatmap command handler
func NewHeatmapCommand(app *App) *HeatmapCommand {
	return &HeatmapCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute draws one calendar year as a per-day intensity grid, weeks as
// columns and weekdays as rows, the way contribution graphs read.
func (c *HeatmapCommand) Execute(ctx context.Context, year int) error {
	entries, err := c.app.api.Heatmap(ctx, year)
	if err != nil {
		return c.errorHandler.Handle("build heatmap", err)
	}

	intensity := make(map[string]int, len(entries))
	var total time.Duration
	for _, entry := range entries {
		intensity[formatDay(entry.Day)] = entry.Intensity
		total += entry.Total
	}

	c.app.printf("%d\n\n", year)
	c.app.println(renderHeatmap(year, intensity))
	c.app.printf("\n%d active %s, %s total\n",
		len(entries), pluralDays(len(entries)), formatDuration(total))
	return nil
}

// renderHeatmap builds the grid. Columns are Monday-based weeks; days
// outside the year stay blank.
func renderHeatmap(year int, intensity map[string]int) string {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	dec31 := jan1.AddDate(1, 0, -1)

	// Walk back to the Monday on or before January 1st.
	gridStart := jan1.AddDate(0, 0, -((int(jan1.Weekday()) + 6) % 7))

	weeks := 0
	for day := gridStart; !day.After(dec31); day = day.AddDate(0, 0, 7) {
		weeks++
	}

	var b strings.Builder
	b.WriteString(monthHeader(gridStart, weeks))

	rowLabels := [7]string{"Mon", "", "Wed", "", "Fri", "", ""}
	for row := 0; row < 7; row++ {
		b.WriteString("\n")
		b.WriteString(pad(rowLabels[row], gutterWidth))
		day := gridStart.AddDate(0, 0, row)
		for col := 0; col < weeks; col++ {
			if day.Year() != year {
				b.WriteString(" ")
			} else {
				b.WriteString(intensityCells[intensity[formatDay(day)]])
			}
			day = day.AddDate(0, 0, 7)
		}
	}
	return b.String()
}

// monthHeader labels each column whose week contains the first of a month.
func monthHeader(gridStart time.Time, weeks int) string {
	header := []rune(strings.Repeat(" ", gutterWidth+weeks))
	lastLabelEnd := 0
	for col := 0; col < weeks; col++ {
		weekStart := gridStart.AddDate(0, 0, col*7)
		weekEnd := weekStart.AddDate(0, 0, 6)

		var month time.Month
		switch {
		case weekStart.Day() <= 7:
			month = weekStart.Month()
		case weekEnd.Day() <= 7:
			month = weekEnd.Month()
		default:
			continue
		}

		at := gutterWidth + col
		if at < lastLabelEnd || at+3 > len(header) {
			continue // no room without colliding with the previous label
		}
		copy(header[at:], []rune(month.String()[:3]))
		lastLabelEnd = at + 4
	}
	return strings.TrimRight(string(header), " ")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
