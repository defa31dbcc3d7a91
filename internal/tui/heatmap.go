package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sajee05/effortless-time-tracker/internal/api"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

type heatmapLoadedMsg struct {
	year    int
	entries []services.HeatmapEntry
	err     error
}

// heatmapModel renders one calendar year as a GitHub-style activity grid,
// Monday-based week columns, colored by intensity.
type heatmapModel struct {
	api     api.API
	year    int
	entries []services.HeatmapEntry
	loading bool
	err     error
}

func newHeatmapModel(studyAPI api.API, year int) heatmapModel {
	return heatmapModel{api: studyAPI, year: year, loading: true}
}

func (m heatmapModel) load() tea.Cmd {
	studyAPI := m.api
	year := m.year
	return func() tea.Msg {
		entries, err := studyAPI.Heatmap(context.Background(), year)
		return heatmapLoadedMsg{year: year, entries: entries, err: err}
	}
}

func (m heatmapModel) apply(msg heatmapLoadedMsg) heatmapModel {
	if msg.year != m.year {
		// Stale load from before the user scrolled to another year.
		return m
	}
	m.loading = false
	m.err = msg.err
	if msg.err == nil {
		m.entries = msg.entries
	}
	return m
}

func (m heatmapModel) View() string {
	if m.loading {
		return stylePane.Render(styleMuted.Render("loading..."))
	}
	if m.err != nil {
		return stylePane.Render(styleError.Render("error: " + m.err.Error()))
	}

	intensity := make(map[string]int, len(m.entries))
	var total time.Duration
	for _, entry := range m.entries {
		intensity[entry.Day.Format("2006-01-02")] = entry.Intensity
		total += entry.Total
	}

	header := styleTitle.Render(fmt.Sprintf("%d", m.year)) +
		styleMuted.Render("   ←/→ to change year")
	grid := renderHeatGrid(m.year, intensity)
	legend := styleMuted.Render("less ") +
		styleLegend.Render("·") + " " +
		heatStyles[1].Render("█") + " " +
		heatStyles[2].Render("█") + " " +
		heatStyles[3].Render("█") + " " +
		heatStyles[4].Render("█") +
		styleMuted.Render(" more")
	footer := styleMuted.Render(fmt.Sprintf("%d active %s, %s total",
		len(m.entries), plural(len(m.entries), "day"), fmtDuration(total)))

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", grid, "", legend+"    "+footer)
	return stylePane.Render(body)
}

// renderHeatGrid lays the year out as week columns starting on the Monday on
// or before January 1st. Cells outside the year stay blank so neighbouring
// years never bleed into the grid.
func renderHeatGrid(year int, intensity map[string]int) string {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
	gridStart := jan1.AddDate(0, 0, -((int(jan1.Weekday()) + 6) % 7))
	weeks := int(dec31.Sub(gridStart).Hours()/24/7) + 1

	rowLabels := [7]string{"Mon", "", "Wed", "", "Fri", "", ""}

	var b strings.Builder
	b.WriteString(styleMuted.Render(heatMonthHeader(gridStart, weeks)))
	b.WriteByte('\n')
	for row := 0; row < 7; row++ {
		b.WriteString(styleMuted.Render(padCell(rowLabels[row], heatGutterWidth)))
		for col := 0; col < weeks; col++ {
			day := gridStart.AddDate(0, 0, col*7+row)
			if day.Year() != year {
				b.WriteByte(' ')
				continue
			}
			if level, ok := intensity[day.Format("2006-01-02")]; ok {
				b.WriteString(heatStyles[clampLevel(level)].Render("█"))
			} else {
				b.WriteString(styleLegend.Render("·"))
			}
		}
		if row < 6 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

const heatGutterWidth = 4

// heatMonthHeader labels each column whose week contains the first day of a
// month. Labels keep a one-column gap so adjacent months never collide.
func heatMonthHeader(gridStart time.Time, weeks int) string {
	header := []byte(strings.Repeat(" ", heatGutterWidth+weeks))
	lastLabelEnd := 0
	for col := 0; col < weeks; col++ {
		weekStart := gridStart.AddDate(0, 0, col*7)
		weekEnd := weekStart.AddDate(0, 0, 6)
		var label string
		if weekStart.Day() <= 7 {
			label = weekStart.Month().String()[:3]
		} else if weekEnd.Day() <= 7 {
			label = weekEnd.Month().String()[:3]
		} else {
			continue
		}
		at := heatGutterWidth + col
		if at < lastLabelEnd || at+3 > len(header) {
			continue
		}
		copy(header[at:], label)
		lastLabelEnd = at + 4
	}
	return strings.TrimRight(string(header), " ")
}

func padCell(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 4 {
		return 4
	}
	return level
}
