package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sajee05/effortless-time-tracker/internal/api"
)

type overviewLoadedMsg struct {
	overlay *api.OverlayState
	stats   *api.StatsReport
	err     error
}

// overviewModel renders the timer state and the aggregate totals. Between
// reloads the 1 Hz tick advances the running counters locally so the numbers
// keep moving without hitting the store every second.
type overviewModel struct {
	api     api.API
	overlay *api.OverlayState
	stats   *api.StatsReport
	loading bool
	err     error
}

func newOverviewModel(studyAPI api.API) overviewModel {
	return overviewModel{api: studyAPI, loading: true}
}

func (m overviewModel) load() tea.Cmd {
	studyAPI := m.api
	return func() tea.Msg {
		ctx := context.Background()
		overlay, err := studyAPI.Overlay(ctx)
		if err != nil {
			return overviewLoadedMsg{err: err}
		}
		stats, err := studyAPI.Stats(ctx)
		if err != nil {
			return overviewLoadedMsg{err: err}
		}
		return overviewLoadedMsg{overlay: overlay, stats: stats}
	}
}

func (m overviewModel) apply(msg overviewLoadedMsg) overviewModel {
	m.loading = false
	m.err = msg.err
	if msg.err == nil {
		m.overlay = msg.overlay
		m.stats = msg.stats
	}
	return m
}

// tick advances the live counters by one second while the timer runs.
func (m *overviewModel) tick() {
	if m.overlay == nil || !m.overlay.Running {
		return
	}
	m.overlay.ElapsedSeconds++
	m.overlay.TodaySeconds++
}

func (m overviewModel) View() string {
	if m.loading {
		return stylePane.Render(styleMuted.Render("loading..."))
	}
	if m.err != nil {
		return stylePane.Render(styleError.Render("error: " + m.err.Error()))
	}
	if m.overlay == nil || m.stats == nil || m.stats.Summary == nil {
		return stylePane.Render(styleMuted.Render("no data yet"))
	}

	timer := m.renderTimerPane()
	totals := m.renderTotalsPane()
	streak := m.renderStreakPane()

	return lipgloss.JoinVertical(lipgloss.Left,
		timer,
		lipgloss.JoinHorizontal(lipgloss.Top, totals, streak),
	)
}

func (m overviewModel) renderTimerPane() string {
	var line string
	if m.overlay.Running {
		elapsed := time.Duration(m.overlay.ElapsedSeconds) * time.Second
		line = styleGood.Render("● recording") + "  " + styleValue.Render(fmtClock(elapsed))
	} else {
		line = styleMuted.Render("○ idle") + "  " + styleMuted.Render("run 'ett toggle' to start recording")
	}
	return stylePane.Render(styleTitle.Render("Timer") + "\n\n" + line)
}

func (m overviewModel) renderTotalsPane() string {
	t := m.stats.Summary.Totals
	a := m.stats.Summary.Averages
	body := fmt.Sprintf(
		"%s\n\n%s %s\n%s %s\n%s %s\n%s %s\n\n%s %s\n%s %s\n%s %s",
		styleTitle.Render("Study time"),
		styleMuted.Render("today     "), styleValue.Render(fmtDuration(t.Today)),
		styleMuted.Render("this week "), styleValue.Render(fmtDuration(t.Week)),
		styleMuted.Render("this month"), styleValue.Render(fmtDuration(t.Month)),
		styleMuted.Render("lifetime  "), styleValue.Render(fmtDuration(t.Lifetime)),
		styleMuted.Render("avg/day   "), styleValue.Render(fmtDuration(a.PerActiveDay)),
		styleMuted.Render("avg/week  "), styleValue.Render(fmtDuration(a.PerWeek)),
		styleMuted.Render("avg/month "), styleValue.Render(fmtDuration(a.PerMonth)),
	)
	return stylePane.Render(body)
}

func (m overviewModel) renderStreakPane() string {
	s := m.stats.Summary
	body := fmt.Sprintf(
		"%s\n\n%s %s\n%s %s\n%s %s\n%s %s\n\n%s %s",
		styleTitle.Render("Consistency"),
		styleMuted.Render("streak     "), styleValue.Render(fmt.Sprintf("%d %s", s.Streak.Current, plural(s.Streak.Current, "day"))),
		styleMuted.Render("longest    "), styleValue.Render(fmt.Sprintf("%d %s", s.Streak.Longest, plural(s.Streak.Longest, "day"))),
		styleMuted.Render("active days"), styleValue.Render(fmt.Sprintf("%d", s.ActiveDays)),
		styleMuted.Render("sessions   "), styleValue.Render(fmt.Sprintf("%d", s.SessionCount)),
		styleMuted.Render("coins      "), styleHot.Render(fmt.Sprintf("%d", m.stats.Coins)),
	)
	return stylePane.Render(body)
}

// statusLine feeds the root status bar on every tab.
func (m overviewModel) statusLine() string {
	if m.err != nil {
		return styleError.Render(" load failed, press r to retry")
	}
	if m.overlay == nil {
		return styleMuted.Render(" …")
	}
	today := fmtDuration(time.Duration(m.overlay.TodaySeconds) * time.Second)
	if m.overlay.Running {
		elapsed := time.Duration(m.overlay.ElapsedSeconds) * time.Second
		return styleGood.Render(" ● "+fmtClock(elapsed)) + styleMuted.Render("  today "+today)
	}
	return styleMuted.Render(" ○ idle  today " + today)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
