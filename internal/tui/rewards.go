package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sajee05/effortless-time-tracker/internal/api"
	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

const rewardBarCells = 20

type rewardsLoadedMsg struct {
	coins    int
	progress []services.RewardProgress
	err      error
}

type rewardsModel struct {
	api      api.API
	coins    int
	progress []services.RewardProgress
	loading  bool
	err      error
}

func newRewardsModel(studyAPI api.API) rewardsModel {
	return rewardsModel{api: studyAPI, loading: true}
}

func (m rewardsModel) load() tea.Cmd {
	studyAPI := m.api
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := studyAPI.Stats(ctx)
		if err != nil {
			return rewardsLoadedMsg{err: err}
		}
		progress, err := studyAPI.RewardProgress(ctx)
		if err != nil {
			return rewardsLoadedMsg{err: err}
		}
		return rewardsLoadedMsg{coins: stats.Coins, progress: progress}
	}
}

func (m rewardsModel) apply(msg rewardsLoadedMsg) rewardsModel {
	m.loading = false
	m.err = msg.err
	if msg.err == nil {
		m.coins = msg.coins
		m.progress = msg.progress
	}
	return m
}

func (m rewardsModel) View() string {
	if m.loading {
		return stylePane.Render(styleMuted.Render("loading..."))
	}
	if m.err != nil {
		return stylePane.Render(styleError.Render("error: " + m.err.Error()))
	}

	lines := []string{
		styleTitle.Render("Rewards") + "  " +
			styleHot.Render(fmt.Sprintf("%d %s", m.coins, plural(m.coins, "coin"))) +
			styleMuted.Render("  (1 coin per studied hour)"),
		"",
	}
	if len(m.progress) == 0 {
		lines = append(lines, styleMuted.Render("No rewards configured."),
			styleMuted.Render("Add thresholds to rewards.yaml in the data directory."))
	}
	for _, p := range m.progress {
		lines = append(lines, renderRewardRow(p), "")
	}

	return stylePane.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderRewardRow(p services.RewardProgress) string {
	bar := renderRewardBar(p.Progress)
	label := rewardRowLabel(p)
	desc := styleValue.Render(p.Threshold.Description)
	return fmt.Sprintf("%s  %s\n   %s", bar, desc, label)
}

func renderRewardBar(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * rewardBarCells)
	return styleGood.Render(strings.Repeat("█", filled)) +
		styleLegend.Render(strings.Repeat("█", rewardBarCells-filled))
}

func rewardRowLabel(p services.RewardProgress) string {
	if p.Achieved {
		return styleGood.Render("✓ achieved")
	}
	unit := "coins"
	if p.Threshold.Kind == domain.RewardKindStreak {
		unit = "days"
	}
	if p.Remaining == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return styleMuted.Render(fmt.Sprintf("%d %s to go", p.Remaining, unit))
}
