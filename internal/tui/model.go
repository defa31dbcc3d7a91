package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sajee05/effortless-time-tracker/internal/api"
)

// ─── tabs ────────────────────────────────────────────────────────────────────

type tabID int

const (
	tabOverview tabID = iota
	tabHeatmap
	tabSessions
	tabRewards
	tabCount
)

var tabLabels = [tabCount]string{
	"Overview", "Heatmap", "Sessions", "Rewards",
}

// ─── messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

// tickCmd drives the 1 Hz refresh that keeps a running timer counting up.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Year    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Year:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "heatmap year")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.PrevTab, k.Refresh},
		{k.Year, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root dashboard model. It owns tab routing and the 1 Hz tick;
// data loading and rendering live in the per-tab models. The dashboard only
// reads, it never mutates the log.
type Model struct {
	overview overviewModel
	heatmap  heatmapModel
	sessions sessionsModel
	rewards  rewardsModel

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	width     int
	height    int
}

func newModel(studyAPI api.API) Model {
	return Model{
		overview: newOverviewModel(studyAPI),
		heatmap:  newHeatmapModel(studyAPI, time.Now().Year()),
		sessions: newSessionsModel(studyAPI),
		rewards:  newRewardsModel(studyAPI),
		keys:     defaultKeys(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.overview.load(),
		m.heatmap.load(),
		m.sessions.Init(),
		m.rewards.load(),
		tickCmd(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case tickMsg:
		m.overview.tick()
		return m, tickCmd()

	case overviewLoadedMsg:
		m.overview = m.overview.apply(msg)
		return m, nil

	case heatmapLoadedMsg:
		m.heatmap = m.heatmap.apply(msg)
		return m, nil

	case sessionsLoadedMsg:
		var cmd tea.Cmd
		m.sessions, cmd = m.sessions.apply(msg)
		return m, cmd

	case rewardsLoadedMsg:
		m.rewards = m.rewards.apply(msg)
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
				m.help.ShowAll = false
			}
			return m, nil
		}

		// While the session filter is typing, every key belongs to the list.
		if m.activeTab == tabSessions && m.sessions.Filtering() {
			var cmd tea.Cmd
			m.sessions, cmd = m.sessions.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			m.help.ShowAll = true
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.startReload()
		case key.Matches(msg, m.keys.Year) && m.activeTab == tabHeatmap:
			if msg.String() == "left" {
				m.heatmap.year--
			} else {
				m.heatmap.year++
			}
			m.heatmap.loading = true
			return m, m.heatmap.load()
		}
	}

	// Everything else belongs to the active tab, e.g. list navigation.
	if m.activeTab == tabSessions {
		var cmd tea.Cmd
		m.sessions, cmd = m.sessions.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) startReload() tea.Cmd {
	m.overview.loading = true
	m.heatmap.loading = true
	m.rewards.loading = true
	return tea.Batch(
		m.overview.load(),
		m.heatmap.load(),
		m.sessions.reload(),
		m.rewards.load(),
	)
}

func (m *Model) propagateSize() {
	// Tab bar and status bar take two lines each.
	content := tea.WindowSizeMsg{Width: m.width, Height: m.height - 4}
	m.sessions, _ = m.sessions.Update(content)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.activeView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabOverview:
		return m.overview.View()
	case tabHeatmap:
		return m.heatmap.View()
	case tabSessions:
		return m.sessions.View()
	case tabRewards:
		return m.rewards.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = styleHot.Render(" " + label + " ")
		} else {
			parts[i] = styleMuted.Render(" " + label + " ")
		}
	}
	sep := styleMuted.Render(" │ ")
	bar := "ett  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(colorMantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.overview.statusLine()
	right := styleMuted.Render("tab:switch  r:refresh  ?:help  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(colorMantle).Width(m.width).Render(bar)
}
