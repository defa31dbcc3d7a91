package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sajee05/effortless-time-tracker/internal/api"
	"github.com/sajee05/effortless-time-tracker/internal/domain"
)

// sessionsLimit caps the dashboard log view; the CLI has `ett log` for more.
const sessionsLimit = 25

type sessionsLoadedMsg struct {
	sessions []*domain.Session
	err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session *domain.Session
}

func (i sessionItem) Title() string {
	return fmt.Sprintf("#%d  %s", i.session.ID, fmtDuration(i.session.Duration()))
}

func (i sessionItem) Description() string {
	return i.session.StartTime.Local().Format("2006-01-02 15:04") +
		" - " + i.session.EndTime.Local().Format("15:04")
}

func (i sessionItem) FilterValue() string {
	return i.session.StartTime.Local().Format("2006-01-02")
}

// ─── model ───────────────────────────────────────────────────────────────────

type sessionsModel struct {
	api  api.API
	list list.Model
	err  error
}

func newSessionsModel(studyAPI api.API) sessionsModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(colorGreen).BorderForeground(colorGreen)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(colorSubtext).BorderForeground(colorGreen)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Recent sessions"
	l.Styles.Title = styleTitle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return sessionsModel{api: studyAPI, list: l}
}

func (m sessionsModel) Init() tea.Cmd {
	return m.reload()
}

func (m sessionsModel) reload() tea.Cmd {
	studyAPI := m.api
	return func() tea.Msg {
		sessions, err := studyAPI.ListRecentSessions(context.Background(), sessionsLimit)
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func (m sessionsModel) apply(msg sessionsLoadedMsg) (sessionsModel, tea.Cmd) {
	m.err = msg.err
	if msg.err != nil {
		return m, nil
	}
	items := make([]list.Item, len(msg.sessions))
	for i, session := range msg.sessions {
		items[i] = sessionItem{session: session}
	}
	return m, m.list.SetItems(items)
}

func (m sessionsModel) Update(msg tea.Msg) (sessionsModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width, size.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Filtering reports whether the list filter owns the keyboard, so the root
// model leaves keys like q and r alone while the user types.
func (m sessionsModel) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m sessionsModel) View() string {
	if m.err != nil {
		return stylePane.Render(styleError.Render("error: " + m.err.Error()))
	}
	return m.list.View()
}
