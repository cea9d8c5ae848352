package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/galley-app/galley-client/internal/service"
)

type menuEntry struct {
	label string
	page  string
}

// MenuModel is the landing page. Browsing is open to everyone; the auth
// entries are swapped for a logout action once a session exists.
type MenuModel struct {
	ctx      context.Context
	sessions service.SessionService

	idx    int
	status string
}

func NewMenuModel(ctx context.Context, sessions service.SessionService) *MenuModel {
	return &MenuModel{ctx: ctx, sessions: sessions}
}

func (m *MenuModel) entries() []menuEntry {
	entries := []menuEntry{{label: "Browse recipes", page: "search"}}
	if m.sessions.Session().Authenticated {
		entries = append(entries, menuEntry{label: "Log out", page: ""})
	} else {
		entries = append(entries,
			menuEntry{label: "Log in", page: "login"},
			menuEntry{label: "Register", page: "register"},
		)
	}
	return entries
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		if notice.Username != "" {
			m.status = "account " + notice.Username + " registered"
		} else {
			m.status = "registration successful"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	entries := m.entries()
	if m.idx >= len(entries) {
		m.idx = len(entries) - 1
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(entries)-1 {
			m.idx++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		entry := entries[m.idx]
		if entry.page == "" {
			return m, m.cmdLogout()
		}
		m.status = ""
		return m, func() tea.Msg { return NavigateTo{Page: entry.page} }
	}

	return m, nil
}

func (m *MenuModel) cmdLogout() tea.Cmd {
	ctx, sessions := m.ctx, m.sessions
	return func() tea.Msg {
		sessions.Logout(ctx)
		return NavigateTo{Page: "menu"}
	}
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if session := m.sessions.Session(); session.Authenticated {
		b.WriteString("signed in as ")
		b.WriteString(session.User.Username)
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(renderStatus(m.status))
		b.WriteString("\n\n")
	}

	for i, entry := range m.entries() {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, entry.label))
	}

	return renderPage("GALLEY", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ q: quit")
}
