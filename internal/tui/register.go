package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/galley-app/galley-client/internal/service"
	"github.com/galley-app/galley-client/models"
)

const (
	regFieldEmail = iota
	regFieldUsername
	regFieldFullName
	regFieldPassword
	regFieldCount
)

// RegisterModel renders the four-field registration form. The profile is
// validated by the session service before the request goes out, so a bad
// field comes back as a normal AuthDone failure.
type RegisterModel struct {
	ctx      context.Context
	sessions service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, sessions service.SessionService) *RegisterModel {
	labels := [regFieldCount]string{"email", "username", "full name", "password"}

	inputs := make([]textinput.Model, regFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 256
		in.Width = 40
		inputs[i] = in
	}
	inputs[regFieldEmail].CharLimit = 120
	inputs[regFieldUsername].CharLimit = 30
	inputs[regFieldPassword].EchoMode = textinput.EchoPassword
	inputs[regFieldPassword].EchoCharacter = '*'
	inputs[regFieldEmail].Focus()

	return &RegisterModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   inputs,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(AuthDone); ok && done.Register {
		m.submitting = false
		if !done.Result.Success {
			m.errMsg = done.Result.Error
			return m, nil
		}
		m.errMsg = ""
		username := done.Username
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: RegisterSuccessNotice{Username: username}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			profile := models.RegisterProfile{
				Email:    strings.TrimSpace(m.inputs[regFieldEmail].Value()),
				Username: strings.TrimSpace(m.inputs[regFieldUsername].Value()),
				FullName: strings.TrimSpace(m.inputs[regFieldFullName].Value()),
				Password: m.inputs[regFieldPassword].Value(),
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(profile)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	rows := []struct {
		label string
		field int
	}{
		{"Email    ", regFieldEmail},
		{"Username ", regFieldUsername},
		{"Name     ", regFieldFullName},
		{"Password ", regFieldPassword},
	}
	for _, row := range rows {
		b.WriteString(row.label)
		b.WriteString("│ [")
		b.WriteString(m.inputs[row.field].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(profile models.RegisterProfile) tea.Cmd {
	ctx, sessions := m.ctx, m.sessions
	return func() tea.Msg {
		return AuthDone{
			Result:   sessions.Register(ctx, profile),
			Register: true,
			Username: profile.Username,
		}
	}
}

func (m *RegisterModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
