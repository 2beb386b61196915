// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfadhilr/contekan/internal/session"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (email and password) and dispatches an async sign-in command
// on form submission. On success an [AuthResult] message is produced and
// handled by [RootModel] to finish the authentication flow.
type LoginModel struct {
	ctx      context.Context
	sessions session.Provider

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and
// password inputs. The email field receives focus immediately; the password
// field uses masked echo.
func NewLoginModel(ctx context.Context, sessions session.Provider) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "kata sandi"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   []textinput.Model{emailInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeAuthError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if email == "" || pass == "" {
				m.errMsg = "Email dan kata sandi wajib diisi"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Email       │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Kata sandi  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Masuk...]\n")
	} else {
		b.WriteString("\n[Masuk]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Gagal: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("MASUK", strings.TrimRight(b.String(), "\n"), "esc: kembali │ tab: kolom berikutnya │ enter: masuk")
}

func (m *LoginModel) cmdSignIn(email, pass string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		return AuthResult{Err: sessions.SignIn(ctx, email, pass)}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
