package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfadhilr/contekan/internal/session"
)

// RegisterModel is the Bubble Tea model for the registration screen. A
// successful registration signs the account in immediately, so the flow
// finishes with the same [AuthResult] message the login screen uses.
type RegisterModel struct {
	ctx      context.Context
	sessions session.Provider

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, sessions session.Provider) *RegisterModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40
	emailInput.Focus()

	nameInput := textinput.New()
	nameInput.Placeholder = "nama tampilan (boleh kosong)"
	nameInput.CharLimit = 100
	nameInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "kata sandi"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "ulangi kata sandi"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return &RegisterModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   []textinput.Model{emailInput, nameInput, passwordInput, repeatInput},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			name := strings.TrimSpace(m.inputs[1].Value())
			pass := m.inputs[2].Value()
			repeat := m.inputs[3].Value()

			if email == "" || pass == "" {
				m.errMsg = "Email dan kata sandi wajib diisi"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Kata sandi tidak sama"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(email, name, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Email        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Nama         │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Kata sandi   │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Ulangi       │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Daftar...]\n")
	} else {
		b.WriteString("\n[Daftar]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Gagal: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("DAFTAR", strings.TrimRight(b.String(), "\n"), "esc: kembali │ tab: kolom berikutnya │ enter: daftar")
}

func (m *RegisterModel) cmdRegister(email, name, pass string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		return AuthResult{Err: sessions.Register(ctx, email, name, pass)}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
