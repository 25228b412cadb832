package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateAccountInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.inputErr = ""
		m.input.SetValue("")
		m.input.Blur()
		m.pending = nil
		m.pendingText = ""
		m.screen = screenSelection
		return m, nil

	case key.Matches(msg, m.keys.Select):
		// Blankness is judged trimmed but the typed value is sent
		// through untouched.
		if strings.TrimSpace(m.input.Value()) == "" {
			m.inputErr = "Account Name is required"
			return m, nil
		}
		m.inputErr = ""
		return m, m.startLogin(m.pending, m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) viewAccountInput() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.pendingText))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Enter your account name"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.inputErr != "" {
		b.WriteString(m.theme.Error.Render(m.inputErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter: continue · esc: back"))
	return b.String()
}
