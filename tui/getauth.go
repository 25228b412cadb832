package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateGetAuthenticator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.reset()
	case key.Matches(msg, m.keys.Up):
		if m.dlCursor > 0 {
			m.dlCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.dlCursor < len(m.rows)-1 {
			m.dlCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.dlCursor < len(m.rows) {
			m.pending = m.rows[m.dlCursor].auth
			m.pendingText = m.rows[m.dlCursor].text
			m.screen = screenDownload
		}
	case key.Matches(msg, m.keys.ResetAll):
		m.resetProviders()
		m.refreshRows()
		m.cursor = 0
		m.screen = screenSelection
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewGetAuthenticator() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Pardon the interruption"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("We are unable to find any authenticators. Install one to continue"))
	b.WriteString("\n\n")

	for i, r := range m.rows {
		marker := "  "
		if i == m.dlCursor {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(m.theme.rowStyle(i == m.dlCursor, false, false).Render(r.text))
		if r.errText != "" {
			b.WriteString(" ")
			b.WriteString(m.theme.Help.Render("(" + r.errText + ")"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter: how to install · r: retry all · esc: close"))
	return b.String()
}

func (m Model) updateDownload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.pending = nil
		m.pendingText = ""
		m.screen = screenGetAuthenticator
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewDownload() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Install " + m.pendingText))
	b.WriteString("\n\n")
	link := ""
	if m.pending != nil {
		link = m.pending.OnboardingLink()
	}
	if link == "" {
		b.WriteString(m.theme.Subtitle.Render("No install link published for this provider."))
	} else {
		b.WriteString(m.theme.Link.Render(link))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("esc: back"))
	return b.String()
}
