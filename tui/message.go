package tui

import "strings"

type messageKind int

const (
	messageInfo messageKind = iota
	messageSuccess
	messageError
)

func (m *Model) showMessage(kind messageKind, title, body string) {
	m.msgKind = kind
	m.msgTitle = title
	m.msgBody = body
	m.screen = screenMessage
}

// dismissMessage returns to the picker rather than closing the modal
// outright, so a failed attempt flows straight into trying another provider.
func (m *Model) dismissMessage() {
	m.msgTitle = ""
	m.msgBody = ""
	m.pending = nil
	m.pendingText = ""
	m.screen = screenSelection
}

func (m Model) viewWaiting() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Waiting for Login Response"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Subtitle.Render("Confirm our login request with " + m.pendingText))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("esc: dismiss"))
	return b.String()
}

func (m Model) viewMessage() string {
	title := m.theme.Title
	switch m.msgKind {
	case messageError:
		title = m.theme.Error
	case messageSuccess:
		title = m.theme.Success
	}

	var b strings.Builder
	b.WriteString(title.Render(m.msgTitle))
	if m.msgBody != "" {
		b.WriteString("\n\n")
		b.WriteString(m.msgBody)
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("enter/esc: dismiss"))
	return b.String()
}
