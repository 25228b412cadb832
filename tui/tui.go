// Package tui renders the provider-selection flow as a Bubble Tea model: a
// login trigger, the selection modal, account-name entry, waiting and result
// messages, and the onboarding screen shown when no provider is usable.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akells/uniauth/auth"
)

// reconcileInterval is how often provider state is re-polled while the
// program runs. Providers mutate silently, so the UI samples rather than
// subscribes.
const reconcileInterval = 250 * time.Millisecond

const defaultButtonLabel = "Log In"

// ---------------------------------------------------------------------------
// Screens
// ---------------------------------------------------------------------------

type screen int

const (
	screenHidden screen = iota
	screenSelection
	screenAccountInput
	screenWaiting
	screenMessage
	screenGetAuthenticator
	screenDownload
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// ShowModalMsg opens the selection modal. Hosts inject it with Program.Send.
type ShowModalMsg struct{}

// ResetMsg dismisses the modal and clears all transient selection state.
type ResetMsg struct{}

type reconcileMsg time.Time

type namePromptMsg struct {
	auth auth.Authenticator
	need bool
	err  error
}

type loginDoneMsg struct {
	err error
}

func reconcileTick() tea.Cmd {
	return tea.Tick(reconcileInterval, func(t time.Time) tea.Msg {
		return reconcileMsg(t)
	})
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// LoginFunc performs a login attempt on behalf of the UI. It blocks until the
// provider resolves, so the UI always invokes it from a command.
type LoginFunc func(ctx context.Context, a auth.Authenticator, accountName string) error

// Params configures a new Model.
type Params struct {
	AppName        string
	Authenticators []auth.Authenticator
	Login          LoginFunc
	ButtonLabel    string
	Theme          *Theme
}

// Model is the full selection-flow state machine.
type Model struct {
	ctx         context.Context
	auths       []auth.Authenticator
	login       LoginFunc
	appName     string
	buttonLabel string
	theme       *Theme
	keys        keyMap

	screen screen
	cursor int
	rows   []row
	fp     string

	filterOn    bool
	filterQuery string

	input    textinput.Model
	inputErr string

	pending     auth.Authenticator
	pendingText string

	msgKind  messageKind
	msgTitle string
	msgBody  string

	dlCursor int

	width  int
	height int
}

// New builds the selection UI over the given providers. The context bounds
// every provider call the UI issues.
func New(ctx context.Context, p Params) Model {
	theme := p.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	label := p.ButtonLabel
	if label == "" {
		label = defaultButtonLabel
	}

	ti := textinput.New()
	ti.Placeholder = "Account name"
	ti.CharLimit = 64
	ti.Prompt = "> "

	m := Model{
		ctx:         ctx,
		auths:       p.Authenticators,
		login:       p.Login,
		appName:     p.AppName,
		buttonLabel: label,
		theme:       theme,
		keys:        defaultKeyMap(),
		screen:      screenHidden,
		input:       ti,
	}
	m.refreshRows()
	return m
}

func (m Model) Init() tea.Cmd {
	return reconcileTick()
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case reconcileMsg:
		m.reconcile()
		return m, reconcileTick()

	case ShowModalMsg:
		m.showModal()
		return m, nil

	case ResetMsg:
		m.reset()
		return m, nil

	case namePromptMsg:
		if msg.err != nil {
			m.showMessage(messageError, "Login Error:", msg.err.Error())
			return m, nil
		}
		if msg.need {
			m.pending = msg.auth
			m.pendingText = displayName(msg.auth)
			m.inputErr = ""
			m.input.SetValue("")
			m.input.Focus()
			m.screen = screenAccountInput
			return m, textinput.Blink
		}
		return m, m.startLogin(msg.auth, "")

	case loginDoneMsg:
		if msg.err == nil {
			m.reset()
			return m, nil
		}
		var le *auth.LoginError
		if errors.As(msg.err, &le) {
			body := le.Error()
			if le.Err != nil {
				body = le.Err.Error()
			}
			m.showMessage(messageError, m.pendingText+" errored while logging in:", body)
		} else {
			m.showMessage(messageError, "Login Error:", msg.err.Error())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenHidden:
		switch {
		case key.Matches(msg, m.keys.Open):
			m.showModal()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil

	case screenSelection:
		return m.updateSelection(msg)

	case screenAccountInput:
		return m.updateAccountInput(msg)

	case screenWaiting:
		// A waiting modal can be dismissed; the provider call keeps
		// running and its outcome is dropped on the floor here, not
		// in the orchestrator.
		if key.Matches(msg, m.keys.Back) {
			m.reset()
		}
		return m, nil

	case screenMessage:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
			m.dismissMessage()
		}
		return m, nil

	case screenGetAuthenticator:
		return m.updateGetAuthenticator(msg)

	case screenDownload:
		return m.updateDownload(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

// reconcile re-samples provider state. Rows are rebuilt only on a fingerprint
// change, and a fully errored provider set forces the onboarding screen when
// the picker is up.
func (m *Model) reconcile() {
	fp := fingerprint(m.auths)
	if fp == m.fp {
		return
	}
	m.refreshRows()
	if !allErrored(m.auths) {
		return
	}
	switch m.screen {
	case screenSelection, screenAccountInput:
		m.input.SetValue("")
		m.input.Blur()
		m.inputErr = ""
		m.pending = nil
		m.pendingText = ""
		m.screen = screenGetAuthenticator
		m.dlCursor = 0
	}
}

func (m *Model) showModal() {
	if allErrored(m.auths) {
		m.resetProviders()
	}
	m.refreshRows()
	m.cursor = 0
	m.filterOn = false
	m.filterQuery = ""
	m.screen = screenSelection
}

// resetProviders gives every provider a fresh shot at initialization.
func (m *Model) resetProviders() {
	for _, a := range m.auths {
		a.Reset()
	}
}

func (m *Model) reset() {
	m.screen = screenHidden
	m.cursor = 0
	m.dlCursor = 0
	m.filterOn = false
	m.filterQuery = ""
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Blur()
	m.pending = nil
	m.pendingText = ""
	m.msgTitle = ""
	m.msgBody = ""
}

func (m *Model) startLogin(a auth.Authenticator, accountName string) tea.Cmd {
	m.pending = a
	m.pendingText = displayName(a)
	m.screen = screenWaiting
	login := m.login
	ctx := m.ctx
	return func() tea.Msg {
		return loginDoneMsg{err: login(ctx, a, accountName)}
	}
}

func displayName(a auth.Authenticator) string {
	if text := a.Style().Text; text != "" {
		return text
	}
	return a.ID()
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenHidden:
		body = m.viewTrigger()
	case screenSelection:
		body = m.theme.Modal.Render(m.viewSelection())
	case screenAccountInput:
		body = m.theme.Modal.Render(m.viewAccountInput())
	case screenWaiting:
		body = m.theme.Modal.Render(m.viewWaiting())
	case screenMessage:
		body = m.theme.Modal.Render(m.viewMessage())
	case screenGetAuthenticator:
		body = m.theme.Modal.Render(m.viewGetAuthenticator())
	case screenDownload:
		body = m.theme.Modal.Render(m.viewDownload())
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewTrigger() string {
	var b strings.Builder
	b.WriteString(m.theme.Button.Render(m.buttonLabel))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("enter: log in · q: quit"))
	return b.String()
}
