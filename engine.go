// Package uniauth orchestrates login across pluggable authenticators: one
// constructor call wires providers, session persistence, and a terminal UI
// for manual provider selection.
package uniauth

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akells/uniauth/auth"
	"github.com/akells/uniauth/session"
	"github.com/akells/uniauth/tui"
)

const (
	// sessionDuration is how long a persisted login stays resumable.
	sessionDuration = 30 * 24 * time.Hour

	// loadingPollInterval paces the session-resume poller while the
	// remembered provider is still initializing.
	loadingPollInterval = 250 * time.Millisecond
)

// RenderConfig enables the interactive selection UI. Nil means the host runs
// headless, which is only legal when some authenticator auto-logs-in.
type RenderConfig struct {
	// Input and Output back the terminal program. Nil falls through to
	// the process defaults.
	Input  io.Reader
	Output io.Writer

	// ButtonLabel overrides the login trigger text.
	ButtonLabel string

	Theme     *tui.Theme
	AltScreen bool
}

// Config wires an Engine.
type Config struct {
	AppName        string
	Authenticators []auth.Authenticator

	// OnLogin receives the authenticated identities of every successful
	// login, whether it came from autologin, session resume, or the UI.
	OnLogin func(users []auth.User)

	// OnError receives failures from background work (session resume).
	// Synchronous paths return their errors instead. Optional.
	OnError func(err error)

	// Store persists session state between runs.
	Store session.KV

	Render *RenderConfig
}

// Engine drives the login lifecycle for one application.
type Engine struct {
	appName        string
	authenticators []auth.Authenticator
	onLogin        func([]auth.User)
	onError        func(error)
	store          *session.Store
	render         *RenderConfig

	mu        sync.Mutex
	active    auth.Authenticator
	autologin bool
	resume    *Poller
	program   *tea.Program
	sendToUI  func(tea.Msg)

	uiModel tui.Model
	hasUI   bool
}

// New validates the config and builds an Engine. Init must be called before
// anything else.
func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("uniauth: Config.Store is required")
	}
	if cfg.OnLogin == nil {
		return nil, fmt.Errorf("uniauth: Config.OnLogin is required")
	}
	return &Engine{
		appName:        cfg.AppName,
		authenticators: cfg.Authenticators,
		onLogin:        cfg.OnLogin,
		onError:        cfg.OnError,
		store:          session.NewStore(cfg.Store),
		render:         cfg.Render,
	}, nil
}

// Init runs the startup decision chain: autologin short-circuits everything,
// otherwise a stored session is resumed in the background and the selection
// UI is prepared. With no UI configured and no autologin provider, Init fails
// with ErrRenderConfigRequired.
func (e *Engine) Init(ctx context.Context) error {
	for _, a := range e.authenticators {
		if a.ShouldAutoLogin() {
			e.autologin = true
			return e.LoginUser(ctx, a, "")
		}
	}

	e.attemptSessionLogin(ctx)

	if e.render == nil {
		return ErrRenderConfigRequired
	}

	renderable := make([]auth.Authenticator, 0, len(e.authenticators))
	for _, a := range e.authenticators {
		if a.ShouldRender() {
			renderable = append(renderable, a)
		}
	}
	e.uiModel = tui.New(ctx, tui.Params{
		AppName:        e.appName,
		Authenticators: renderable,
		Login:          e.LoginUser,
		ButtonLabel:    e.render.ButtonLabel,
		Theme:          e.render.Theme,
	})
	e.hasUI = true
	return nil
}

// attemptSessionLogin resumes a stored session without blocking Init. The
// remembered provider may still be initializing, so the login fires from a
// poller once the provider settles.
func (e *Engine) attemptSessionLogin(ctx context.Context) {
	rec, ok := e.store.Read()
	if !ok {
		return
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = e.store.Clear()
		return
	}

	var match auth.Authenticator
	for _, a := range e.authenticators {
		if a.ID() == rec.AuthenticatorID {
			match = a
			break
		}
	}
	if match == nil {
		return
	}

	accountName := rec.AccountName
	p := NewPoller(loadingPollInterval,
		func() bool { return !match.IsLoading() },
		func() {
			if err := e.LoginUser(ctx, match, accountName); err != nil {
				e.reportError(err)
			}
		},
	)

	e.mu.Lock()
	e.resume = p
	e.mu.Unlock()
	p.Start()
}

// LoginUser runs one login attempt against a specific authenticator. Session
// state is written before the provider call so a mid-login crash still leaves
// a resumable record, and torn down again if the provider refuses.
func (e *Engine) LoginUser(ctx context.Context, a auth.Authenticator, accountName string) error {
	e.mu.Lock()
	e.active = a
	e.mu.Unlock()

	if err := e.store.Save(time.Now().Add(sessionDuration), a.ID()); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	users, err := a.Login(ctx, accountName)
	if err != nil {
		_ = e.store.Clear()
		return err
	}

	if accountName != "" {
		if err := e.store.SetAccountName(accountName); err != nil {
			_ = e.store.Clear()
			return fmt.Errorf("persist account name: %w", err)
		}
	}

	e.onLogin(users)

	// A login that did not come from the UI (session resume, host call)
	// may complete while a modal is up. Collapse it. Autologin never has
	// a UI to collapse.
	if !e.autologin {
		e.send(tui.ResetMsg{})
	}
	return nil
}

// LogoutUser logs out the active authenticator and clears the stored session.
// The session is cleared even when the provider's logout fails so a broken
// provider cannot pin a user logged in forever.
func (e *Engine) LogoutUser(ctx context.Context) error {
	e.mu.Lock()
	a := e.active
	e.mu.Unlock()
	if a == nil {
		return ErrNoActiveAuthenticator
	}

	err := a.Logout(ctx)
	if cerr := e.store.Clear(); err == nil {
		err = cerr
	}
	return err
}

// Run starts the terminal UI and blocks until it exits. Headless engines
// (autologin) return immediately.
func (e *Engine) Run() error {
	e.mu.Lock()
	if !e.hasUI {
		e.mu.Unlock()
		return nil
	}
	var opts []tea.ProgramOption
	if e.render.Input != nil {
		opts = append(opts, tea.WithInput(e.render.Input))
	}
	if e.render.Output != nil {
		opts = append(opts, tea.WithOutput(e.render.Output))
	}
	if e.render.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(e.uiModel, opts...)
	e.program = p
	e.sendToUI = p.Send
	e.mu.Unlock()

	_, err := p.Run()

	e.mu.Lock()
	e.program = nil
	e.sendToUI = nil
	e.mu.Unlock()
	return err
}

// Close stops background polling and shuts down a running UI. Safe to call
// multiple times and regardless of how far Init got.
func (e *Engine) Close() {
	e.mu.Lock()
	r := e.resume
	p := e.program
	e.mu.Unlock()

	if r != nil {
		r.Stop()
	}
	if p != nil {
		p.Quit()
	}
}

// ShowAuthModal opens the provider picker in a running UI.
func (e *Engine) ShowAuthModal() {
	e.send(tui.ShowModalMsg{})
}

// Reset dismisses the UI back to its idle state.
func (e *Engine) Reset() {
	e.send(tui.ResetMsg{})
}

// UI exposes the selection model so hosts can embed it in their own Bubble
// Tea program instead of calling Run.
func (e *Engine) UI() (tea.Model, bool) {
	return e.uiModel, e.hasUI
}

// ActiveAuthenticator returns the provider of the most recent login attempt,
// or nil.
func (e *Engine) ActiveAuthenticator() auth.Authenticator {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

func (e *Engine) send(msg tea.Msg) {
	e.mu.Lock()
	send := e.sendToUI
	e.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (e *Engine) reportError(err error) {
	if e.onError != nil {
		e.onError(err)
	}
}
