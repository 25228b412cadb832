// Package authmock provides a fully scriptable authenticator for tests and
// demos. Every behaviour knob the engine reacts to is settable, and every
// call the engine makes is recorded.
package authmock

import (
	"context"
	"sync"

	"github.com/akells/uniauth/auth"
)

// Option tweaks a mock at construction time.
type Option func(*Authenticator)

// WithStyle sets the selection-row presentation.
func WithStyle(s auth.ButtonStyle) Option {
	return func(a *Authenticator) { a.style = s }
}

// WithLoading starts the mock in its initializing state.
func WithLoading() Option {
	return func(a *Authenticator) { a.loading = true }
}

// WithInitError starts the mock errored.
func WithInitError(err error) Option {
	return func(a *Authenticator) {
		a.errored = true
		a.err = err
	}
}

// WithAutoLogin marks the mock as an autologin provider.
func WithAutoLogin() Option {
	return func(a *Authenticator) { a.autoLogin = true }
}

// WithHidden keeps the mock out of the selection list.
func WithHidden() Option {
	return func(a *Authenticator) { a.render = false }
}

// WithAccountNameRequired makes login demand a typed account name.
func WithAccountNameRequired() Option {
	return func(a *Authenticator) { a.requestName = true }
}

// WithGetKeyConfirmation makes the waiting screen show the provider's
// confirm instruction.
func WithGetKeyConfirmation() Option {
	return func(a *Authenticator) { a.getKeyConfirm = true }
}

// WithOnboardingLink sets the install link shown on the download screen.
func WithOnboardingLink(link string) Option {
	return func(a *Authenticator) { a.onboardingLink = link }
}

// WithLoginError makes every Login call fail with err.
func WithLoginError(err error) Option {
	return func(a *Authenticator) { a.loginErr = err }
}

// WithUsers sets the identities a successful login returns. Without it,
// login returns a single generated user.
func WithUsers(users ...auth.User) Option {
	return func(a *Authenticator) { a.users = users }
}

// Authenticator is a scripted auth.Authenticator.
type Authenticator struct {
	id             string
	style          auth.ButtonStyle
	render         bool
	autoLogin      bool
	requestName    bool
	getKeyConfirm  bool
	onboardingLink string

	mu          sync.Mutex
	loading     bool
	errored     bool
	err         error
	loginErr    error
	logoutErr   error
	users       []auth.User
	loginCalls  []string
	logoutCalls int
	resetCalls  int
}

// New builds a mock with the given stable identifier.
func New(id string, opts ...Option) *Authenticator {
	a := &Authenticator{
		id:     id,
		style:  auth.ButtonStyle{Text: id},
		render: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Authenticator) ID() string { return a.id }

func (a *Authenticator) Init(ctx context.Context) error { return nil }

func (a *Authenticator) Login(ctx context.Context, accountName string) ([]auth.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loginCalls = append(a.loginCalls, accountName)
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	if len(a.users) == 0 {
		return []auth.User{NewUser(accountName)}, nil
	}
	return a.users, nil
}

func (a *Authenticator) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logoutCalls++
	return a.logoutErr
}

func (a *Authenticator) IsLoading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *Authenticator) IsErrored() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errored
}

func (a *Authenticator) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

func (a *Authenticator) Style() auth.ButtonStyle { return a.style }

func (a *Authenticator) ShouldRender() bool    { return a.render }
func (a *Authenticator) ShouldAutoLogin() bool { return a.autoLogin }

func (a *Authenticator) ShouldRequestAccountName(ctx context.Context) (bool, error) {
	return a.requestName, nil
}

func (a *Authenticator) OnboardingLink() string { return a.onboardingLink }

func (a *Authenticator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resetCalls++
	a.loading = false
	a.errored = false
	a.err = nil
}

func (a *Authenticator) RequiresGetKeyConfirmation() bool { return a.getKeyConfirm }

// ---------------------------------------------------------------------------
// Scripting and inspection
// ---------------------------------------------------------------------------

// SetLoading flips the initializing state at runtime.
func (a *Authenticator) SetLoading(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = v
}

// SetErrored flips the errored state at runtime.
func (a *Authenticator) SetErrored(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errored = err != nil
	a.err = err
}

// SetLoginError changes the scripted login outcome at runtime.
func (a *Authenticator) SetLoginError(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loginErr = err
}

// SetLogoutError changes the scripted logout outcome at runtime.
func (a *Authenticator) SetLogoutError(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logoutErr = err
}

// LoginCalls returns the account names passed to every Login call, in order.
func (a *Authenticator) LoginCalls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.loginCalls))
	copy(out, a.loginCalls)
	return out
}

// LogoutCount returns how many times Logout ran.
func (a *Authenticator) LogoutCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.logoutCalls
}

// ResetCount returns how many times Reset ran.
func (a *Authenticator) ResetCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.resetCalls
}
