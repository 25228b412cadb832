// Package auth defines the provider contract shared by the login engine, the
// terminal UI, and every authenticator implementation.
package auth

import "context"

// Authenticator is the capability contract every login provider satisfies.
// Implementations are external and independently evolving: they may flip from
// loading to ready or to errored at any time with no notification, so callers
// observe state by re-polling IsLoading/IsErrored.
type Authenticator interface {
	// ID returns a stable identifier for this authenticator. It is written
	// into the session store on login and matched on session resume, so it
	// must not change across process restarts.
	ID() string

	// Init prepares the authenticator for use (extension discovery, RPC
	// warmup, etc.). The engine never calls it; hosts initialize providers
	// before constructing the engine.
	Init(ctx context.Context) error

	// Login performs the login handshake and returns the authenticated
	// identities. An empty accountName means none was requested.
	Login(ctx context.Context, accountName string) ([]User, error)

	// Logout terminates the provider-side session.
	Logout(ctx context.Context) error

	// IsLoading reports whether the authenticator is still initializing.
	// Polled, never pushed.
	IsLoading() bool

	// IsErrored reports whether the authenticator failed to initialize.
	IsErrored() bool

	// Err returns the initialization error, or nil.
	Err() error

	// Style describes how the authenticator's selection row is drawn.
	Style() ButtonStyle

	// ShouldRender reports whether the authenticator belongs in the
	// selection list at all.
	ShouldRender() bool

	// ShouldAutoLogin reports whether this authenticator logs the user in
	// without any UI. Evaluated once at engine init.
	ShouldAutoLogin() bool

	// ShouldRequestAccountName reports whether login needs an account name
	// typed by the user first.
	ShouldRequestAccountName(ctx context.Context) (bool, error)

	// OnboardingLink returns where a user can obtain this authenticator.
	OnboardingLink() string

	// Reset returns the authenticator to its pre-init state so it can retry
	// initialization.
	Reset()

	// RequiresGetKeyConfirmation reports whether the provider shows its own
	// confirmation prompt when keys are requested.
	RequiresGetKeyConfirmation() bool
}

// ButtonStyle carries the presentation hints an authenticator exposes for its
// selection row.
type ButtonStyle struct {
	Text       string
	Icon       string
	TextColor  string
	Background string
}

// User is one authenticated identity returned by a successful login. The
// engine treats it as opaque and forwards it to the host callback.
type User interface {
	AccountName(ctx context.Context) (string, error)
}
