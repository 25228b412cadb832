package authmock

import (
	"context"

	"github.com/google/uuid"
)

// User is a minimal auth.User whose session identifier is generated once at
// construction.
type User struct {
	name      string
	sessionID string
}

// NewUser returns a user with the given account name. An empty name gets a
// generated placeholder so callers always see a non-empty identity.
func NewUser(name string) *User {
	if name == "" {
		name = "user-" + uuid.NewString()[:8]
	}
	return &User{name: name, sessionID: uuid.NewString()}
}

func (u *User) AccountName(ctx context.Context) (string, error) {
	return u.name, nil
}

// SessionID returns the identifier minted for this login.
func (u *User) SessionID() string { return u.sessionID }
