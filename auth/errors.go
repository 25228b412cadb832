package auth

import "fmt"

// LoginError marks a provider-classified login failure, as opposed to an
// arbitrary error escaping a provider call. The UI titles these with the
// authenticator's name; everything else gets generic messaging.
type LoginError struct {
	Authenticator string
	Err           error
}

func (e *LoginError) Error() string {
	if e.Authenticator == "" {
		return fmt.Sprintf("login failed: %v", e.Err)
	}
	return fmt.Sprintf("%s login failed: %v", e.Authenticator, e.Err)
}

func (e *LoginError) Unwrap() error { return e.Err }
