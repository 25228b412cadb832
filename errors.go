package uniauth

import "errors"

// ErrRenderConfigRequired is returned from Init when manual selection would be
// needed but no render configuration was supplied. Without a UI a human has no
// way to ever pick a provider, so this is fatal rather than a warning.
var ErrRenderConfigRequired = errors.New("Render Configuration is required when no auto login authenticator is provided")

// ErrNoActiveAuthenticator is returned by LogoutUser when no login was ever
// attempted.
var ErrNoActiveAuthenticator = errors.New("no active authenticator defined, did you login before attempting to logout?")
