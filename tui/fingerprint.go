package tui

import (
	"strconv"
	"strings"

	"github.com/akells/uniauth/auth"
)

// fingerprint condenses the drawable state of every provider into one string.
// The selection screen only rebuilds its rows when this value changes, so a
// reconcile tick that observed no state movement costs a string compare and
// nothing else.
func fingerprint(auths []auth.Authenticator) string {
	var b strings.Builder
	for _, a := range auths {
		b.WriteString(a.Style().Text)
		b.WriteByte('|')
		b.WriteString(strconv.FormatBool(a.IsLoading()))
		b.WriteByte('|')
		b.WriteString(strconv.FormatBool(a.IsErrored()))
		b.WriteByte(';')
	}
	return b.String()
}

// allErrored reports whether every provider has failed initialization. An
// empty list counts as errored so a host with zero usable providers lands on
// the onboarding screen rather than an empty picker.
func allErrored(auths []auth.Authenticator) bool {
	for _, a := range auths {
		if !a.IsErrored() {
			return false
		}
	}
	return true
}
