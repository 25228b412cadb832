// Package session persists the resumable-login record: an expiration
// timestamp, an authenticator identifier, and an optional account name. The
// engine owns the expiration math; this package only moves strings in and out
// of a pluggable key-value backend.
package session

import (
	"strconv"
	"time"
)

// Storage key names. These are part of the on-disk contract and must stay
// stable across releases, or existing sessions stop resuming.
const (
	expirationKey      = "session-expiration"
	authenticatorIDKey = "session-authenticator-id"
	accountNameKey     = "session-account-name"
)

// KV is the minimal synchronous key-value surface a backend provides.
// Get reports absence (or any backend failure) as ok=false: session reads
// must never surface an error to the login flow.
type KV interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
	Delete(key string) error
	Clear() error
}

// Record is one persisted session.
type Record struct {
	ExpiresAt       time.Time
	AuthenticatorID string
	AccountName     string
}

// Store adapts a KV backend to the session record shape.
type Store struct {
	kv KV
}

// NewStore wraps the given backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Save writes the expiration and authenticator keys. The account name is
// written separately by SetAccountName because the engine persists it at a
// different point in the login flow.
func (s *Store) Save(expiresAt time.Time, authenticatorID string) error {
	ms := strconv.FormatInt(expiresAt.UnixMilli(), 10)
	if err := s.kv.Set(expirationKey, ms); err != nil {
		return err
	}
	return s.kv.Set(authenticatorIDKey, authenticatorID)
}

// SetAccountName records the account name used for the current session.
func (s *Store) SetAccountName(name string) error {
	return s.kv.Set(accountNameKey, name)
}

// Read loads the persisted record. A missing or malformed expiration or a
// missing authenticator identifier yields ok=false: partial writes are
// indistinguishable from no session. Read never fails.
func (s *Store) Read() (Record, bool) {
	raw, ok := s.kv.Get(expirationKey)
	if !ok {
		return Record{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Record{}, false
	}
	id, ok := s.kv.Get(authenticatorIDKey)
	if !ok || id == "" {
		return Record{}, false
	}
	rec := Record{
		ExpiresAt:       time.UnixMilli(ms),
		AuthenticatorID: id,
	}
	if name, ok := s.kv.Get(accountNameKey); ok {
		rec.AccountName = name
	}
	return rec, true
}

// Clear removes all three session keys.
func (s *Store) Clear() error {
	return s.kv.Clear()
}
