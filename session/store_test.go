package session

import (
	"strconv"
	"testing"
	"time"
)

// mapKV is an in-memory backend for exercising the Store adapter.
type mapKV map[string]string

func (m mapKV) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapKV) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m mapKV) Delete(key string) error {
	delete(m, key)
	return nil
}

func (m mapKV) Clear() error {
	for k := range m {
		delete(m, k)
	}
	return nil
}

func TestStoreRoundTrip(t *testing.T) {
	kv := mapKV{}
	s := NewStore(kv)

	expires := time.Now().Add(time.Hour).Truncate(time.Millisecond)
	if err := s.Save(expires, "anchor"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.SetAccountName("alice"); err != nil {
		t.Fatalf("SetAccountName: %v", err)
	}

	rec, ok := s.Read()
	if !ok {
		t.Fatal("Read: no record")
	}
	if !rec.ExpiresAt.Equal(expires) {
		t.Fatalf("ExpiresAt = %v, want %v", rec.ExpiresAt, expires)
	}
	if rec.AuthenticatorID != "anchor" || rec.AccountName != "alice" {
		t.Fatalf("record = %+v", rec)
	}
}

func TestStoreExpirationStoredAsEpochMillis(t *testing.T) {
	kv := mapKV{}
	expires := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := NewStore(kv).Save(expires, "anchor"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw := kv["session-expiration"]
	want := strconv.FormatInt(expires.UnixMilli(), 10)
	if raw != want {
		t.Fatalf("stored expiration = %q, want %q", raw, want)
	}
}

func TestStoreReadMissing(t *testing.T) {
	if _, ok := NewStore(mapKV{}).Read(); ok {
		t.Fatal("Read on empty backend reported a record")
	}
}

func TestStoreReadMalformed(t *testing.T) {
	cases := map[string]mapKV{
		"garbage expiration": {
			"session-expiration":       "tomorrow",
			"session-authenticator-id": "anchor",
		},
		"missing authenticator": {
			"session-expiration": "1700000000000",
		},
		"empty authenticator": {
			"session-expiration":       "1700000000000",
			"session-authenticator-id": "",
		},
	}
	for name, kv := range cases {
		if _, ok := NewStore(kv).Read(); ok {
			t.Errorf("%s: Read reported a record", name)
		}
	}
}

func TestStoreAccountNameOptional(t *testing.T) {
	kv := mapKV{}
	s := NewStore(kv)
	if err := s.Save(time.Now().Add(time.Hour), "anchor"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rec, ok := s.Read()
	if !ok {
		t.Fatal("Read: no record")
	}
	if rec.AccountName != "" {
		t.Fatalf("AccountName = %q, want empty", rec.AccountName)
	}
}

func TestStoreClear(t *testing.T) {
	kv := mapKV{}
	s := NewStore(kv)
	if err := s.Save(time.Now().Add(time.Hour), "anchor"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.Read(); ok {
		t.Fatal("record survived Clear")
	}
}
