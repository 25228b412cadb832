package session

import (
	"path/filepath"
	"testing"
)

func tempSQLiteKV(t *testing.T) (*SQLiteKV, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	kv, err := OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("OpenSQLiteKV: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv, path
}

func TestSQLiteKVSetGet(t *testing.T) {
	kv, _ := tempSQLiteKV(t)

	if _, ok := kv.Get("missing"); ok {
		t.Fatal("Get on fresh store reported a value")
	}
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("a", "2"); err != nil {
		t.Fatalf("Set upsert: %v", err)
	}
	if v, ok := kv.Get("a"); !ok || v != "2" {
		t.Fatalf("Get = %q, %v; want %q, true", v, ok, "2")
	}
}

func TestSQLiteKVDeleteAndClear(t *testing.T) {
	kv, _ := tempSQLiteKV(t)
	for _, k := range []string{"a", "b", "c"} {
		if err := kv.Set(k, k); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}

	if err := kv.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := kv.Get("a"); ok {
		t.Fatal("value survived Delete")
	}

	if err := kv.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, k := range []string{"b", "c"} {
		if _, ok := kv.Get(k); ok {
			t.Fatalf("%s survived Clear", k)
		}
	}
}

func TestSQLiteKVPersistsAcrossOpens(t *testing.T) {
	kv, path := tempSQLiteKV(t)
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	again, err := OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	if v, ok := again.Get("a"); !ok || v != "1" {
		t.Fatalf("Get after reopen = %q, %v", v, ok)
	}
}
