package session

import (
	"os"
	"path/filepath"
	"testing"
)

func tempFileKV(t *testing.T) (*FileKV, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	return NewFileKV(path), path
}

func TestFileKVSetGet(t *testing.T) {
	kv, _ := tempFileKV(t)

	if _, ok := kv.Get("missing"); ok {
		t.Fatal("Get on fresh store reported a value")
	}
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("a", "2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, ok := kv.Get("a"); !ok || v != "2" {
		t.Fatalf("Get = %q, %v; want %q, true", v, ok, "2")
	}
}

func TestFileKVPersistsAcrossInstances(t *testing.T) {
	kv, path := tempFileKV(t)
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	again := NewFileKV(path)
	if v, ok := again.Get("a"); !ok || v != "1" {
		t.Fatalf("Get after reopen = %q, %v", v, ok)
	}
}

func TestFileKVDelete(t *testing.T) {
	kv, _ := tempFileKV(t)
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := kv.Get("a"); ok {
		t.Fatal("value survived Delete")
	}
	// Deleting a missing key is not an error.
	if err := kv.Delete("a"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestFileKVClearRemovesFile(t *testing.T) {
	kv, path := tempFileKV(t)
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("store file survived Clear")
	}
	// Clearing an already-empty store is fine.
	if err := kv.Clear(); err != nil {
		t.Fatalf("Clear twice: %v", err)
	}
}

func TestFileKVCorruptFile(t *testing.T) {
	kv, path := tempFileKV(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, ok := kv.Get("a"); ok {
		t.Fatal("Get reported a value from a corrupt store")
	}
	if err := kv.Set("a", "1"); err == nil {
		t.Fatal("Set silently clobbered a corrupt store")
	}
}
