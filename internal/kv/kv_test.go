package kv

import (
	"path/filepath"
	"testing"
)

func TestMemory_GetSetRemove(t *testing.T) {
	s := NewMemory()

	if _, ok, _ := s.Get("missing"); ok {
		t.Fatal("Get on empty store reported ok")
	}

	if err := s.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get("a")
	if err != nil || !ok || v != "1" {
		t.Fatalf("Get = (%q, %v, %v), want (1, true, nil)", v, ok, err)
	}

	if err := s.Set("a", "2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, _, _ = s.Get("a")
	if v != "2" {
		t.Fatalf("Get after overwrite = %q, want 2", v)
	}

	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get("a"); ok {
		t.Fatal("Get after Remove reported ok")
	}
}

func TestSQLite_RoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "kv.db")
	s, err := OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if err := s.Set("events", `{"v":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get("events")
	if err != nil || !ok || v != `{"v":1}` {
		t.Fatalf("Get = (%q, %v, %v)", v, ok, err)
	}

	// Upsert keeps a single row per key.
	if err := s.Set("events", `{"v":2}`); err != nil {
		t.Fatalf("Set upsert: %v", err)
	}
	v, _, _ = s.Get("events")
	if v != `{"v":2}` {
		t.Fatalf("Get after upsert = %q", v)
	}

	if err := s.Remove("events"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get("events"); ok {
		t.Fatal("Get after Remove reported ok")
	}

	// Removing a missing key is not an error.
	if err := s.Remove("events"); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "kv.db")

	s, err := OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set("consent", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.Close()

	s2, err := OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get("consent")
	if err != nil || !ok || v != "true" {
		t.Fatalf("Get after reopen = (%q, %v, %v)", v, ok, err)
	}
}
