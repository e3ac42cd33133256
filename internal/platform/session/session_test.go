package session

import (
	"bytes"
	"testing"
)

func runStoreContract(t *testing.T, store Store) {
	t.Helper()

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set("greeting", []byte("hello")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok, err := store.Get("greeting")
	if err != nil || !ok {
		t.Fatalf("expected value, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(value, []byte("hello")) {
		t.Fatalf("unexpected value: %q", value)
	}

	// Writes are visible immediately, including overwrites.
	if err := store.Set("greeting", []byte("goodbye")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, _, _ = store.Get("greeting")
	if !bytes.Equal(value, []byte("goodbye")) {
		t.Fatalf("expected overwrite to win, got %q", value)
	}

	if err := store.Remove("greeting"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok, _ := store.Get("greeting"); ok {
		t.Fatal("expected key removed")
	}

	// Removing an absent key is a no-op.
	if err := store.Remove("greeting"); err != nil {
		t.Fatalf("remove of absent key failed: %v", err)
	}

	if err := store.Set("a", []byte("1")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set("b", []byte("2")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, ok, _ := store.Get("a"); ok {
		t.Fatal("expected reset to clear all keys")
	}
	if _, ok, _ := store.Get("b"); ok {
		t.Fatal("expected reset to clear all keys")
	}
}

func TestMemoryStoreContract(t *testing.T) {
	store := NewMemoryStore()
	defer func() { _ = store.Close() }()
	runStoreContract(t, store)
}

func TestSQLiteStoreContract(t *testing.T) {
	store, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	defer func() { _ = store.Close() }()
	runStoreContract(t, store)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	original := []byte("immutable")
	if err := store.Set("key", original); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	original[0] = 'X'

	value, _, _ := store.Get("key")
	if !bytes.Equal(value, []byte("immutable")) {
		t.Fatalf("stored value aliased caller slice: %q", value)
	}

	value[0] = 'Y'
	again, _, _ := store.Get("key")
	if !bytes.Equal(again, []byte("immutable")) {
		t.Fatalf("returned value aliased stored slice: %q", again)
	}
}
