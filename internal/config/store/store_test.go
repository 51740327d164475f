package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !IsNotFound(NotFoundError{Entity: "agent", Key: "edge-1"}) {
		t.Error("direct NotFoundError should match")
	}
	if !IsNotFound(fmt.Errorf("lookup: %w", NotFoundError{Entity: "setting", Key: "address"})) {
		t.Error("wrapped NotFoundError should match")
	}
	if !IsNotFound(fmt.Errorf("a: %w", fmt.Errorf("b: %w", NotFoundError{Entity: "agent"}))) {
		t.Error("double-wrapped NotFoundError should match")
	}
	if IsNotFound(nil) {
		t.Error("nil should not match")
	}
	if IsNotFound(errors.New("agent edge-1 not found")) {
		t.Error("unrelated error with a similar message should not match")
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	t.Parallel()

	err := NotFoundError{Entity: "agent", Key: "edge-1"}
	if got := err.Error(); got != "agent edge-1 not found" {
		t.Errorf("Error() = %q", got)
	}

	err = NotFoundError{Entity: "setting"}
	if got := err.Error(); got != "setting not found" {
		t.Errorf("Error() without key = %q", got)
	}
}

func TestOpenCreatesAndReopens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "config.db")
	ctx := context.Background()

	s, err := Open(Options{DBPath: dbPath})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if s.Path() != dbPath {
		t.Fatalf("Path() = %q, want %q", s.Path(), dbPath)
	}
	if err := s.SaveSettings(ctx, map[string]string{"address": "10.0.0.5:7777"}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// Reopening the same file sees the persisted row; the schema setup
	// must be idempotent.
	s, err = Open(Options{DBPath: dbPath})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	value, err := s.GetSetting(ctx, "address")
	if err != nil {
		t.Fatalf("GetSetting() after reopen failed: %v", err)
	}
	if value != "10.0.0.5:7777" {
		t.Fatalf("persisted value = %q", value)
	}
}

func TestOpenReadOnlyMissingFile(t *testing.T) {
	_, err := Open(Options{
		DBPath:   filepath.Join(t.TempDir(), "absent.db"),
		ReadOnly: true,
	})
	if err == nil {
		t.Fatal("expected error opening a missing database read-only")
	}
}
