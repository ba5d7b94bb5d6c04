// ABOUTME: Tests for connection lifecycle, pragmas, and schema initialization.
// ABOUTME: Also holds the shared test store helper used across the package.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fitdb/fitdb/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fitdb-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "fitdb.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	s.SetLogger(log.NewWithOptions(io.Discard, log.Options{}))
	t.Cleanup(func() { s.Close() })

	return s
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fitdb-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "nested", "dir", "fitdb.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Expected database file at %s: %v", dbPath, err)
	}
}

func TestOpenInMemory(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer s.Close()

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.ID == 0 {
		t.Error("Expected generated id")
	}
}

func TestForeignKeysEnabled(t *testing.T) {
	s := setupTestStore(t)

	var enabled int
	if err := s.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("PRAGMA query failed: %v", err)
	}
	if enabled != 1 {
		t.Errorf("Expected foreign_keys=1, got %d", enabled)
	}
}

func TestSchemaInitIsIdempotent(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fitdb-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "fitdb.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("First open failed: %v", err)
	}

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopening runs initSchema again; existing data must survive.
	s2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Second open failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.GetUserByID(u.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if got == nil || got.Name != "Ada" {
		t.Errorf("Expected user to survive reopen, got %+v", got)
	}
}

func TestAllTablesCreated(t *testing.T) {
	s := setupTestStore(t)

	for _, tbl := range tables {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", tbl.name,
		).Scan(&name)
		if err != nil {
			t.Errorf("Table %s missing: %v", tbl.name, err)
		}
	}
}

func TestCloseIsNilSafe(t *testing.T) {
	var s Store
	if err := s.Close(); err != nil {
		t.Errorf("Close on zero store: %v", err)
	}
}
