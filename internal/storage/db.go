// ABOUTME: SQLite connection provider and lifecycle for the fitness store.
// ABOUTME: Uses modernc.org/sqlite via sqlx (pure Go, no CGO required).
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store is the single shared handle to the fitness database. Construct it
// once with Open and pass it explicitly; every table operation, transaction,
// and export goes through it.
type Store struct {
	db     *sqlx.DB
	dbPath string
	log    *log.Logger
}

// Open opens or creates a SQLite database at the given path, enables
// foreign-key enforcement, and runs the idempotent schema setup.
// The path ":memory:" yields a private in-memory instance.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		// Ensure parent directory exists
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer: all operations share one connection, so pragmas
	// set below apply to every statement.
	db.SetMaxOpenConns(1)

	if dbPath != ":memory:" {
		if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
			_ = db.Close()
			return nil, fmt.Errorf("set database permissions: %w", err)
		}
	}

	s := &Store{
		db:     db,
		dbPath: dbPath,
		log:    log.NewWithOptions(os.Stderr, log.Options{Prefix: "storage"}),
	}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

// OpenDefault opens the database at the default XDG data path.
func OpenDefault() (*Store, error) {
	return Open(DefaultDBPath())
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitdb")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "fitdb.db")
}

// SetLogger replaces the store's logger.
func (s *Store) SetLogger(l *log.Logger) {
	if l != nil {
		s.log = l
	}
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configurePragmas applies the connection settings the layer relies on.
// Foreign-key enforcement is off by default in SQLite and must be turned
// on for every new database handle.
func (s *Store) configurePragmas() error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// logErr records a failed statement with its query and arguments before
// the error is handed back to the caller.
func (s *Store) logErr(op, query string, args []any, err error) {
	s.log.Error("operation failed", "op", op, "query", query, "args", args, "err", err)
}
