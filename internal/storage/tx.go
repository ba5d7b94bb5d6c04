// ABOUTME: Multi-statement transaction support with all-or-nothing semantics.
// ABOUTME: A failing statement rolls back everything that ran before it.
package storage

import "fmt"

// Statement is one parameterized SQL statement in a transaction batch.
type Statement struct {
	Query string
	Args  []any
}

// ExecTransaction runs the statements in order inside one transaction.
// The first failure rolls back every prior statement and is returned
// wrapped; on success everything commits together.
func (s *Store) ExecTransaction(stmts []Statement) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i, stmt := range stmts {
		if _, err := tx.Exec(stmt.Query, stmt.Args...); err != nil {
			s.logErr("transaction", stmt.Query, stmt.Args, err)
			return fmt.Errorf("transaction statement %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}
