// ABOUTME: Shared building blocks for per-table updates and deletes.
// ABOUTME: Updates go through explicit field-to-column mappings, never raw keys.
package storage

import (
	"fmt"
	"strings"
)

// fieldColumn maps one logical payload field to its schema column.
// SET clauses are built in mapping order.
type fieldColumn struct {
	field  string
	column string
}

// updateByID applies an allow-listed partial update. Unknown keys are
// dropped; a key present with a nil value stores NULL. Updating an id
// that does not exist affects zero rows and is not an error.
func (s *Store) updateByID(op, table string, allowed []fieldColumn, id int64, fields map[string]any) error {
	if err := s.checkID(op, id); err != nil {
		return err
	}

	var sets []string
	var args []any
	for _, fc := range allowed {
		if value, ok := fields[fc.field]; ok {
			sets = append(sets, fc.column+" = ?")
			args = append(args, value)
		}
	}
	if len(sets) == 0 {
		s.log.Error("validation failed", "op", op, "err", ErrNoFields)
		return fmt.Errorf("%s: %w", op, ErrNoFields)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))
	if _, err := s.db.Exec(query, args...); err != nil {
		s.logErr(op, query, args, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// deleteByID removes a row if present. Deleting an id that does not
// exist is not an error.
func (s *Store) deleteByID(op, table string, id int64) error {
	if err := s.checkID(op, id); err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	if _, err := s.db.Exec(query, id); err != nil {
		s.logErr(op, query, []any{id}, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
