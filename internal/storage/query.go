// ABOUTME: Generic table operations: foreign-key lookups and bulk inserts.
// ABOUTME: Table and column identifiers must match the schema registry exactly.
package storage

import (
	"fmt"
	"strings"
)

// GetByForeignKey returns every row of table whose reference column
// matches value. Identifiers pass through the schema registry; the value
// itself is always bound as a parameter. Rows come back as generic
// column-to-value maps.
func (s *Store) GetByForeignKey(table, column string, value any) ([]map[string]any, error) {
	t, ok := tableByName(table)
	if !ok {
		s.log.Error("validation failed", "op", "get by foreign key", "table", table)
		return nil, fmt.Errorf("get by foreign key: unknown table %q", table)
	}
	if !t.hasRef(column) {
		s.log.Error("validation failed", "op", "get by foreign key", "table", table, "column", column)
		return nil, fmt.Errorf("get by foreign key: %q is not a reference column of %s", column, table)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		strings.Join(t.columns, ", "), t.name, column)
	rows, err := s.db.Queryx(query, value)
	if err != nil {
		s.logErr("get by foreign key", query, []any{value}, err)
		return nil, fmt.Errorf("get by foreign key: %w", err)
	}
	defer rows.Close()

	var results []map[string]any
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("get by foreign key: %w", err)
		}
		// The driver hands TEXT columns back as []byte; normalize so
		// callers see plain strings.
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// BulkInsert inserts rows into table inside a single transaction. Every
// column must exist on the table; a failing row (including one with the
// wrong number of values) rolls back the whole batch.
func (s *Store) BulkInsert(table string, columns []string, rows [][]any) error {
	t, ok := tableByName(table)
	if !ok {
		s.log.Error("validation failed", "op", "bulk insert", "table", table)
		return fmt.Errorf("bulk insert: unknown table %q", table)
	}
	if len(columns) == 0 {
		s.log.Error("validation failed", "op", "bulk insert", "table", table, "err", "no columns")
		return fmt.Errorf("bulk insert: no columns given")
	}
	for _, c := range columns {
		if !t.hasColumn(c) {
			s.log.Error("validation failed", "op", "bulk insert", "table", table, "column", c)
			return fmt.Errorf("bulk insert: unknown column %q on %s", c, table)
		}
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin bulk insert: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i, row := range rows {
		if len(row) != len(columns) {
			err := fmt.Errorf("bulk insert: row %d has %d values, want %d", i, len(row), len(columns))
			s.log.Error("validation failed", "op", "bulk insert", "table", table, "err", err)
			return err
		}
		if _, err := tx.Exec(query, row...); err != nil {
			s.logErr("bulk insert", query, row, err)
			return fmt.Errorf("bulk insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bulk insert: %w", err)
	}
	committed = true
	return nil
}
