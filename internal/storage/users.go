// ABOUTME: User CRUD operations for SQLite storage.
// ABOUTME: Create validates required fields; reads return nil for absent rows.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fitdb/fitdb/internal/models"
)

// userFields is the allow-listed mapping from payload keys to columns.
// CreatedAt is immutable and deliberately absent.
var userFields = []fieldColumn{
	{"name", "Name"},
	{"email", "Email"},
	{"password", "Password"},
	{"fitnessLevel", "FitnessLevel"},
	{"goals", "Goals"},
}

// CreateUser stores a new user and writes the generated id back.
func (s *Store) CreateUser(u *models.User) error {
	var missing []string
	if u.Name == "" {
		missing = append(missing, "name")
	}
	if err := s.requireFields("create user", missing); err != nil {
		return err
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO Users (Name, Email, Password, CreatedAt, FitnessLevel, Goals)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := s.db.Exec(query,
		u.Name,
		u.Email,
		u.Password,
		u.CreatedAt.Format(time.RFC3339),
		u.FitnessLevel,
		u.Goals,
	)
	if err != nil {
		s.logErr("create user", query, []any{u.Name}, err)
		return fmt.Errorf("create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	u.ID = id
	return nil
}

// GetAllUsers retrieves every user ordered by id.
func (s *Store) GetAllUsers() ([]*models.User, error) {
	query := `
		SELECT id, Name, Email, Password, CreatedAt, FitnessLevel, Goals
		FROM Users
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		s.logErr("list users", query, nil, err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	return s.scanUsers(rows)
}

// GetUserByID retrieves one user, or (nil, nil) when the id is absent.
func (s *Store) GetUserByID(id int64) (*models.User, error) {
	query := `
		SELECT id, Name, Email, Password, CreatedAt, FitnessLevel, Goals
		FROM Users
		WHERE id = ?
	`
	u, err := s.scanUser(s.db.QueryRow(query, id))
	if err != nil {
		s.logErr("get user", query, []any{id}, err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateUser applies an allow-listed partial update to a user.
func (s *Store) UpdateUser(id int64, fields map[string]any) error {
	return s.updateByID("update user", "Users", userFields, id, fields)
}

// DeleteUser removes a user; their workouts and plans cascade away.
func (s *Store) DeleteUser(id int64) error {
	return s.deleteByID("delete user", "Users", id)
}

// scanUser scans a single row into a User, mapping no-rows to nil.
func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var email, password, created, level, goals sql.NullString

	err := row.Scan(&u.ID, &u.Name, &email, &password, &created, &level, &goals)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	if email.Valid {
		u.Email = &email.String
	}
	if password.Valid {
		u.Password = &password.String
	}
	if created.Valid {
		u.CreatedAt = parseDBTime(created.String)
	}
	if level.Valid {
		l := models.FitnessLevel(level.String)
		u.FitnessLevel = &l
	}
	if goals.Valid {
		u.Goals = &goals.String
	}

	return &u, nil
}

// scanUsers scans multiple rows into a slice of Users.
func (s *Store) scanUsers(rows *sql.Rows) ([]*models.User, error) {
	var users []*models.User

	for rows.Next() {
		var u models.User
		var email, password, created, level, goals sql.NullString

		err := rows.Scan(&u.ID, &u.Name, &email, &password, &created, &level, &goals)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}

		if email.Valid {
			u.Email = &email.String
		}
		if password.Valid {
			u.Password = &password.String
		}
		if created.Valid {
			u.CreatedAt = parseDBTime(created.String)
		}
		if level.Valid {
			l := models.FitnessLevel(level.String)
			u.FitnessLevel = &l
		}
		if goals.Valid {
			u.Goals = &goals.String
		}

		users = append(users, &u)
	}

	return users, rows.Err()
}

// parseDBTime accepts both RFC3339 (what the layer writes) and the plain
// datetime format SQLite's CURRENT_TIMESTAMP default produces.
func parseDBTime(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02 15:04:05", value)
	return t
}
