// ABOUTME: WorkoutSession and CompletedExercise CRUD operations for SQLite storage.
// ABOUTME: Session rows survive deletion of the user, plan, or workout they reference.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/fitdb/fitdb/internal/models"
)

var workoutSessionFields = []fieldColumn{
	{"userId", "UserId"},
	{"workoutPlanId", "WorkoutPlanId"},
	{"workoutId", "WorkoutId"},
}

var completedExerciseFields = []fieldColumn{
	{"exerciseId", "ExerciseId"},
	{"orderIndex", "OrderIndex"},
}

// CreateWorkoutSession records a training session and writes the
// generated id back. The referenced ids are not checked against their
// tables, matching the unenforced schema.
func (s *Store) CreateWorkoutSession(ws *models.WorkoutSession) error {
	var missing []string
	if ws.UserID <= 0 {
		missing = append(missing, "userId")
	}
	if ws.WorkoutPlanID <= 0 {
		missing = append(missing, "workoutPlanId")
	}
	if ws.WorkoutID <= 0 {
		missing = append(missing, "workoutId")
	}
	if err := s.requireFields("create session", missing); err != nil {
		return err
	}

	query := `
		INSERT INTO WorkoutSessions (UserId, WorkoutPlanId, WorkoutId)
		VALUES (?, ?, ?)
	`
	args := []any{ws.UserID, ws.WorkoutPlanID, ws.WorkoutID}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.logErr("create session", query, args, err)
		return fmt.Errorf("create session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	ws.ID = id
	return nil
}

// GetAllWorkoutSessions retrieves every session ordered by id.
func (s *Store) GetAllWorkoutSessions() ([]*models.WorkoutSession, error) {
	query := `
		SELECT id, UserId, WorkoutPlanId, WorkoutId
		FROM WorkoutSessions
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		s.logErr("list sessions", query, nil, err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	return s.scanWorkoutSessions(rows)
}

// GetWorkoutSessionByID retrieves one session, or (nil, nil) when absent.
// The row is returned even when its references no longer resolve.
func (s *Store) GetWorkoutSessionByID(id int64) (*models.WorkoutSession, error) {
	query := `
		SELECT id, UserId, WorkoutPlanId, WorkoutId
		FROM WorkoutSessions
		WHERE id = ?
	`
	ws, err := s.scanWorkoutSession(s.db.QueryRow(query, id))
	if err != nil {
		s.logErr("get session", query, []any{id}, err)
		return nil, fmt.Errorf("get session: %w", err)
	}
	return ws, nil
}

// UpdateWorkoutSession applies an allow-listed partial update to a session.
func (s *Store) UpdateWorkoutSession(id int64, fields map[string]any) error {
	return s.updateByID("update session", "WorkoutSessions", workoutSessionFields, id, fields)
}

// DeleteWorkoutSession removes a session record.
func (s *Store) DeleteWorkoutSession(id int64) error {
	return s.deleteByID("delete session", "WorkoutSessions", id)
}

func (s *Store) scanWorkoutSession(row *sql.Row) (*models.WorkoutSession, error) {
	var ws models.WorkoutSession
	err := row.Scan(&ws.ID, &ws.UserID, &ws.WorkoutPlanID, &ws.WorkoutID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &ws, nil
}

func (s *Store) scanWorkoutSessions(rows *sql.Rows) ([]*models.WorkoutSession, error) {
	var sessions []*models.WorkoutSession

	for rows.Next() {
		var ws models.WorkoutSession
		if err := rows.Scan(&ws.ID, &ws.UserID, &ws.WorkoutPlanID, &ws.WorkoutID); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, &ws)
	}

	return sessions, rows.Err()
}

// CreateCompletedExercise records a performed exercise and writes the
// generated id back.
func (s *Store) CreateCompletedExercise(ce *models.CompletedExercise) error {
	var missing []string
	if ce.ExerciseID <= 0 {
		missing = append(missing, "exerciseId")
	}
	if ce.OrderIndex < 0 {
		missing = append(missing, "orderIndex")
	}
	if err := s.requireFields("create completed exercise", missing); err != nil {
		return err
	}

	query := `
		INSERT INTO CompletedExercises (ExerciseId, OrderIndex)
		VALUES (?, ?)
	`
	args := []any{ce.ExerciseID, ce.OrderIndex}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.logErr("create completed exercise", query, args, err)
		return fmt.Errorf("create completed exercise: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create completed exercise: %w", err)
	}
	ce.ID = id
	return nil
}

// GetAllCompletedExercises retrieves every completion record ordered by id.
func (s *Store) GetAllCompletedExercises() ([]*models.CompletedExercise, error) {
	query := `
		SELECT id, ExerciseId, OrderIndex
		FROM CompletedExercises
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		s.logErr("list completed exercises", query, nil, err)
		return nil, fmt.Errorf("list completed exercises: %w", err)
	}
	defer rows.Close()

	return s.scanCompletedExercises(rows)
}

// GetCompletedExerciseByID retrieves one completion record, or (nil, nil)
// when absent.
func (s *Store) GetCompletedExerciseByID(id int64) (*models.CompletedExercise, error) {
	query := `
		SELECT id, ExerciseId, OrderIndex
		FROM CompletedExercises
		WHERE id = ?
	`
	ce, err := s.scanCompletedExercise(s.db.QueryRow(query, id))
	if err != nil {
		s.logErr("get completed exercise", query, []any{id}, err)
		return nil, fmt.Errorf("get completed exercise: %w", err)
	}
	return ce, nil
}

// UpdateCompletedExercise applies an allow-listed partial update to a
// completion record.
func (s *Store) UpdateCompletedExercise(id int64, fields map[string]any) error {
	return s.updateByID("update completed exercise", "CompletedExercises", completedExerciseFields, id, fields)
}

// DeleteCompletedExercise removes a completion record.
func (s *Store) DeleteCompletedExercise(id int64) error {
	return s.deleteByID("delete completed exercise", "CompletedExercises", id)
}

func (s *Store) scanCompletedExercise(row *sql.Row) (*models.CompletedExercise, error) {
	var ce models.CompletedExercise
	err := row.Scan(&ce.ID, &ce.ExerciseID, &ce.OrderIndex)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan completed exercise: %w", err)
	}
	return &ce, nil
}

func (s *Store) scanCompletedExercises(rows *sql.Rows) ([]*models.CompletedExercise, error) {
	var completed []*models.CompletedExercise

	for rows.Next() {
		var ce models.CompletedExercise
		if err := rows.Scan(&ce.ID, &ce.ExerciseID, &ce.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan completed exercise: %w", err)
		}
		completed = append(completed, &ce)
	}

	return completed, rows.Err()
}
