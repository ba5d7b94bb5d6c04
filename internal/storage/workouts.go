// ABOUTME: Workout and WorkoutPlan CRUD operations for SQLite storage.
// ABOUTME: Both belong to a user and cascade away when the user is deleted.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/fitdb/fitdb/internal/models"
)

var workoutFields = []fieldColumn{
	{"userId", "UserId"},
	{"name", "Name"},
}

var workoutPlanFields = []fieldColumn{
	{"userId", "UserId"},
	{"name", "Name"},
	{"description", "Description"},
}

// CreateWorkout stores a new workout and writes the generated id back.
func (s *Store) CreateWorkout(w *models.Workout) error {
	var missing []string
	if w.UserID <= 0 {
		missing = append(missing, "userId")
	}
	if w.Name == "" {
		missing = append(missing, "name")
	}
	if err := s.requireFields("create workout", missing); err != nil {
		return err
	}

	query := `
		INSERT INTO Workouts (UserId, Name)
		VALUES (?, ?)
	`
	args := []any{w.UserID, w.Name}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.logErr("create workout", query, args, err)
		return fmt.Errorf("create workout: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	w.ID = id
	return nil
}

// GetAllWorkouts retrieves every workout ordered by id.
func (s *Store) GetAllWorkouts() ([]*models.Workout, error) {
	query := `
		SELECT id, UserId, Name
		FROM Workouts
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		s.logErr("list workouts", query, nil, err)
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return s.scanWorkouts(rows)
}

// GetWorkoutByID retrieves one workout, or (nil, nil) when absent.
func (s *Store) GetWorkoutByID(id int64) (*models.Workout, error) {
	query := `
		SELECT id, UserId, Name
		FROM Workouts
		WHERE id = ?
	`
	w, err := s.scanWorkout(s.db.QueryRow(query, id))
	if err != nil {
		s.logErr("get workout", query, []any{id}, err)
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// UpdateWorkout applies an allow-listed partial update to a workout.
func (s *Store) UpdateWorkout(id int64, fields map[string]any) error {
	return s.updateByID("update workout", "Workouts", workoutFields, id, fields)
}

// DeleteWorkout removes a workout. Sessions referencing it are kept.
func (s *Store) DeleteWorkout(id int64) error {
	return s.deleteByID("delete workout", "Workouts", id)
}

func (s *Store) scanWorkout(row *sql.Row) (*models.Workout, error) {
	var w models.Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan workout: %w", err)
	}
	return &w, nil
}

func (s *Store) scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	var workouts []*models.Workout

	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, &w)
	}

	return workouts, rows.Err()
}

// CreateWorkoutPlan stores a new plan and writes the generated id back.
// A missing description is stored as the empty string, not NULL.
func (s *Store) CreateWorkoutPlan(p *models.WorkoutPlan) error {
	var missing []string
	if p.UserID <= 0 {
		missing = append(missing, "userId")
	}
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if err := s.requireFields("create workout plan", missing); err != nil {
		return err
	}

	query := `
		INSERT INTO WorkoutPlans (UserId, Name, Description)
		VALUES (?, ?, ?)
	`
	args := []any{p.UserID, p.Name, p.Description}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.logErr("create workout plan", query, args, err)
		return fmt.Errorf("create workout plan: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create workout plan: %w", err)
	}
	p.ID = id
	return nil
}

// GetAllWorkoutPlans retrieves every plan ordered by id.
func (s *Store) GetAllWorkoutPlans() ([]*models.WorkoutPlan, error) {
	query := `
		SELECT id, UserId, Name, Description
		FROM WorkoutPlans
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		s.logErr("list workout plans", query, nil, err)
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	defer rows.Close()

	return s.scanWorkoutPlans(rows)
}

// GetWorkoutPlanByID retrieves one plan, or (nil, nil) when absent.
func (s *Store) GetWorkoutPlanByID(id int64) (*models.WorkoutPlan, error) {
	query := `
		SELECT id, UserId, Name, Description
		FROM WorkoutPlans
		WHERE id = ?
	`
	p, err := s.scanWorkoutPlan(s.db.QueryRow(query, id))
	if err != nil {
		s.logErr("get workout plan", query, []any{id}, err)
		return nil, fmt.Errorf("get workout plan: %w", err)
	}
	return p, nil
}

// UpdateWorkoutPlan applies an allow-listed partial update to a plan.
func (s *Store) UpdateWorkoutPlan(id int64, fields map[string]any) error {
	return s.updateByID("update workout plan", "WorkoutPlans", workoutPlanFields, id, fields)
}

// DeleteWorkoutPlan removes a plan. Sessions referencing it are kept.
func (s *Store) DeleteWorkoutPlan(id int64) error {
	return s.deleteByID("delete workout plan", "WorkoutPlans", id)
}

func (s *Store) scanWorkoutPlan(row *sql.Row) (*models.WorkoutPlan, error) {
	var p models.WorkoutPlan
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan workout plan: %w", err)
	}
	return &p, nil
}

func (s *Store) scanWorkoutPlans(rows *sql.Rows) ([]*models.WorkoutPlan, error) {
	var plans []*models.WorkoutPlan

	for rows.Next() {
		var p models.WorkoutPlan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description); err != nil {
			return nil, fmt.Errorf("scan workout plan: %w", err)
		}
		plans = append(plans, &p)
	}

	return plans, rows.Err()
}
