// ABOUTME: SetDetail and ExerciseDetail CRUD operations for SQLite storage.
// ABOUTME: Set prescriptions are standalone rows placed into exercises by details.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/fitdb/fitdb/internal/models"
)

var setDetailFields = []fieldColumn{
	{"minReps", "MinReps"},
	{"maxReps", "MaxReps"},
	{"weight", "Weight"},
	{"amrap", "Amrap"},
	{"paused", "Paused"},
	{"fast", "Fast"},
	{"forced", "Forced"},
	{"dropset", "Dropset"},
}

var exerciseDetailFields = []fieldColumn{
	{"exerciseId", "ExerciseId"},
	{"orderIndex", "OrderIndex"},
	{"setDetailId", "SetDetailId"},
}

// CreateSetDetail stores a set prescription and writes the generated id back.
func (s *Store) CreateSetDetail(sd *models.SetDetail) error {
	var missing []string
	if sd.MinReps <= 0 {
		missing = append(missing, "minReps")
	}
	if sd.MaxReps <= 0 {
		missing = append(missing, "maxReps")
	}
	if err := s.requireFields("create set detail", missing); err != nil {
		return err
	}

	query := `
		INSERT INTO SetDetails (MinReps, MaxReps, Weight, Amrap, Paused, Fast, Forced, Dropset)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	args := []any{sd.MinReps, sd.MaxReps, sd.Weight, sd.Amrap, sd.Paused, sd.Fast, sd.Forced, sd.Dropset}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.logErr("create set detail", query, args, err)
		return fmt.Errorf("create set detail: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create set detail: %w", err)
	}
	sd.ID = id
	return nil
}

// GetAllSetDetails retrieves every set prescription ordered by id.
func (s *Store) GetAllSetDetails() ([]*models.SetDetail, error) {
	query := `
		SELECT id, MinReps, MaxReps, Weight, Amrap, Paused, Fast, Forced, Dropset
		FROM SetDetails
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		s.logErr("list set details", query, nil, err)
		return nil, fmt.Errorf("list set details: %w", err)
	}
	defer rows.Close()

	return s.scanSetDetails(rows)
}

// GetSetDetailByID retrieves one set prescription, or (nil, nil) when absent.
func (s *Store) GetSetDetailByID(id int64) (*models.SetDetail, error) {
	query := `
		SELECT id, MinReps, MaxReps, Weight, Amrap, Paused, Fast, Forced, Dropset
		FROM SetDetails
		WHERE id = ?
	`
	sd, err := s.scanSetDetail(s.db.QueryRow(query, id))
	if err != nil {
		s.logErr("get set detail", query, []any{id}, err)
		return nil, fmt.Errorf("get set detail: %w", err)
	}
	return sd, nil
}

// UpdateSetDetail applies an allow-listed partial update to a set prescription.
func (s *Store) UpdateSetDetail(id int64, fields map[string]any) error {
	return s.updateByID("update set detail", "SetDetails", setDetailFields, id, fields)
}

// DeleteSetDetail removes a set prescription; placements referencing it
// cascade away.
func (s *Store) DeleteSetDetail(id int64) error {
	return s.deleteByID("delete set detail", "SetDetails", id)
}

func (s *Store) scanSetDetail(row *sql.Row) (*models.SetDetail, error) {
	var sd models.SetDetail
	err := row.Scan(&sd.ID, &sd.MinReps, &sd.MaxReps, &sd.Weight,
		&sd.Amrap, &sd.Paused, &sd.Fast, &sd.Forced, &sd.Dropset)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan set detail: %w", err)
	}
	return &sd, nil
}

func (s *Store) scanSetDetails(rows *sql.Rows) ([]*models.SetDetail, error) {
	var details []*models.SetDetail

	for rows.Next() {
		var sd models.SetDetail
		err := rows.Scan(&sd.ID, &sd.MinReps, &sd.MaxReps, &sd.Weight,
			&sd.Amrap, &sd.Paused, &sd.Fast, &sd.Forced, &sd.Dropset)
		if err != nil {
			return nil, fmt.Errorf("scan set detail: %w", err)
		}
		details = append(details, &sd)
	}

	return details, rows.Err()
}

// CreateExerciseDetail places a set prescription within an exercise and
// writes the generated id back.
func (s *Store) CreateExerciseDetail(ed *models.ExerciseDetail) error {
	var missing []string
	if ed.ExerciseID <= 0 {
		missing = append(missing, "exerciseId")
	}
	if ed.OrderIndex < 0 {
		missing = append(missing, "orderIndex")
	}
	if ed.SetDetailID <= 0 {
		missing = append(missing, "setDetailId")
	}
	if err := s.requireFields("create exercise detail", missing); err != nil {
		return err
	}

	query := `
		INSERT INTO ExerciseDetails (ExerciseId, OrderIndex, SetDetailId)
		VALUES (?, ?, ?)
	`
	args := []any{ed.ExerciseID, ed.OrderIndex, ed.SetDetailID}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.logErr("create exercise detail", query, args, err)
		return fmt.Errorf("create exercise detail: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create exercise detail: %w", err)
	}
	ed.ID = id
	return nil
}

// GetAllExerciseDetails retrieves every placement ordered by exercise
// and position.
func (s *Store) GetAllExerciseDetails() ([]*models.ExerciseDetail, error) {
	query := `
		SELECT id, ExerciseId, OrderIndex, SetDetailId
		FROM ExerciseDetails
		ORDER BY ExerciseId, OrderIndex
	`
	rows, err := s.db.Query(query)
	if err != nil {
		s.logErr("list exercise details", query, nil, err)
		return nil, fmt.Errorf("list exercise details: %w", err)
	}
	defer rows.Close()

	return s.scanExerciseDetails(rows)
}

// GetExerciseDetailByID retrieves one placement, or (nil, nil) when absent.
func (s *Store) GetExerciseDetailByID(id int64) (*models.ExerciseDetail, error) {
	query := `
		SELECT id, ExerciseId, OrderIndex, SetDetailId
		FROM ExerciseDetails
		WHERE id = ?
	`
	ed, err := s.scanExerciseDetail(s.db.QueryRow(query, id))
	if err != nil {
		s.logErr("get exercise detail", query, []any{id}, err)
		return nil, fmt.Errorf("get exercise detail: %w", err)
	}
	return ed, nil
}

// UpdateExerciseDetail applies an allow-listed partial update to a placement.
func (s *Store) UpdateExerciseDetail(id int64, fields map[string]any) error {
	return s.updateByID("update exercise detail", "ExerciseDetails", exerciseDetailFields, id, fields)
}

// DeleteExerciseDetail removes a placement.
func (s *Store) DeleteExerciseDetail(id int64) error {
	return s.deleteByID("delete exercise detail", "ExerciseDetails", id)
}

func (s *Store) scanExerciseDetail(row *sql.Row) (*models.ExerciseDetail, error) {
	var ed models.ExerciseDetail
	err := row.Scan(&ed.ID, &ed.ExerciseID, &ed.OrderIndex, &ed.SetDetailID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan exercise detail: %w", err)
	}
	return &ed, nil
}

func (s *Store) scanExerciseDetails(rows *sql.Rows) ([]*models.ExerciseDetail, error) {
	var details []*models.ExerciseDetail

	for rows.Next() {
		var ed models.ExerciseDetail
		err := rows.Scan(&ed.ID, &ed.ExerciseID, &ed.OrderIndex, &ed.SetDetailID)
		if err != nil {
			return nil, fmt.Errorf("scan exercise detail: %w", err)
		}
		details = append(details, &ed)
	}

	return details, rows.Err()
}
