// ABOUTME: Exercise CRUD operations for SQLite storage.
// ABOUTME: Deleting an exercise cascades its details and completion records.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/fitdb/fitdb/internal/models"
)

var exerciseFields = []fieldColumn{
	{"name", "Name"},
	{"type", "Type"},
	{"bodyPart", "BodyPart"},
	{"instructions", "Instructions"},
	{"videoUrl", "VideoUrl"},
	{"gifUrl", "GifUrl"},
}

// CreateExercise stores a new catalog entry and writes the generated id back.
func (s *Store) CreateExercise(e *models.Exercise) error {
	var missing []string
	if e.Name == "" {
		missing = append(missing, "name")
	}
	if e.Type == "" {
		missing = append(missing, "type")
	}
	if err := s.requireFields("create exercise", missing); err != nil {
		return err
	}

	query := `
		INSERT INTO Exercises (Name, Type, BodyPart, Instructions, VideoUrl, GifUrl)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	args := []any{e.Name, string(e.Type), e.BodyPart, e.Instructions, e.VideoURL, e.GifURL}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.logErr("create exercise", query, args, err)
		return fmt.Errorf("create exercise: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	e.ID = id
	return nil
}

// GetAllExercises retrieves the full exercise catalog ordered by id.
func (s *Store) GetAllExercises() ([]*models.Exercise, error) {
	query := `
		SELECT id, Name, Type, BodyPart, Instructions, VideoUrl, GifUrl
		FROM Exercises
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		s.logErr("list exercises", query, nil, err)
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	return s.scanExercises(rows)
}

// GetExerciseByID retrieves one exercise, or (nil, nil) when absent.
func (s *Store) GetExerciseByID(id int64) (*models.Exercise, error) {
	query := `
		SELECT id, Name, Type, BodyPart, Instructions, VideoUrl, GifUrl
		FROM Exercises
		WHERE id = ?
	`
	e, err := s.scanExercise(s.db.QueryRow(query, id))
	if err != nil {
		s.logErr("get exercise", query, []any{id}, err)
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

// UpdateExercise applies an allow-listed partial update to an exercise.
func (s *Store) UpdateExercise(id int64, fields map[string]any) error {
	return s.updateByID("update exercise", "Exercises", exerciseFields, id, fields)
}

// DeleteExercise removes an exercise; its ExerciseDetails and
// CompletedExercises cascade away.
func (s *Store) DeleteExercise(id int64) error {
	return s.deleteByID("delete exercise", "Exercises", id)
}

func (s *Store) scanExercise(row *sql.Row) (*models.Exercise, error) {
	var e models.Exercise
	var exType string
	var bodyPart, instructions, videoURL, gifURL sql.NullString

	err := row.Scan(&e.ID, &e.Name, &exType, &bodyPart, &instructions, &videoURL, &gifURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan exercise: %w", err)
	}

	e.Type = models.ExerciseType(exType)
	if bodyPart.Valid {
		b := models.BodyPart(bodyPart.String)
		e.BodyPart = &b
	}
	if instructions.Valid {
		e.Instructions = &instructions.String
	}
	if videoURL.Valid {
		e.VideoURL = &videoURL.String
	}
	if gifURL.Valid {
		e.GifURL = &gifURL.String
	}

	return &e, nil
}

func (s *Store) scanExercises(rows *sql.Rows) ([]*models.Exercise, error) {
	var exercises []*models.Exercise

	for rows.Next() {
		var e models.Exercise
		var exType string
		var bodyPart, instructions, videoURL, gifURL sql.NullString

		err := rows.Scan(&e.ID, &e.Name, &exType, &bodyPart, &instructions, &videoURL, &gifURL)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}

		e.Type = models.ExerciseType(exType)
		if bodyPart.Valid {
			b := models.BodyPart(bodyPart.String)
			e.BodyPart = &b
		}
		if instructions.Valid {
			e.Instructions = &instructions.String
		}
		if videoURL.Valid {
			e.VideoURL = &videoURL.String
		}
		if gifURL.Valid {
			e.GifURL = &gifURL.String
		}

		exercises = append(exercises, &e)
	}

	return exercises, rows.Err()
}
