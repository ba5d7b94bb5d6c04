// ABOUTME: Export and import functionality for the full fitness database.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fitdb/fitdb/internal/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ExportData is the full export envelope: every table in dependency
// order, so an import can replay it front to back.
type ExportData struct {
	ExportID           string                      `json:"export_id" yaml:"export_id"`
	Version            string                      `json:"version" yaml:"version"`
	ExportedAt         time.Time                   `json:"exported_at" yaml:"exported_at"`
	Tool               string                      `json:"tool" yaml:"tool"`
	Users              []*models.User              `json:"users" yaml:"users"`
	Exercises          []*models.Exercise          `json:"exercises" yaml:"exercises"`
	SetDetails         []*models.SetDetail         `json:"set_details" yaml:"set_details"`
	ExerciseDetails    []*models.ExerciseDetail    `json:"exercise_details" yaml:"exercise_details"`
	Workouts           []*models.Workout           `json:"workouts" yaml:"workouts"`
	WorkoutPlans       []*models.WorkoutPlan       `json:"workout_plans" yaml:"workout_plans"`
	CompletedExercises []*models.CompletedExercise `json:"completed_exercises" yaml:"completed_exercises"`
	WorkoutSessions    []*models.WorkoutSession    `json:"workout_sessions" yaml:"workout_sessions"`
}

// GetAllData retrieves every table for export.
func (s *Store) GetAllData() (*ExportData, error) {
	data := &ExportData{
		ExportID:   uuid.New().String(),
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitdb",
	}

	var err error
	if data.Users, err = s.GetAllUsers(); err != nil {
		return nil, err
	}
	if data.Exercises, err = s.GetAllExercises(); err != nil {
		return nil, err
	}
	if data.SetDetails, err = s.GetAllSetDetails(); err != nil {
		return nil, err
	}
	if data.ExerciseDetails, err = s.GetAllExerciseDetails(); err != nil {
		return nil, err
	}
	if data.Workouts, err = s.GetAllWorkouts(); err != nil {
		return nil, err
	}
	if data.WorkoutPlans, err = s.GetAllWorkoutPlans(); err != nil {
		return nil, err
	}
	if data.CompletedExercises, err = s.GetAllCompletedExercises(); err != nil {
		return nil, err
	}
	if data.WorkoutSessions, err = s.GetAllWorkoutSessions(); err != nil {
		return nil, err
	}

	return data, nil
}

// ImportData restores an export in one transaction, keeping the original
// ids so references between tables stay intact. Any failure rolls the
// whole import back.
func (s *Store) ImportData(data *ExportData) error {
	var stmts []Statement

	for _, u := range data.Users {
		stmts = append(stmts, Statement{
			Query: "INSERT INTO Users (id, Name, Email, Password, CreatedAt, FitnessLevel, Goals) VALUES (?, ?, ?, ?, ?, ?, ?)",
			Args:  []any{u.ID, u.Name, u.Email, u.Password, u.CreatedAt.Format(time.RFC3339), u.FitnessLevel, u.Goals},
		})
	}
	for _, e := range data.Exercises {
		stmts = append(stmts, Statement{
			Query: "INSERT INTO Exercises (id, Name, Type, BodyPart, Instructions, VideoUrl, GifUrl) VALUES (?, ?, ?, ?, ?, ?, ?)",
			Args:  []any{e.ID, e.Name, string(e.Type), e.BodyPart, e.Instructions, e.VideoURL, e.GifURL},
		})
	}
	for _, sd := range data.SetDetails {
		stmts = append(stmts, Statement{
			Query: "INSERT INTO SetDetails (id, MinReps, MaxReps, Weight, Amrap, Paused, Fast, Forced, Dropset) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			Args:  []any{sd.ID, sd.MinReps, sd.MaxReps, sd.Weight, sd.Amrap, sd.Paused, sd.Fast, sd.Forced, sd.Dropset},
		})
	}
	for _, ed := range data.ExerciseDetails {
		stmts = append(stmts, Statement{
			Query: "INSERT INTO ExerciseDetails (id, ExerciseId, OrderIndex, SetDetailId) VALUES (?, ?, ?, ?)",
			Args:  []any{ed.ID, ed.ExerciseID, ed.OrderIndex, ed.SetDetailID},
		})
	}
	for _, w := range data.Workouts {
		stmts = append(stmts, Statement{
			Query: "INSERT INTO Workouts (id, UserId, Name) VALUES (?, ?, ?)",
			Args:  []any{w.ID, w.UserID, w.Name},
		})
	}
	for _, p := range data.WorkoutPlans {
		stmts = append(stmts, Statement{
			Query: "INSERT INTO WorkoutPlans (id, UserId, Name, Description) VALUES (?, ?, ?, ?)",
			Args:  []any{p.ID, p.UserID, p.Name, p.Description},
		})
	}
	for _, ce := range data.CompletedExercises {
		stmts = append(stmts, Statement{
			Query: "INSERT INTO CompletedExercises (id, ExerciseId, OrderIndex) VALUES (?, ?, ?)",
			Args:  []any{ce.ID, ce.ExerciseID, ce.OrderIndex},
		})
	}
	for _, ws := range data.WorkoutSessions {
		stmts = append(stmts, Statement{
			Query: "INSERT INTO WorkoutSessions (id, UserId, WorkoutPlanId, WorkoutId) VALUES (?, ?, ?, ?)",
			Args:  []any{ws.ID, ws.UserID, ws.WorkoutPlanID, ws.WorkoutID},
		})
	}

	if err := s.ExecTransaction(stmts); err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func (s *Store) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return s.ImportData(&data)
}

// ExportYAML exports all data as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown renders a human-readable snapshot: the exercise catalog
// grouped by body part, then workouts, plans, and session counts.
func (s *Store) ExportMarkdown() (string, error) {
	data, err := s.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Fitness Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	userNames := make(map[int64]string, len(data.Users))
	for _, u := range data.Users {
		userNames[u.ID] = u.Name
	}

	if len(data.Exercises) > 0 {
		grouped := make(map[string][]*models.Exercise)
		for _, e := range data.Exercises {
			part := "other"
			if e.BodyPart != nil {
				part = string(*e.BodyPart)
			}
			grouped[part] = append(grouped[part], e)
		}

		var parts []string
		for p := range grouped {
			parts = append(parts, p)
		}
		sort.Strings(parts)

		sb.WriteString("## Exercises\n\n")
		for _, p := range parts {
			sb.WriteString(fmt.Sprintf("### %s\n\n", p))
			sb.WriteString("| Name | Type | Instructions |\n")
			sb.WriteString("|------|------|--------------|\n")
			for _, e := range grouped[p] {
				instructions := ""
				if e.Instructions != nil {
					instructions = *e.Instructions
				}
				sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", e.Name, e.Type, instructions))
			}
			sb.WriteString("\n")
		}
	}

	if len(data.Workouts) > 0 {
		sb.WriteString("## Workouts\n\n")
		sb.WriteString("| User | Name |\n")
		sb.WriteString("|------|------|\n")
		for _, w := range data.Workouts {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", userNames[w.UserID], w.Name))
		}
		sb.WriteString("\n")
	}

	if len(data.WorkoutPlans) > 0 {
		sb.WriteString("## Plans\n\n")
		sb.WriteString("| User | Name | Description |\n")
		sb.WriteString("|------|------|-------------|\n")
		for _, p := range data.WorkoutPlans {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", userNames[p.UserID], p.Name, p.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("%d users, %d exercises, %d sessions recorded.\n",
		len(data.Users), len(data.Exercises), len(data.WorkoutSessions)))

	return sb.String(), nil
}
