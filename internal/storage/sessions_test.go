// ABOUTME: Tests for WorkoutSession and CompletedExercise CRUD operations.
// ABOUTME: Verifies that session history survives deletion of what it references.
package storage

import (
	"errors"
	"testing"

	"github.com/fitdb/fitdb/internal/models"
)

// seedSession creates a user, plan, workout, and a session linking them.
func seedSession(t *testing.T, s *Store) (*models.User, *models.WorkoutPlan, *models.Workout, *models.WorkoutSession) {
	t.Helper()

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	p := models.NewWorkoutPlan(u.ID, "PPL")
	if err := s.CreateWorkoutPlan(p); err != nil {
		t.Fatalf("CreateWorkoutPlan failed: %v", err)
	}
	w := models.NewWorkout(u.ID, "Push Day")
	if err := s.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	ws := models.NewWorkoutSession(u.ID, p.ID, w.ID)
	if err := s.CreateWorkoutSession(ws); err != nil {
		t.Fatalf("CreateWorkoutSession failed: %v", err)
	}
	return u, p, w, ws
}

func TestCreateAndGetWorkoutSession(t *testing.T) {
	s := setupTestStore(t)

	u, p, w, ws := seedSession(t, s)

	got, err := s.GetWorkoutSessionByID(ws.ID)
	if err != nil {
		t.Fatalf("GetWorkoutSessionByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected session, got nil")
	}
	if got.UserID != u.ID || got.WorkoutPlanID != p.ID || got.WorkoutID != w.ID {
		t.Errorf("Mismatch: got %+v", got)
	}
}

func TestCreateWorkoutSessionMissingFields(t *testing.T) {
	s := setupTestStore(t)

	err := s.CreateWorkoutSession(&models.WorkoutSession{})
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldsError, got %v", err)
	}
	want := []string{"userId", "workoutPlanId", "workoutId"}
	if len(missing.Fields) != len(want) {
		t.Fatalf("Expected missing %v, got %v", want, missing.Fields)
	}
	for i, f := range want {
		if missing.Fields[i] != f {
			t.Errorf("Field %d: expected %q, got %q", i, f, missing.Fields[i])
		}
	}
}

func TestSessionSurvivesUserDelete(t *testing.T) {
	s := setupTestStore(t)

	u, _, _, ws := seedSession(t, s)

	if err := s.DeleteUser(u.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	// Session references are not enforced: the row dangles but stays
	// readable with its original ids.
	got, err := s.GetWorkoutSessionByID(ws.ID)
	if err != nil {
		t.Fatalf("GetWorkoutSessionByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected dangling session to remain")
	}
	if got.UserID != u.ID {
		t.Errorf("Expected original user id %d, got %d", u.ID, got.UserID)
	}

	if user, _ := s.GetUserByID(u.ID); user != nil {
		t.Error("Expected user to be gone")
	}
}

func TestSessionSurvivesPlanAndWorkoutDelete(t *testing.T) {
	s := setupTestStore(t)

	_, p, w, ws := seedSession(t, s)

	if err := s.DeleteWorkoutPlan(p.ID); err != nil {
		t.Fatalf("DeleteWorkoutPlan failed: %v", err)
	}
	if err := s.DeleteWorkout(w.ID); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}

	got, err := s.GetWorkoutSessionByID(ws.ID)
	if err != nil {
		t.Fatalf("GetWorkoutSessionByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected session to survive plan and workout deletion")
	}
	if got.WorkoutPlanID != p.ID || got.WorkoutID != w.ID {
		t.Errorf("Expected original references, got %+v", got)
	}
}

func TestUpdateWorkoutSession(t *testing.T) {
	s := setupTestStore(t)

	u, _, _, ws := seedSession(t, s)

	w2 := models.NewWorkout(u.ID, "Pull Day")
	if err := s.CreateWorkout(w2); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	if err := s.UpdateWorkoutSession(ws.ID, map[string]any{"workoutId": w2.ID}); err != nil {
		t.Fatalf("UpdateWorkoutSession failed: %v", err)
	}

	got, err := s.GetWorkoutSessionByID(ws.ID)
	if err != nil {
		t.Fatalf("GetWorkoutSessionByID failed: %v", err)
	}
	if got.WorkoutID != w2.ID {
		t.Errorf("WorkoutID not updated: got %d", got.WorkoutID)
	}
}

func TestDeleteWorkoutSession(t *testing.T) {
	s := setupTestStore(t)

	_, _, _, ws := seedSession(t, s)

	if err := s.DeleteWorkoutSession(ws.ID); err != nil {
		t.Fatalf("DeleteWorkoutSession failed: %v", err)
	}
	if got, _ := s.GetWorkoutSessionByID(ws.ID); got != nil {
		t.Errorf("Expected session gone, got %+v", got)
	}
	if err := s.DeleteWorkoutSession(ws.ID); err != nil {
		t.Errorf("Second delete errored: %v", err)
	}
}

func TestCompletedExerciseCRUD(t *testing.T) {
	s := setupTestStore(t)

	e := models.NewExercise("Dip", models.TypeStrength)
	if err := s.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	ce := models.NewCompletedExercise(e.ID, 0)
	if err := s.CreateCompletedExercise(ce); err != nil {
		t.Fatalf("CreateCompletedExercise failed: %v", err)
	}

	got, err := s.GetCompletedExerciseByID(ce.ID)
	if err != nil {
		t.Fatalf("GetCompletedExerciseByID failed: %v", err)
	}
	if got == nil || got.ExerciseID != e.ID || got.OrderIndex != 0 {
		t.Errorf("Mismatch: got %+v", got)
	}

	if err := s.UpdateCompletedExercise(ce.ID, map[string]any{"orderIndex": 3}); err != nil {
		t.Fatalf("UpdateCompletedExercise failed: %v", err)
	}
	got, _ = s.GetCompletedExerciseByID(ce.ID)
	if got.OrderIndex != 3 {
		t.Errorf("OrderIndex not updated: got %d", got.OrderIndex)
	}

	if err := s.DeleteCompletedExercise(ce.ID); err != nil {
		t.Fatalf("DeleteCompletedExercise failed: %v", err)
	}
	if got, _ := s.GetCompletedExerciseByID(ce.ID); got != nil {
		t.Errorf("Expected completion gone, got %+v", got)
	}
}

func TestCreateCompletedExerciseMissingFields(t *testing.T) {
	s := setupTestStore(t)

	err := s.CreateCompletedExercise(&models.CompletedExercise{ExerciseID: 0, OrderIndex: -1})
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldsError, got %v", err)
	}
	if len(missing.Fields) != 2 || missing.Fields[0] != "exerciseId" || missing.Fields[1] != "orderIndex" {
		t.Errorf("Expected missing [exerciseId orderIndex], got %v", missing.Fields)
	}
}
