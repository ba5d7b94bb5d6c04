// ABOUTME: Tests for Workout and WorkoutPlan CRUD operations.
// ABOUTME: Covers ownership constraints and user-side cascades.
package storage

import (
	"errors"
	"testing"

	"github.com/fitdb/fitdb/internal/models"
)

func TestCreateAndGetWorkout(t *testing.T) {
	s := setupTestStore(t)

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	w := models.NewWorkout(u.ID, "Push Day")
	if err := s.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	got, err := s.GetWorkoutByID(w.ID)
	if err != nil {
		t.Fatalf("GetWorkoutByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected workout, got nil")
	}
	if got.UserID != u.ID || got.Name != "Push Day" {
		t.Errorf("Mismatch: got %+v", got)
	}
}

func TestCreateWorkoutMissingFields(t *testing.T) {
	s := setupTestStore(t)

	err := s.CreateWorkout(&models.Workout{})
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldsError, got %v", err)
	}
	if len(missing.Fields) != 2 || missing.Fields[0] != "userId" || missing.Fields[1] != "name" {
		t.Errorf("Expected missing [userId name], got %v", missing.Fields)
	}
}

func TestCreateWorkoutUnknownUser(t *testing.T) {
	s := setupTestStore(t)

	err := s.CreateWorkout(models.NewWorkout(999, "Ghost Day"))
	if err == nil {
		t.Error("Expected foreign key violation")
	}
}

func TestUpdateWorkout(t *testing.T) {
	s := setupTestStore(t)

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	w := models.NewWorkout(u.ID, "Push Day")
	if err := s.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	if err := s.UpdateWorkout(w.ID, map[string]any{"name": "Pull Day"}); err != nil {
		t.Fatalf("UpdateWorkout failed: %v", err)
	}

	got, err := s.GetWorkoutByID(w.ID)
	if err != nil {
		t.Fatalf("GetWorkoutByID failed: %v", err)
	}
	if got.Name != "Pull Day" {
		t.Errorf("Name not updated: got %q", got.Name)
	}
}

func TestDeleteUserCascadesWorkoutsAndPlans(t *testing.T) {
	s := setupTestStore(t)

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	keep := models.NewUser("Grace")
	if err := s.CreateUser(keep); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	w := models.NewWorkout(u.ID, "Push Day")
	if err := s.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	p := models.NewWorkoutPlan(u.ID, "PPL")
	if err := s.CreateWorkoutPlan(p); err != nil {
		t.Fatalf("CreateWorkoutPlan failed: %v", err)
	}
	other := models.NewWorkout(keep.ID, "Leg Day")
	if err := s.CreateWorkout(other); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	if err := s.DeleteUser(u.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if got, _ := s.GetWorkoutByID(w.ID); got != nil {
		t.Errorf("Expected workout to cascade, got %+v", got)
	}
	if got, _ := s.GetWorkoutPlanByID(p.ID); got != nil {
		t.Errorf("Expected plan to cascade, got %+v", got)
	}

	// The other user's rows are untouched.
	if got, _ := s.GetWorkoutByID(other.ID); got == nil {
		t.Error("Expected unrelated workout to survive")
	}
}

func TestCreateAndGetWorkoutPlan(t *testing.T) {
	s := setupTestStore(t)

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	p := models.NewWorkoutPlan(u.ID, "PPL").WithDescription("Push, pull, legs.")
	if err := s.CreateWorkoutPlan(p); err != nil {
		t.Fatalf("CreateWorkoutPlan failed: %v", err)
	}

	got, err := s.GetWorkoutPlanByID(p.ID)
	if err != nil {
		t.Fatalf("GetWorkoutPlanByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected plan, got nil")
	}
	if got.Description != "Push, pull, legs." {
		t.Errorf("Description mismatch: got %q", got.Description)
	}
}

func TestWorkoutPlanDefaultDescription(t *testing.T) {
	s := setupTestStore(t)

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	p := models.NewWorkoutPlan(u.ID, "Minimal")
	if err := s.CreateWorkoutPlan(p); err != nil {
		t.Fatalf("CreateWorkoutPlan failed: %v", err)
	}

	got, err := s.GetWorkoutPlanByID(p.ID)
	if err != nil {
		t.Fatalf("GetWorkoutPlanByID failed: %v", err)
	}
	if got.Description != "" {
		t.Errorf("Expected empty description, got %q", got.Description)
	}
}

func TestUpdateWorkoutPlan(t *testing.T) {
	s := setupTestStore(t)

	u := models.NewUser("Ada")
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	p := models.NewWorkoutPlan(u.ID, "PPL")
	if err := s.CreateWorkoutPlan(p); err != nil {
		t.Fatalf("CreateWorkoutPlan failed: %v", err)
	}

	err := s.UpdateWorkoutPlan(p.ID, map[string]any{"description": "Six days a week."})
	if err != nil {
		t.Fatalf("UpdateWorkoutPlan failed: %v", err)
	}

	got, err := s.GetWorkoutPlanByID(p.ID)
	if err != nil {
		t.Fatalf("GetWorkoutPlanByID failed: %v", err)
	}
	if got.Description != "Six days a week." {
		t.Errorf("Description not updated: got %q", got.Description)
	}
}
