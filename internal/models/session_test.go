// ABOUTME: Tests for WorkoutSession and CompletedExercise models.
// ABOUTME: Validates constructors and reference field wiring.
package models

import (
	"testing"
)

func TestNewWorkoutSession(t *testing.T) {
	ws := NewWorkoutSession(1, 2, 3)

	if ws.UserID != 1 {
		t.Errorf("UserID = %d, want 1", ws.UserID)
	}
	if ws.WorkoutPlanID != 2 {
		t.Errorf("WorkoutPlanID = %d, want 2", ws.WorkoutPlanID)
	}
	if ws.WorkoutID != 3 {
		t.Errorf("WorkoutID = %d, want 3", ws.WorkoutID)
	}
}

func TestNewCompletedExercise(t *testing.T) {
	ce := NewCompletedExercise(5, 1)

	if ce.ExerciseID != 5 {
		t.Errorf("ExerciseID = %d, want 5", ce.ExerciseID)
	}
	if ce.OrderIndex != 1 {
		t.Errorf("OrderIndex = %d, want 1", ce.OrderIndex)
	}
}
