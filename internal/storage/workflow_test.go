// ABOUTME: End-to-end workflow test across every table.
// ABOUTME: Builds a full training setup, runs a session, then tears it down.
package storage

import (
	"testing"

	"github.com/fitdb/fitdb/internal/models"
)

func TestFullWorkflow(t *testing.T) {
	s := setupTestStore(t)

	// A user signs up.
	u := models.NewUser("Ada").WithEmail("ada@example.com").WithFitnessLevel(models.LevelBeginner)
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// The exercise catalog is seeded in bulk.
	err := s.BulkInsert("Exercises",
		[]string{"Name", "Type", "BodyPart"},
		[][]any{
			{"Bench Press", "strength", "chest"},
			{"Squat", "strength", "legs"},
			{"Running", "cardio", "legs"},
		})
	if err != nil {
		t.Fatalf("BulkInsert failed: %v", err)
	}
	exercises, err := s.GetAllExercises()
	if err != nil {
		t.Fatalf("GetAllExercises failed: %v", err)
	}
	if len(exercises) != 3 {
		t.Fatalf("Expected 3 exercises, got %d", len(exercises))
	}
	bench, squat := exercises[0], exercises[1]

	// Set prescriptions get attached to the lifts.
	heavy := models.NewSetDetail(3, 5, 100)
	light := models.NewSetDetail(8, 12, 60)
	light.Amrap = true
	for _, sd := range []*models.SetDetail{heavy, light} {
		if err := s.CreateSetDetail(sd); err != nil {
			t.Fatalf("CreateSetDetail failed: %v", err)
		}
	}
	if err := s.CreateExerciseDetail(models.NewExerciseDetail(bench.ID, 0, heavy.ID)); err != nil {
		t.Fatalf("CreateExerciseDetail failed: %v", err)
	}
	if err := s.CreateExerciseDetail(models.NewExerciseDetail(bench.ID, 1, light.ID)); err != nil {
		t.Fatalf("CreateExerciseDetail failed: %v", err)
	}
	if err := s.CreateExerciseDetail(models.NewExerciseDetail(squat.ID, 0, heavy.ID)); err != nil {
		t.Fatalf("CreateExerciseDetail failed: %v", err)
	}

	// The bench placements come back in position order.
	placements, err := s.GetByForeignKey("ExerciseDetails", "ExerciseId", bench.ID)
	if err != nil {
		t.Fatalf("GetByForeignKey failed: %v", err)
	}
	if len(placements) != 2 {
		t.Fatalf("Expected 2 placements for bench, got %d", len(placements))
	}

	// The user builds a workout and a plan, then trains.
	w := models.NewWorkout(u.ID, "Push Day")
	if err := s.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	p := models.NewWorkoutPlan(u.ID, "Strength Block").WithDescription("Four weeks.")
	if err := s.CreateWorkoutPlan(p); err != nil {
		t.Fatalf("CreateWorkoutPlan failed: %v", err)
	}
	session := models.NewWorkoutSession(u.ID, p.ID, w.ID)
	if err := s.CreateWorkoutSession(session); err != nil {
		t.Fatalf("CreateWorkoutSession failed: %v", err)
	}
	if err := s.CreateCompletedExercise(models.NewCompletedExercise(bench.ID, 0)); err != nil {
		t.Fatalf("CreateCompletedExercise failed: %v", err)
	}

	// Progress: the user levels up.
	if err := s.UpdateUser(u.ID, map[string]any{"fitnessLevel": "intermediate"}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	got, err := s.GetUserByID(u.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if got.FitnessLevel == nil || *got.FitnessLevel != models.LevelIntermediate {
		t.Errorf("FitnessLevel not updated: got %v", got.FitnessLevel)
	}

	// A full export captures the whole graph.
	data, err := s.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if len(data.ExerciseDetails) != 3 || len(data.WorkoutSessions) != 1 {
		t.Errorf("Export incomplete: %d details, %d sessions",
			len(data.ExerciseDetails), len(data.WorkoutSessions))
	}

	// Retiring the bench press cascades its placements and completions.
	if err := s.DeleteExercise(bench.ID); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}
	placements, err = s.GetByForeignKey("ExerciseDetails", "ExerciseId", bench.ID)
	if err != nil {
		t.Fatalf("GetByForeignKey failed: %v", err)
	}
	if len(placements) != 0 {
		t.Errorf("Expected bench placements to cascade, got %d", len(placements))
	}
	completed, err := s.GetAllCompletedExercises()
	if err != nil {
		t.Fatalf("GetAllCompletedExercises failed: %v", err)
	}
	if len(completed) != 0 {
		t.Errorf("Expected completions to cascade, got %d", len(completed))
	}

	// Deleting the account removes workouts and plans but keeps history.
	if err := s.DeleteUser(u.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	workouts, err := s.GetAllWorkouts()
	if err != nil {
		t.Fatalf("GetAllWorkouts failed: %v", err)
	}
	if len(workouts) != 0 {
		t.Errorf("Expected workouts to cascade, got %d", len(workouts))
	}
	dangling, err := s.GetWorkoutSessionByID(session.ID)
	if err != nil {
		t.Fatalf("GetWorkoutSessionByID failed: %v", err)
	}
	if dangling == nil {
		t.Fatal("Expected session history to survive account deletion")
	}
	if dangling.UserID != u.ID {
		t.Errorf("Expected original user id on dangling session, got %d", dangling.UserID)
	}
}
