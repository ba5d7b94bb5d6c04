// ABOUTME: WorkoutSession and CompletedExercise models recording performed training.
// ABOUTME: Sessions reference user/plan/workout by id without enforced constraints.
package models

// WorkoutSession records that a user ran a workout from a plan.
// Its references are kept as plain ids so session history survives
// deletion of the user, plan, or workout it points at.
type WorkoutSession struct {
	ID            int64 `json:"id" yaml:"id"`
	UserID        int64 `json:"userId" yaml:"user_id"`
	WorkoutPlanID int64 `json:"workoutPlanId" yaml:"workout_plan_id"`
	WorkoutID     int64 `json:"workoutId" yaml:"workout_id"`
}

// NewWorkoutSession creates a session linking a user, plan, and workout.
func NewWorkoutSession(userID, workoutPlanID, workoutID int64) *WorkoutSession {
	return &WorkoutSession{
		UserID:        userID,
		WorkoutPlanID: workoutPlanID,
		WorkoutID:     workoutID,
	}
}

// CompletedExercise records that an exercise was performed at a position.
type CompletedExercise struct {
	ID         int64 `json:"id" yaml:"id"`
	ExerciseID int64 `json:"exerciseId" yaml:"exercise_id"`
	OrderIndex int   `json:"orderIndex" yaml:"order_index"`
}

// NewCompletedExercise creates a completion record for an exercise.
func NewCompletedExercise(exerciseID int64, orderIndex int) *CompletedExercise {
	return &CompletedExercise{
		ExerciseID: exerciseID,
		OrderIndex: orderIndex,
	}
}
