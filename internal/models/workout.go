// ABOUTME: Workout and WorkoutPlan models, both owned by a user.
// ABOUTME: Plans carry a description; both are deleted when their user is.
package models

// Workout is a named training day belonging to a user.
type Workout struct {
	ID     int64  `json:"id" yaml:"id"`
	UserID int64  `json:"userId" yaml:"user_id"`
	Name   string `json:"name" yaml:"name"`
}

// NewWorkout creates a workout for a user.
func NewWorkout(userID int64, name string) *Workout {
	return &Workout{
		UserID: userID,
		Name:   name,
	}
}

// WorkoutPlan is a named program belonging to a user.
type WorkoutPlan struct {
	ID          int64  `json:"id" yaml:"id"`
	UserID      int64  `json:"userId" yaml:"user_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// NewWorkoutPlan creates a plan for a user with an empty description.
func NewWorkoutPlan(userID int64, name string) *WorkoutPlan {
	return &WorkoutPlan{
		UserID: userID,
		Name:   name,
	}
}

// WithDescription sets the plan description.
func (p *WorkoutPlan) WithDescription(text string) *WorkoutPlan {
	p.Description = text
	return p
}
