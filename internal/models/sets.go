// ABOUTME: SetDetail and ExerciseDetail models describing set prescriptions.
// ABOUTME: A SetDetail is a rep/weight scheme; an ExerciseDetail places it in an exercise.

package models

// SetDetail prescribes one set: rep range, load, and intensity flags.
type SetDetail struct {
	ID      int64   `json:"id" yaml:"id"`
	MinReps int     `json:"minReps" yaml:"min_reps"`
	MaxReps int     `json:"maxReps" yaml:"max_reps"`
	Weight  float64 `json:"weight" yaml:"weight"`
	Amrap   bool    `json:"amrap" yaml:"amrap"`
	Paused  bool    `json:"paused" yaml:"paused"`
	Fast    bool    `json:"fast" yaml:"fast"`
	Forced  bool    `json:"forced" yaml:"forced"`
	Dropset bool    `json:"dropset" yaml:"dropset"`
}

// NewSetDetail creates a set prescription; intensity flags default to false.
func NewSetDetail(minReps, maxReps int, weight float64) *SetDetail {
	return &SetDetail{
		MinReps: minReps,
		MaxReps: maxReps,
		Weight:  weight,
	}
}

// ExerciseDetail attaches a SetDetail to an Exercise at a position.
type ExerciseDetail struct {
	ID          int64 `json:"id" yaml:"id"`
	ExerciseID  int64 `json:"exerciseId" yaml:"exercise_id"`
	OrderIndex  int   `json:"orderIndex" yaml:"order_index"`
	SetDetailID int64 `json:"setDetailId" yaml:"set_detail_id"`
}

// NewExerciseDetail creates a placement of a set prescription within an exercise.
func NewExerciseDetail(exerciseID int64, orderIndex int, setDetailID int64) *ExerciseDetail {
	return &ExerciseDetail{
		ExerciseID:  exerciseID,
		OrderIndex:  orderIndex,
		SetDetailID: setDetailID,
	}
}
