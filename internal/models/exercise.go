// ABOUTME: Exercise model representing a catalog entry (squat, bench press, ...).
// ABOUTME: Includes exercise-type and body-part vocabularies matching the schema CHECKs.

package models

// ExerciseType distinguishes cardio from strength work.
type ExerciseType string

const (
	TypeCardio   ExerciseType = "cardio"
	TypeStrength ExerciseType = "strength"
)

// AllExerciseTypes lists every valid exercise type.
var AllExerciseTypes = []ExerciseType{
	TypeCardio,
	TypeStrength,
}

// IsValidExerciseType reports whether s is a known exercise type.
func IsValidExerciseType(s string) bool {
	for _, t := range AllExerciseTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// BodyPart is the primary muscle group an exercise targets.
type BodyPart string

const (
	BodyChest     BodyPart = "chest"
	BodyBack      BodyPart = "back"
	BodyShoulders BodyPart = "shoulders"
	BodyArms      BodyPart = "arms"
	BodyLegs      BodyPart = "legs"
	BodyCore      BodyPart = "core"
	BodyFullBody  BodyPart = "full_body"
)

// AllBodyParts lists every valid body part.
var AllBodyParts = []BodyPart{
	BodyChest,
	BodyBack,
	BodyShoulders,
	BodyArms,
	BodyLegs,
	BodyCore,
	BodyFullBody,
}

// IsValidBodyPart reports whether s is a known body part.
func IsValidBodyPart(s string) bool {
	for _, b := range AllBodyParts {
		if string(b) == s {
			return true
		}
	}
	return false
}

// Exercise is a catalog entry that workouts and plans reference.
type Exercise struct {
	ID           int64         `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Type         ExerciseType  `json:"type" yaml:"type"`
	BodyPart     *BodyPart     `json:"bodyPart,omitempty" yaml:"body_part,omitempty"`
	Instructions *string       `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	VideoURL     *string       `json:"videoUrl,omitempty" yaml:"video_url,omitempty"`
	GifURL       *string       `json:"gifUrl,omitempty" yaml:"gif_url,omitempty"`
}

// NewExercise creates an exercise with the required name and type.
func NewExercise(name string, exType ExerciseType) *Exercise {
	return &Exercise{
		Name: name,
		Type: exType,
	}
}

// WithBodyPart sets the targeted body part.
func (e *Exercise) WithBodyPart(part BodyPart) *Exercise {
	e.BodyPart = &part
	return e
}

// WithInstructions sets the how-to text.
func (e *Exercise) WithInstructions(text string) *Exercise {
	e.Instructions = &text
	return e
}

// WithVideoURL sets the demonstration video link.
func (e *Exercise) WithVideoURL(url string) *Exercise {
	e.VideoURL = &url
	return e
}

// WithGifURL sets the animation link.
func (e *Exercise) WithGifURL(url string) *Exercise {
	e.GifURL = &url
	return e
}
