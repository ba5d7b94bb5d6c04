// ABOUTME: User model representing an account in the fitness tracker.
// ABOUTME: Includes fitness-level vocabulary and constructor with builder options.

package models

import "time"

// FitnessLevel describes a user's self-reported training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// AllFitnessLevels lists every valid fitness level.
var AllFitnessLevels = []FitnessLevel{
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
}

// IsValidFitnessLevel reports whether s is a known fitness level.
func IsValidFitnessLevel(s string) bool {
	for _, l := range AllFitnessLevels {
		if string(l) == s {
			return true
		}
	}
	return false
}

// User is an account that owns workouts, plans, and sessions.
type User struct {
	ID           int64         `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Email        *string       `json:"email,omitempty" yaml:"email,omitempty"`
	Password     *string       `json:"password,omitempty" yaml:"password,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" yaml:"created_at"`
	FitnessLevel *FitnessLevel `json:"fitnessLevel,omitempty" yaml:"fitness_level,omitempty"`
	Goals        *string       `json:"goals,omitempty" yaml:"goals,omitempty"`
}

// NewUser creates a user with the required name and a creation timestamp.
func NewUser(name string) *User {
	return &User{
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithEmail sets the email address.
func (u *User) WithEmail(email string) *User {
	u.Email = &email
	return u
}

// WithPassword sets the stored password value.
func (u *User) WithPassword(password string) *User {
	u.Password = &password
	return u
}

// WithFitnessLevel sets the fitness level.
func (u *User) WithFitnessLevel(level FitnessLevel) *User {
	u.FitnessLevel = &level
	return u
}

// WithGoals sets the free-form goals text.
func (u *User) WithGoals(goals string) *User {
	u.Goals = &goals
	return u
}
