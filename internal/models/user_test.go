// ABOUTME: Tests for User model and FitnessLevel vocabulary.
// ABOUTME: Validates constructor, builder methods, and level validation.
package models

import (
	"testing"
)

func TestNewUser(t *testing.T) {
	u := NewUser("Ada")

	if u.Name != "Ada" {
		t.Errorf("Name = %s, want Ada", u.Name)
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if u.Email != nil || u.Password != nil || u.FitnessLevel != nil || u.Goals != nil {
		t.Error("expected optional fields to be nil")
	}
}

func TestUserBuilders(t *testing.T) {
	u := NewUser("Ada").
		WithEmail("ada@example.com").
		WithPassword("secret").
		WithFitnessLevel(LevelIntermediate).
		WithGoals("Squat 100kg")

	if u.Email == nil || *u.Email != "ada@example.com" {
		t.Error("expected Email to be set")
	}
	if u.Password == nil || *u.Password != "secret" {
		t.Error("expected Password to be set")
	}
	if u.FitnessLevel == nil || *u.FitnessLevel != LevelIntermediate {
		t.Error("expected FitnessLevel to be intermediate")
	}
	if u.Goals == nil || *u.Goals != "Squat 100kg" {
		t.Error("expected Goals to be set")
	}
}

func TestIsValidFitnessLevel(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"beginner", true},
		{"intermediate", true},
		{"advanced", true},
		{"elite", false},
		{"Beginner", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidFitnessLevel(tt.input); got != tt.want {
				t.Errorf("IsValidFitnessLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
