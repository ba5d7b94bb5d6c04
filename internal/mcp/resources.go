// ABOUTME: MCP resource implementations for the fitness store.
// ABOUTME: Provides fitdb://summary, fitdb://exercises, and fitdb://plans resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fitdb/fitdb/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitdb://summary - Row counts for every table
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitdb://summary",
		Name:        "Fitness Database Summary",
		Description: "Row counts for users, exercises, workouts, plans, and sessions",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// fitdb://exercises - The full exercise catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitdb://exercises",
		Name:        "Exercise Catalog",
		Description: "Every exercise grouped by body part",
		MIMEType:    "application/json",
	}, s.handleExercisesResource)

	// fitdb://plans - Workout plans with their owners
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitdb://plans",
		Name:        "Workout Plans",
		Description: "Every workout plan with its owning user",
		MIMEType:    "application/json",
	}, s.handlePlansResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := s.store.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"counts": map[string]int{
			"users":               len(data.Users),
			"exercises":           len(data.Exercises),
			"set_details":         len(data.SetDetails),
			"exercise_details":    len(data.ExerciseDetails),
			"workouts":            len(data.Workouts),
			"workout_plans":       len(data.WorkoutPlans),
			"completed_exercises": len(data.CompletedExercises),
			"workout_sessions":    len(data.WorkoutSessions),
		},
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitdb://summary",
			MIMEType: "application/json",
			Text:     string(out),
		}},
	}, nil
}

func (s *Server) handleExercisesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	exercises, err := s.store.GetAllExercises()
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	// Group the catalog by body part; uncategorized entries go under "other".
	grouped := make(map[string][]*models.Exercise)
	for _, e := range exercises {
		part := "other"
		if e.BodyPart != nil {
			part = string(*e.BodyPart)
		}
		grouped[part] = append(grouped[part], e)
	}

	result := map[string]interface{}{
		"total":     len(exercises),
		"exercises": grouped,
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitdb://exercises",
			MIMEType: "application/json",
			Text:     string(out),
		}},
	}, nil
}

func (s *Server) handlePlansResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plans, err := s.store.GetAllWorkoutPlans()
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	users, err := s.store.GetAllUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	userNames := make(map[int64]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}

	type planEntry struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		UserID      int64  `json:"user_id"`
		UserName    string `json:"user_name,omitempty"`
	}

	entries := make([]planEntry, 0, len(plans))
	for _, p := range plans {
		entries = append(entries, planEntry{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			UserID:      p.UserID,
			UserName:    userNames[p.UserID],
		})
	}

	result := map[string]interface{}{
		"total": len(entries),
		"plans": entries,
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitdb://plans",
			MIMEType: "application/json",
			Text:     string(out),
		}},
	}, nil
}
