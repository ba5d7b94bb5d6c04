// ABOUTME: MCP tool implementations for the fitness store.
// ABOUTME: Provides CRUD operations over users, exercises, workouts, plans, and sessions.
package mcp

import (
	"context"
	"fmt"

	"github.com/fitdb/fitdb/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_user
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_user",
		Description: "Create a user account",
	}, s.handleAddUser)

	// list_users
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_users",
		Description: "List every user",
	}, s.handleListUsers)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the catalog",
	}, s.handleAddExercise)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise catalog, optionally filtered by body part",
	}, s.handleListExercises)

	// delete_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete an exercise and its set placements",
	}, s.handleDeleteExercise)

	// add_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Create a workout for a user",
	}, s.handleAddWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts, optionally for one user",
	}, s.handleListWorkouts)

	// add_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_plan",
		Description: "Create a workout plan for a user",
	}, s.handleAddPlan)

	// list_plans
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_plans",
		Description: "List every workout plan",
	}, s.handleListPlans)

	// log_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Record a training session for a user, plan, and workout",
	}, s.handleLogSession)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List training sessions, optionally for one user",
	}, s.handleListSessions)
}

// Tool input/output types

type addUserInput struct {
	Name         string `json:"name" jsonschema:"User name"`
	Email        string `json:"email,omitempty" jsonschema:"Email address"`
	FitnessLevel string `json:"fitness_level,omitempty" jsonschema:"Training experience (beginner, intermediate, advanced)"`
	Goals        string `json:"goals,omitempty" jsonschema:"Free-form training goals"`
}

type userOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type addExerciseInput struct {
	Name         string `json:"name" jsonschema:"Exercise name"`
	Type         string `json:"type" jsonschema:"Exercise type (cardio or strength)"`
	BodyPart     string `json:"body_part,omitempty" jsonschema:"Targeted body part (chest, back, shoulders, arms, legs, core, full_body)"`
	Instructions string `json:"instructions,omitempty" jsonschema:"How to perform the exercise"`
	VideoURL     string `json:"video_url,omitempty" jsonschema:"Demonstration video link"`
	GifURL       string `json:"gif_url,omitempty" jsonschema:"Animation link"`
}

type exerciseOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listExercisesInput struct {
	BodyPart string `json:"body_part,omitempty" jsonschema:"Filter by body part"`
}

type deleteExerciseInput struct {
	ID int64 `json:"id" jsonschema:"Exercise id"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addWorkoutInput struct {
	UserID int64  `json:"user_id" jsonschema:"Owning user id"`
	Name   string `json:"name" jsonschema:"Workout name"`
}

type workoutOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listWorkoutsInput struct {
	UserID int64 `json:"user_id,omitempty" jsonschema:"Only list workouts owned by this user"`
}

type addPlanInput struct {
	UserID      int64  `json:"user_id" jsonschema:"Owning user id"`
	Name        string `json:"name" jsonschema:"Plan name"`
	Description string `json:"description,omitempty" jsonschema:"Plan description"`
}

type logSessionInput struct {
	UserID        int64 `json:"user_id" jsonschema:"User id"`
	WorkoutPlanID int64 `json:"workout_plan_id" jsonschema:"Workout plan id"`
	WorkoutID     int64 `json:"workout_id" jsonschema:"Workout id"`
}

type sessionOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type listSessionsInput struct {
	UserID int64 `json:"user_id,omitempty" jsonschema:"Only list sessions for this user"`
}

// Tool handlers

func (s *Server) handleAddUser(ctx context.Context, req *mcp.CallToolRequest, input addUserInput) (*mcp.CallToolResult, userOutput, error) {
	if input.FitnessLevel != "" && !models.IsValidFitnessLevel(input.FitnessLevel) {
		return nil, userOutput{}, fmt.Errorf("unknown fitness level: %s (use beginner, intermediate, or advanced)", input.FitnessLevel)
	}

	u := models.NewUser(input.Name)
	if input.Email != "" {
		u.WithEmail(input.Email)
	}
	if input.FitnessLevel != "" {
		u.WithFitnessLevel(models.FitnessLevel(input.FitnessLevel))
	}
	if input.Goals != "" {
		u.WithGoals(input.Goals)
	}

	if err := s.store.CreateUser(u); err != nil {
		return nil, userOutput{}, fmt.Errorf("failed to create user: %w", err)
	}

	return nil, userOutput{
		ID:      u.ID,
		Name:    u.Name,
		Message: fmt.Sprintf("Added user %s (id %d)", u.Name, u.ID),
	}, nil
}

func (s *Server) handleListUsers(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	users, err := s.store.GetAllUsers()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		return nil, map[string]interface{}{"message": "No users found."}, nil
	}

	return nil, users, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	if !models.IsValidExerciseType(input.Type) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown exercise type: %s (use cardio or strength)", input.Type)
	}
	if input.BodyPart != "" && !models.IsValidBodyPart(input.BodyPart) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown body part: %s", input.BodyPart)
	}

	e := models.NewExercise(input.Name, models.ExerciseType(input.Type))
	if input.BodyPart != "" {
		e.WithBodyPart(models.BodyPart(input.BodyPart))
	}
	if input.Instructions != "" {
		e.WithInstructions(input.Instructions)
	}
	if input.VideoURL != "" {
		e.WithVideoURL(input.VideoURL)
	}
	if input.GifURL != "" {
		e.WithGifURL(input.GifURL)
	}

	if err := s.store.CreateExercise(e); err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:      e.ID,
		Name:    e.Name,
		Message: fmt.Sprintf("Added exercise %s (id %d)", e.Name, e.ID),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	if input.BodyPart != "" && !models.IsValidBodyPart(input.BodyPart) {
		return nil, nil, fmt.Errorf("unknown body part: %s", input.BodyPart)
	}

	exercises, err := s.store.GetAllExercises()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	if input.BodyPart != "" {
		var filtered []*models.Exercise
		for _, e := range exercises {
			if e.BodyPart != nil && string(*e.BodyPart) == input.BodyPart {
				filtered = append(filtered, e)
			}
		}
		exercises = filtered
	}

	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}

	return nil, exercises, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input deleteExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DeleteExercise(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete exercise: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted exercise %d", input.ID),
	}, nil
}

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w := models.NewWorkout(input.UserID, input.Name)
	if err := s.store.CreateWorkout(w); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}

	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Message: fmt.Sprintf("Added workout %s (id %d)", w.Name, w.ID),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.UserID > 0 {
		rows, err := s.store.GetByForeignKey("Workouts", "UserId", input.UserID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(rows) == 0 {
			return nil, map[string]interface{}{"message": "No workouts found."}, nil
		}
		return nil, rows, nil
	}

	workouts, err := s.store.GetAllWorkouts()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	return nil, workouts, nil
}

func (s *Server) handleAddPlan(ctx context.Context, req *mcp.CallToolRequest, input addPlanInput) (*mcp.CallToolResult, workoutOutput, error) {
	p := models.NewWorkoutPlan(input.UserID, input.Name)
	if input.Description != "" {
		p.WithDescription(input.Description)
	}

	if err := s.store.CreateWorkoutPlan(p); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to create plan: %w", err)
	}

	return nil, workoutOutput{
		ID:      p.ID,
		Name:    p.Name,
		Message: fmt.Sprintf("Added plan %s (id %d)", p.Name, p.ID),
	}, nil
}

func (s *Server) handleListPlans(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	plans, err := s.store.GetAllWorkoutPlans()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list plans: %w", err)
	}

	if len(plans) == 0 {
		return nil, map[string]interface{}{"message": "No plans found."}, nil
	}

	return nil, plans, nil
}

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	ws := models.NewWorkoutSession(input.UserID, input.WorkoutPlanID, input.WorkoutID)
	if err := s.store.CreateWorkoutSession(ws); err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to log session: %w", err)
	}

	return nil, sessionOutput{
		ID:      ws.ID,
		Message: fmt.Sprintf("Logged session %d for user %d", ws.ID, ws.UserID),
	}, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, any, error) {
	if input.UserID > 0 {
		rows, err := s.store.GetByForeignKey("WorkoutSessions", "UserId", input.UserID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(rows) == 0 {
			return nil, map[string]interface{}{"message": "No sessions found."}, nil
		}
		return nil, rows, nil
	}

	sessions, err := s.store.GetAllWorkoutSessions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No sessions found."}, nil
	}

	return nil, sessions, nil
}
