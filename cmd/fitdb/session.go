// ABOUTME: CLI commands for logged workout sessions and completed exercises.
// ABOUTME: Session history survives deletion of the user, plan, or workout it names.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/models"
)

var sessionListUser int64

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Log and inspect workout sessions",
	Long: `Log and inspect workout sessions. A session records that a user ran
a workout from a plan; a completion records one exercise performed.

Sessions reference their user, plan, and workout by id only. Deleting
any of those keeps the session, shown as (deleted) in listings.

EXAMPLES:

  fitdb session log 1 1 1         # user 1 ran workout 1 from plan 1
  fitdb session list --user 1
  fitdb session show 1
  fitdb session complete 3 1      # exercise 3 performed at position 1
  fitdb session completed`,
}

var sessionLogCmd = &cobra.Command{
	Use:     "log <user-id> <plan-id> <workout-id>",
	Aliases: []string{"add", "a"},
	Short:   "Log a session",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}
		planID, err := parseID(args[1])
		if err != nil {
			return err
		}
		workoutID, err := parseID(args[2])
		if err != nil {
			return err
		}

		ws := models.NewWorkoutSession(userID, planID, workoutID)
		if err := store.CreateWorkoutSession(ws); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		color.Green("✓ Logged session")
		fmt.Printf("  %s user %d, plan %d, workout %d\n",
			color.New(color.Faint).Sprintf("#%d", ws.ID),
			ws.UserID, ws.WorkoutPlanID, ws.WorkoutID)
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		if sessionListUser > 0 {
			rows, err := store.GetByForeignKey("WorkoutSessions", "UserId", sessionListUser)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}
			for _, r := range rows {
				fmt.Printf("%s user %v  plan %v  workout %v\n",
					faint.Sprintf("#%-4d", asInt64(r["id"])),
					r["UserId"], r["WorkoutPlanId"], r["WorkoutId"])
			}
			return nil
		}

		sessions, err := store.GetAllWorkoutSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}
		for _, ws := range sessions {
			fmt.Printf("%s user %d  plan %d  workout %d\n",
				faint.Sprintf("#%-4d", ws.ID),
				ws.UserID, ws.WorkoutPlanID, ws.WorkoutID)
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a session with resolved names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ws, err := store.GetWorkoutSessionByID(id)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}
		if ws == nil {
			return fmt.Errorf("session not found: %d", id)
		}

		userName := "(deleted)"
		if u, err := store.GetUserByID(ws.UserID); err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		} else if u != nil {
			userName = u.Name
		}
		planName := "(deleted)"
		if p, err := store.GetWorkoutPlanByID(ws.WorkoutPlanID); err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		} else if p != nil {
			planName = p.Name
		}
		workoutName := "(deleted)"
		if w, err := store.GetWorkoutByID(ws.WorkoutID); err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		} else if w != nil {
			workoutName = w.Name
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s session\n", faint.Sprintf("#%d", ws.ID))
		fmt.Printf("  user:    %s %s\n", userName, faint.Sprintf("#%d", ws.UserID))
		fmt.Printf("  plan:    %s %s\n", planName, faint.Sprintf("#%d", ws.WorkoutPlanID))
		fmt.Printf("  workout: %s %s\n", workoutName, faint.Sprintf("#%d", ws.WorkoutID))
		return nil
	},
}

var sessionRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ws, err := store.GetWorkoutSessionByID(id)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}
		if ws == nil {
			return fmt.Errorf("session not found: %d", id)
		}

		if err := store.DeleteWorkoutSession(id); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		color.Yellow("✗ Deleted session %d", id)
		return nil
	},
}

var sessionCompleteCmd = &cobra.Command{
	Use:   "complete <exercise-id> <position>",
	Short: "Record a completed exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := parseID(args[0])
		if err != nil {
			return err
		}
		position, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position: %s", args[1])
		}

		ce := models.NewCompletedExercise(exerciseID, position)
		if err := store.CreateCompletedExercise(ce); err != nil {
			return fmt.Errorf("failed to record completion: %w", err)
		}

		color.Green("✓ Completed exercise %d", exerciseID)
		fmt.Printf("  %s position %d\n",
			color.New(color.Faint).Sprintf("#%d", ce.ID), position)
		return nil
	},
}

var sessionCompletedCmd = &cobra.Command{
	Use:   "completed",
	Short: "List completed exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		completions, err := store.GetAllCompletedExercises()
		if err != nil {
			return fmt.Errorf("failed to list completions: %w", err)
		}
		if len(completions) == 0 {
			fmt.Println("No completions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ce := range completions {
			name := "(deleted)"
			if e, err := store.GetExerciseByID(ce.ExerciseID); err != nil {
				return fmt.Errorf("failed to get exercise: %w", err)
			} else if e != nil {
				name = e.Name
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("#%-4d", ce.ID),
				padRight(truncate(name, 28), 28),
				faint.Sprintf("position %d", ce.OrderIndex))
		}
		return nil
	},
}

func init() {
	sessionListCmd.Flags().Int64VarP(&sessionListUser, "user", "u", 0, "only sessions for this user id")

	sessionCmd.AddCommand(sessionLogCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionRmCmd)
	sessionCmd.AddCommand(sessionCompleteCmd)
	sessionCmd.AddCommand(sessionCompletedCmd)
	rootCmd.AddCommand(sessionCmd)
}
