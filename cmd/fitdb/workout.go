// ABOUTME: CLI commands for workouts, the named training days owned by a user.
// ABOUTME: Covers add, list with a user filter, and rm.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/models"
)

var workoutListUser int64

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Manage workouts. A workout is a named training day belonging to a
user, referenced by plans and logged sessions.

EXAMPLES:

  fitdb workout add 1 "Push Day"
  fitdb workout list
  fitdb workout list --user 1
  fitdb workout rm 2

Workouts are deleted together with their owner. Logged sessions keep
the workout id as history.`,
}

var workoutAddCmd = &cobra.Command{
	Use:     "add <user-id> <name>",
	Aliases: []string{"a"},
	Short:   "Add a workout",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}

		w := models.NewWorkout(userID, args[1])
		if err := store.CreateWorkout(w); err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Added %s", w.Name)
		fmt.Printf("  %s user %d\n",
			color.New(color.Faint).Sprintf("#%d", w.ID), w.UserID)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		if workoutListUser > 0 {
			rows, err := store.GetByForeignKey("Workouts", "UserId", workoutListUser)
			if err != nil {
				return fmt.Errorf("failed to list workouts: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No workouts found.")
				return nil
			}
			for _, r := range rows {
				fmt.Printf("%s %s %s\n",
					faint.Sprintf("#%-4d", asInt64(r["id"])),
					padRight(truncate(fmt.Sprintf("%v", r["Name"]), 28), 28),
					faint.Sprintf("user %v", r["UserId"]))
			}
			return nil
		}

		workouts, err := store.GetAllWorkouts()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		for _, w := range workouts {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("#%-4d", w.ID),
				padRight(truncate(w.Name, 28), 28),
				faint.Sprintf("user %d", w.UserID))
		}
		return nil
	},
}

var workoutRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		w, err := store.GetWorkoutByID(id)
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}
		if w == nil {
			return fmt.Errorf("workout not found: %d", id)
		}

		if err := store.DeleteWorkout(id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted %s", w.Name)
		return nil
	},
}

func init() {
	workoutListCmd.Flags().Int64VarP(&workoutListUser, "user", "u", 0, "only workouts for this user id")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutRmCmd)
	rootCmd.AddCommand(workoutCmd)
}
