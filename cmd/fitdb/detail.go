// ABOUTME: CLI commands for exercise details, the placements of sets in exercises.
// ABOUTME: Covers add, list with an exercise filter, and rm.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/models"
)

var detailListExercise int64

var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Attach set prescriptions to exercises",
	Long: `Attach set prescriptions to exercises. A detail places one set in
one exercise at a position; the exercise's sets are its details ordered
by position.

EXAMPLES:

  fitdb detail add 1 1 4        # exercise 1, position 1, set 4
  fitdb detail add 1 2 4        # same set again at position 2
  fitdb detail list --exercise 1
  fitdb detail rm 2

A detail is removed automatically when its exercise or set is deleted.`,
}

var detailAddCmd = &cobra.Command{
	Use:     "add <exercise-id> <position> <set-id>",
	Aliases: []string{"a"},
	Short:   "Place a set in an exercise",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := parseID(args[0])
		if err != nil {
			return err
		}
		position, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position: %s", args[1])
		}
		setID, err := parseID(args[2])
		if err != nil {
			return err
		}

		ed := models.NewExerciseDetail(exerciseID, position, setID)
		if err := store.CreateExerciseDetail(ed); err != nil {
			return fmt.Errorf("failed to create detail: %w", err)
		}

		color.Green("✓ Placed set %d in exercise %d", setID, exerciseID)
		fmt.Printf("  %s position %d\n",
			color.New(color.Faint).Sprintf("#%d", ed.ID), position)
		return nil
	},
}

var detailListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List set placements",
	Long: `List set placements, optionally for a single exercise.

EXAMPLES:

  fitdb detail list
  fitdb detail list --exercise 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		if detailListExercise > 0 {
			rows, err := store.GetByForeignKey("ExerciseDetails", "ExerciseId", detailListExercise)
			if err != nil {
				return fmt.Errorf("failed to list details: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No details found.")
				return nil
			}
			for _, r := range rows {
				fmt.Printf("%s exercise %v  position %v  set %v\n",
					faint.Sprintf("#%-4d", asInt64(r["id"])),
					r["ExerciseId"], r["OrderIndex"], r["SetDetailId"])
			}
			return nil
		}

		details, err := store.GetAllExerciseDetails()
		if err != nil {
			return fmt.Errorf("failed to list details: %w", err)
		}
		if len(details) == 0 {
			fmt.Println("No details found.")
			return nil
		}
		for _, ed := range details {
			fmt.Printf("%s exercise %d  position %d  set %d\n",
				faint.Sprintf("#%-4d", ed.ID),
				ed.ExerciseID, ed.OrderIndex, ed.SetDetailID)
		}
		return nil
	},
}

var detailRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Remove a set placement",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ed, err := store.GetExerciseDetailByID(id)
		if err != nil {
			return fmt.Errorf("failed to get detail: %w", err)
		}
		if ed == nil {
			return fmt.Errorf("detail not found: %d", id)
		}

		if err := store.DeleteExerciseDetail(id); err != nil {
			return fmt.Errorf("failed to delete detail: %w", err)
		}

		color.Yellow("✗ Removed set %d from exercise %d", ed.SetDetailID, ed.ExerciseID)
		return nil
	},
}

func init() {
	detailListCmd.Flags().Int64VarP(&detailListExercise, "exercise", "e", 0, "only placements for this exercise id")

	detailCmd.AddCommand(detailAddCmd)
	detailCmd.AddCommand(detailListCmd)
	detailCmd.AddCommand(detailRmCmd)
	rootCmd.AddCommand(detailCmd)
}
