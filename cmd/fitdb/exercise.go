// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Covers add, list, show, set, rm, and spreadsheet import.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/importer"
	"github.com/fitdb/fitdb/internal/models"
)

var (
	exerciseAddType         string
	exerciseAddBody         string
	exerciseAddInstructions string
	exerciseAddVideo        string
	exerciseAddGif          string

	exerciseListType string
	exerciseListBody string

	exerciseSetName         string
	exerciseSetType         string
	exerciseSetBody         string
	exerciseSetInstructions string
	exerciseSetVideo        string
	exerciseSetGif          string

	exerciseImportSheet    string
	exerciseImportStartRow int
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise catalog",
	Long: `Manage the exercise catalog. Workouts, plans, and sessions reference
catalog entries by id.

EXERCISE TYPES:

  cardio, strength

BODY PARTS:

  chest, back, shoulders, arms, legs, core, full_body

EXAMPLES:

  fitdb exercise add "Bench Press" --type strength --body chest
  fitdb exercise list --body legs
  fitdb exercise import catalog.xlsx
  fitdb exercise rm 3

Deleting an exercise cascades to its set placements and completion
records.`,
}

var exerciseAddCmd = &cobra.Command{
	Use:     "add <name> --type <type>",
	Aliases: []string{"a"},
	Short:   "Add an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidExerciseType(exerciseAddType) {
			return fmt.Errorf("unknown exercise type: %s\nValid types: cardio, strength", exerciseAddType)
		}

		e := models.NewExercise(args[0], models.ExerciseType(exerciseAddType))
		if exerciseAddBody != "" {
			if !models.IsValidBodyPart(exerciseAddBody) {
				return fmt.Errorf("unknown body part: %s\nValid parts: chest, back, shoulders, arms, legs, core, full_body", exerciseAddBody)
			}
			e.WithBodyPart(models.BodyPart(exerciseAddBody))
		}
		if exerciseAddInstructions != "" {
			e.WithInstructions(exerciseAddInstructions)
		}
		if exerciseAddVideo != "" {
			e.WithVideoURL(exerciseAddVideo)
		}
		if exerciseAddGif != "" {
			e.WithGifURL(exerciseAddGif)
		}

		if err := store.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added %s", e.Name)
		body := ""
		if e.BodyPart != nil {
			body = " " + string(*e.BodyPart)
		}
		fmt.Printf("  %s %s%s\n",
			color.New(color.Faint).Sprintf("#%d", e.ID),
			string(e.Type), body)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	Long: `List catalog exercises, optionally filtered by type or body part.

EXAMPLES:

  fitdb exercise list
  fitdb exercise list --type cardio
  fitdb exercise list --body chest`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exerciseListType != "" && !models.IsValidExerciseType(exerciseListType) {
			return fmt.Errorf("unknown exercise type: %s", exerciseListType)
		}
		if exerciseListBody != "" && !models.IsValidBodyPart(exerciseListBody) {
			return fmt.Errorf("unknown body part: %s", exerciseListBody)
		}

		exercises, err := store.GetAllExercises()
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		faint := color.New(color.Faint)
		shown := 0
		for _, e := range exercises {
			if exerciseListType != "" && string(e.Type) != exerciseListType {
				continue
			}
			if exerciseListBody != "" && (e.BodyPart == nil || string(*e.BodyPart) != exerciseListBody) {
				continue
			}
			body := "-"
			if e.BodyPart != nil {
				body = string(*e.BodyPart)
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("#%-4d", e.ID),
				padRight(truncate(e.Name, 28), 28),
				padRight(string(e.Type), 8),
				body)
			shown++
		}
		if shown == 0 {
			fmt.Println("No exercises found.")
		}
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an exercise with its set prescriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		e, err := store.GetExerciseByID(id)
		if err != nil {
			return fmt.Errorf("failed to get exercise: %w", err)
		}
		if e == nil {
			return fmt.Errorf("exercise not found: %d", id)
		}

		faint := color.New(color.Faint)
		body := "-"
		if e.BodyPart != nil {
			body = string(*e.BodyPart)
		}
		fmt.Printf("%s %s\n", faint.Sprintf("#%d", e.ID), e.Name)
		fmt.Printf("  type:         %s\n", string(e.Type))
		fmt.Printf("  body part:    %s\n", body)
		fmt.Printf("  instructions: %s\n", orDash(e.Instructions))
		fmt.Printf("  video:        %s\n", orDash(e.VideoURL))
		fmt.Printf("  gif:          %s\n", orDash(e.GifURL))

		details, err := store.GetByForeignKey("ExerciseDetails", "ExerciseId", id)
		if err != nil {
			return fmt.Errorf("failed to get set placements: %w", err)
		}
		if len(details) > 0 {
			fmt.Println("\nSets:")
			for _, d := range details {
				sd, err := store.GetSetDetailByID(asInt64(d["SetDetailId"]))
				if err != nil {
					return fmt.Errorf("failed to get set detail: %w", err)
				}
				if sd == nil {
					continue
				}
				fmt.Printf("  %s %d. %d-%d reps @ %.1f\n",
					faint.Sprintf("#%d", sd.ID),
					asInt64(d["OrderIndex"]),
					sd.MinReps, sd.MaxReps, sd.Weight)
			}
		}
		return nil
	},
}

var exerciseSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update fields on an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		fields := map[string]any{}
		if cmd.Flags().Changed("name") {
			fields["name"] = exerciseSetName
		}
		if cmd.Flags().Changed("type") {
			if !models.IsValidExerciseType(exerciseSetType) {
				return fmt.Errorf("unknown exercise type: %s\nValid types: cardio, strength", exerciseSetType)
			}
			fields["type"] = exerciseSetType
		}
		if cmd.Flags().Changed("body") {
			if !models.IsValidBodyPart(exerciseSetBody) {
				return fmt.Errorf("unknown body part: %s\nValid parts: chest, back, shoulders, arms, legs, core, full_body", exerciseSetBody)
			}
			fields["bodyPart"] = exerciseSetBody
		}
		if cmd.Flags().Changed("instructions") {
			fields["instructions"] = exerciseSetInstructions
		}
		if cmd.Flags().Changed("video") {
			fields["videoUrl"] = exerciseSetVideo
		}
		if cmd.Flags().Changed("gif") {
			fields["gifUrl"] = exerciseSetGif
		}

		if err := store.UpdateExercise(id, fields); err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}

		color.Green("✓ Updated exercise %d", id)
		return nil
	},
}

var exerciseRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		e, err := store.GetExerciseByID(id)
		if err != nil {
			return fmt.Errorf("failed to get exercise: %w", err)
		}
		if e == nil {
			return fmt.Errorf("exercise not found: %d", id)
		}

		if err := store.DeleteExercise(id); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Yellow("✗ Deleted %s", e.Name)
		fmt.Printf("  %s set placements and completions removed\n",
			color.New(color.Faint).Sprintf("#%d", id))
		return nil
	},
}

var exerciseImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import exercises from a spreadsheet",
	Long: `Import catalog exercises from an Excel (.xlsx) or CSV file.

The file must have the columns Name, Type, BodyPart, Instructions,
VideoUrl, GifUrl in that order. Only Name and Type are required. The
first row is assumed to be a header; use --start-row to change that.

Rows that fail validation are skipped and reported, valid rows are
inserted in one batch.

EXAMPLES:

  fitdb exercise import catalog.xlsx
  fitdb exercise import catalog.xlsx --sheet Exercises
  fitdb exercise import catalog.csv --start-row 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := importer.DefaultConfig(args[0])
		if exerciseImportSheet != "" {
			cfg.SheetName = exerciseImportSheet
		}
		if exerciseImportStartRow > 0 {
			cfg.StartRow = exerciseImportStartRow
		}

		result, err := importer.ImportExercises(store, cfg)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d of %d exercises", result.Imported, result.TotalProcessed)
		if result.Skipped > 0 {
			color.Yellow("  %d skipped:", result.Skipped)
			for _, msg := range result.Errors {
				fmt.Printf("    %s\n", msg)
			}
		}
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseAddType, "type", "", "exercise type (cardio, strength)")
	exerciseAddCmd.Flags().StringVar(&exerciseAddBody, "body", "", "body part targeted")
	exerciseAddCmd.Flags().StringVar(&exerciseAddInstructions, "instructions", "", "how-to text")
	exerciseAddCmd.Flags().StringVar(&exerciseAddVideo, "video", "", "demonstration video URL")
	exerciseAddCmd.Flags().StringVar(&exerciseAddGif, "gif", "", "animation URL")
	_ = exerciseAddCmd.MarkFlagRequired("type")

	exerciseListCmd.Flags().StringVarP(&exerciseListType, "type", "t", "", "filter by exercise type")
	exerciseListCmd.Flags().StringVarP(&exerciseListBody, "body", "b", "", "filter by body part")

	exerciseSetCmd.Flags().StringVar(&exerciseSetName, "name", "", "new name")
	exerciseSetCmd.Flags().StringVar(&exerciseSetType, "type", "", "new exercise type")
	exerciseSetCmd.Flags().StringVar(&exerciseSetBody, "body", "", "new body part")
	exerciseSetCmd.Flags().StringVar(&exerciseSetInstructions, "instructions", "", "new how-to text")
	exerciseSetCmd.Flags().StringVar(&exerciseSetVideo, "video", "", "new video URL")
	exerciseSetCmd.Flags().StringVar(&exerciseSetGif, "gif", "", "new animation URL")

	exerciseImportCmd.Flags().StringVar(&exerciseImportSheet, "sheet", "", "Excel sheet name (default Sheet1)")
	exerciseImportCmd.Flags().IntVar(&exerciseImportStartRow, "start-row", 0, "first data row, 1-based (default 2)")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.AddCommand(exerciseSetCmd)
	exerciseCmd.AddCommand(exerciseRmCmd)
	exerciseCmd.AddCommand(exerciseImportCmd)
	rootCmd.AddCommand(exerciseCmd)
}
