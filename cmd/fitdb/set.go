// ABOUTME: CLI commands for set prescriptions (rep range, load, intensity flags).
// ABOUTME: Covers the add, list, and rm subcommands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/models"
)

var (
	setAddAmrap   bool
	setAddPaused  bool
	setAddFast    bool
	setAddForced  bool
	setAddDropset bool
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Manage set prescriptions",
	Long: `Manage set prescriptions. A set is a rep range and a load, plus
optional intensity flags. Attach sets to exercises with 'fitdb detail'.

INTENSITY FLAGS:

  --amrap     as many reps as possible on the last set
  --paused    pause at the bottom of each rep
  --fast      explosive concentric
  --forced    partner-assisted reps past failure
  --dropset   strip weight and continue

EXAMPLES:

  fitdb set add 8 12 60
  fitdb set add 5 5 100 --paused
  fitdb set add 8 8 80 --amrap --dropset`,
}

var setAddCmd = &cobra.Command{
	Use:     "add <min-reps> <max-reps> <weight>",
	Aliases: []string{"a"},
	Short:   "Add a set prescription",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		minReps, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid min reps: %s", args[0])
		}
		maxReps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid max reps: %s", args[1])
		}
		weight, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[2])
		}

		sd := models.NewSetDetail(minReps, maxReps, weight)
		sd.Amrap = setAddAmrap
		sd.Paused = setAddPaused
		sd.Fast = setAddFast
		sd.Forced = setAddForced
		sd.Dropset = setAddDropset

		if err := store.CreateSetDetail(sd); err != nil {
			return fmt.Errorf("failed to create set: %w", err)
		}

		color.Green("✓ Added set")
		fmt.Printf("  %s %d-%d reps @ %.1f %s\n",
			color.New(color.Faint).Sprintf("#%d", sd.ID),
			sd.MinReps, sd.MaxReps, sd.Weight,
			color.New(color.Faint).Sprint(setFlags(sd)))
		return nil
	},
}

var setListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List set prescriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := store.GetAllSetDetails()
		if err != nil {
			return fmt.Errorf("failed to list sets: %w", err)
		}
		if len(sets) == 0 {
			fmt.Println("No sets found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, sd := range sets {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("#%-4d", sd.ID),
				padRight(fmt.Sprintf("%d-%d reps @ %.1f", sd.MinReps, sd.MaxReps, sd.Weight), 24),
				faint.Sprint(setFlags(sd)))
		}
		return nil
	},
}

var setRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a set prescription",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		sd, err := store.GetSetDetailByID(id)
		if err != nil {
			return fmt.Errorf("failed to get set: %w", err)
		}
		if sd == nil {
			return fmt.Errorf("set not found: %d", id)
		}

		if err := store.DeleteSetDetail(id); err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}

		color.Yellow("✗ Deleted set")
		fmt.Printf("  %s %d-%d reps @ %.1f\n",
			color.New(color.Faint).Sprintf("#%d", id),
			sd.MinReps, sd.MaxReps, sd.Weight)
		return nil
	},
}

// setFlags renders the enabled intensity flags, or "-" when none are.
func setFlags(sd *models.SetDetail) string {
	var on []string
	if sd.Amrap {
		on = append(on, "amrap")
	}
	if sd.Paused {
		on = append(on, "paused")
	}
	if sd.Fast {
		on = append(on, "fast")
	}
	if sd.Forced {
		on = append(on, "forced")
	}
	if sd.Dropset {
		on = append(on, "dropset")
	}
	if len(on) == 0 {
		return "-"
	}
	return strings.Join(on, ",")
}

func init() {
	setAddCmd.Flags().BoolVar(&setAddAmrap, "amrap", false, "as many reps as possible")
	setAddCmd.Flags().BoolVar(&setAddPaused, "paused", false, "paused reps")
	setAddCmd.Flags().BoolVar(&setAddFast, "fast", false, "explosive reps")
	setAddCmd.Flags().BoolVar(&setAddForced, "forced", false, "forced reps")
	setAddCmd.Flags().BoolVar(&setAddDropset, "dropset", false, "drop set")

	setCmd.AddCommand(setAddCmd)
	setCmd.AddCommand(setListCmd)
	setCmd.AddCommand(setRmCmd)
	rootCmd.AddCommand(setCmd)
}
