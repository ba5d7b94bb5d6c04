// ABOUTME: CLI commands for workout plans, the named programs owned by a user.
// ABOUTME: Covers add, list with a user filter, set, and rm.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/models"
)

var (
	planAddDescription string

	planListUser int64

	planSetName        string
	planSetDescription string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage workout plans",
	Long: `Manage workout plans. A plan is a named program belonging to a user;
running a plan is recorded with 'fitdb session log'.

EXAMPLES:

  fitdb plan add 1 "Strength Block" --description "Four weeks, 5x5"
  fitdb plan list --user 1
  fitdb plan set 2 --description "Five weeks"
  fitdb plan rm 2

Plans are deleted together with their owner. Logged sessions keep the
plan id as history.`,
}

var planAddCmd = &cobra.Command{
	Use:     "add <user-id> <name>",
	Aliases: []string{"a"},
	Short:   "Add a plan",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}

		p := models.NewWorkoutPlan(userID, args[1])
		if planAddDescription != "" {
			p.WithDescription(planAddDescription)
		}
		if err := store.CreateWorkoutPlan(p); err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		color.Green("✓ Added %s", p.Name)
		fmt.Printf("  %s user %d\n",
			color.New(color.Faint).Sprintf("#%d", p.ID), p.UserID)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		if planListUser > 0 {
			rows, err := store.GetByForeignKey("WorkoutPlans", "UserId", planListUser)
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No plans found.")
				return nil
			}
			for _, r := range rows {
				desc := fmt.Sprintf("%v", r["Description"])
				if desc != "" {
					desc = faint.Sprintf(" (%s)", truncate(desc, 40))
				}
				fmt.Printf("%s %s %s%s\n",
					faint.Sprintf("#%-4d", asInt64(r["id"])),
					padRight(truncate(fmt.Sprintf("%v", r["Name"]), 28), 28),
					faint.Sprintf("user %v", r["UserId"]),
					desc)
			}
			return nil
		}

		plans, err := store.GetAllWorkoutPlans()
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		if len(plans) == 0 {
			fmt.Println("No plans found.")
			return nil
		}
		for _, p := range plans {
			desc := ""
			if p.Description != "" {
				desc = faint.Sprintf(" (%s)", truncate(p.Description, 40))
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprintf("#%-4d", p.ID),
				padRight(truncate(p.Name, 28), 28),
				faint.Sprintf("user %d", p.UserID),
				desc)
		}
		return nil
	},
}

var planSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update fields on a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		fields := map[string]any{}
		if cmd.Flags().Changed("name") {
			fields["name"] = planSetName
		}
		if cmd.Flags().Changed("description") {
			fields["description"] = planSetDescription
		}

		if err := store.UpdateWorkoutPlan(id, fields); err != nil {
			return fmt.Errorf("failed to update plan: %w", err)
		}

		color.Green("✓ Updated plan %d", id)
		return nil
	},
}

var planRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a plan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p, err := store.GetWorkoutPlanByID(id)
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if p == nil {
			return fmt.Errorf("plan not found: %d", id)
		}

		if err := store.DeleteWorkoutPlan(id); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}

		color.Yellow("✗ Deleted %s", p.Name)
		return nil
	},
}

func init() {
	planAddCmd.Flags().StringVar(&planAddDescription, "description", "", "plan description")

	planListCmd.Flags().Int64VarP(&planListUser, "user", "u", 0, "only plans for this user id")

	planSetCmd.Flags().StringVar(&planSetName, "name", "", "new name")
	planSetCmd.Flags().StringVar(&planSetDescription, "description", "", "new description")

	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planRmCmd)
	rootCmd.AddCommand(planCmd)
}
