// ABOUTME: CLI commands for managing user accounts.
// ABOUTME: Covers the add, list, show, set, and rm subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/models"
)

var (
	userAddEmail    string
	userAddPassword string
	userAddLevel    string
	userAddGoals    string

	userSetName     string
	userSetEmail    string
	userSetPassword string
	userSetLevel    string
	userSetGoals    string
)

var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"u"},
	Short:   "Manage user accounts",
	Long: `Manage user accounts. Users own workouts, plans, and session history.

EXAMPLES:

  fitdb user add Ada --email ada@example.com --level beginner
  fitdb user list
  fitdb user show 1
  fitdb user set 1 --goals "Squat 100kg"
  fitdb user rm 1

Deleting a user cascades to their workouts and plans. Logged sessions
are kept as history.`,
}

var userAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Add a user",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := models.NewUser(args[0])
		if userAddEmail != "" {
			u.WithEmail(userAddEmail)
		}
		if userAddPassword != "" {
			u.WithPassword(userAddPassword)
		}
		if userAddLevel != "" {
			if !models.IsValidFitnessLevel(userAddLevel) {
				return fmt.Errorf("unknown fitness level: %s\nValid levels: beginner, intermediate, advanced", userAddLevel)
			}
			u.WithFitnessLevel(models.FitnessLevel(userAddLevel))
		}
		if userAddGoals != "" {
			u.WithGoals(userAddGoals)
		}

		if err := store.CreateUser(u); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		color.Green("✓ Added %s", u.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprintf("#%d", u.ID),
			orDash(u.Email))
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := store.GetAllUsers()
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, u := range users {
			level := "-"
			if u.FitnessLevel != nil {
				level = string(*u.FitnessLevel)
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("#%-4d", u.ID),
				padRight(truncate(u.Name, 24), 24),
				padRight(level, 12),
				faint.Sprint(orDash(u.Email)))
		}
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a user with their workouts and plans",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		u, err := store.GetUserByID(id)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			return fmt.Errorf("user not found: %d", id)
		}

		faint := color.New(color.Faint)
		level := "-"
		if u.FitnessLevel != nil {
			level = string(*u.FitnessLevel)
		}
		fmt.Printf("%s %s\n", faint.Sprintf("#%d", u.ID), u.Name)
		fmt.Printf("  email:  %s\n", orDash(u.Email))
		fmt.Printf("  level:  %s\n", level)
		fmt.Printf("  goals:  %s\n", orDash(u.Goals))
		fmt.Printf("  joined: %s\n", u.CreatedAt.Format("2006-01-02 15:04"))

		workouts, err := store.GetByForeignKey("Workouts", "UserId", id)
		if err != nil {
			return fmt.Errorf("failed to get workouts: %w", err)
		}
		if len(workouts) > 0 {
			fmt.Println("\nWorkouts:")
			for _, w := range workouts {
				fmt.Printf("  %s %v\n", faint.Sprintf("#%v", w["id"]), w["Name"])
			}
		}

		plans, err := store.GetByForeignKey("WorkoutPlans", "UserId", id)
		if err != nil {
			return fmt.Errorf("failed to get plans: %w", err)
		}
		if len(plans) > 0 {
			fmt.Println("\nPlans:")
			for _, p := range plans {
				fmt.Printf("  %s %v\n", faint.Sprintf("#%v", p["id"]), p["Name"])
			}
		}
		return nil
	},
}

var userSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update fields on a user",
	Long: `Update one or more fields on a user. Only flags you pass are changed.

EXAMPLES:

  fitdb user set 1 --name "Ada Lovelace"
  fitdb user set 1 --level intermediate --goals "Run a 10k"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		fields := map[string]any{}
		if cmd.Flags().Changed("name") {
			fields["name"] = userSetName
		}
		if cmd.Flags().Changed("email") {
			fields["email"] = userSetEmail
		}
		if cmd.Flags().Changed("password") {
			fields["password"] = userSetPassword
		}
		if cmd.Flags().Changed("level") {
			if !models.IsValidFitnessLevel(userSetLevel) {
				return fmt.Errorf("unknown fitness level: %s\nValid levels: beginner, intermediate, advanced", userSetLevel)
			}
			fields["fitnessLevel"] = userSetLevel
		}
		if cmd.Flags().Changed("goals") {
			fields["goals"] = userSetGoals
		}

		if err := store.UpdateUser(id, fields); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		color.Green("✓ Updated user %d", id)
		return nil
	},
}

var userRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a user",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		// Fetch first so the confirmation can name what was deleted
		u, err := store.GetUserByID(id)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			return fmt.Errorf("user not found: %d", id)
		}

		if err := store.DeleteUser(id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		color.Yellow("✗ Deleted %s", u.Name)
		fmt.Printf("  %s workouts and plans removed, sessions kept\n",
			color.New(color.Faint).Sprintf("#%d", id))
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userAddEmail, "email", "", "email address")
	userAddCmd.Flags().StringVar(&userAddPassword, "password", "", "password value")
	userAddCmd.Flags().StringVar(&userAddLevel, "level", "", "fitness level (beginner, intermediate, advanced)")
	userAddCmd.Flags().StringVar(&userAddGoals, "goals", "", "free-form goals text")

	userSetCmd.Flags().StringVar(&userSetName, "name", "", "new name")
	userSetCmd.Flags().StringVar(&userSetEmail, "email", "", "new email address")
	userSetCmd.Flags().StringVar(&userSetPassword, "password", "", "new password value")
	userSetCmd.Flags().StringVar(&userSetLevel, "level", "", "new fitness level")
	userSetCmd.Flags().StringVar(&userSetGoals, "goals", "", "new goals text")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userSetCmd)
	userCmd.AddCommand(userRmCmd)
	rootCmd.AddCommand(userCmd)
}
