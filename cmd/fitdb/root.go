// ABOUTME: Root Cobra command for the fitdb CLI.
// ABOUTME: Opens the shared store in PersistentPreRunE and closes it afterwards.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/config"
	"github.com/fitdb/fitdb/internal/storage"
)

var (
	store *storage.Store

	flagDB      string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fitdb",
	Short: "Local fitness tracking database",
	Long: `Fitdb is a local-first database for planning and logging strength and
cardio training. Everything lives in a single SQLite file.

WHAT IT STORES:

  Users       accounts with fitness level and goals
  Exercises   the movement catalog (type, body part, how-to media)
  Sets        rep-range and load prescriptions with intensity flags
  Workouts    named training days owned by a user
  Plans       multi-week programs owned by a user
  Sessions    a log of plan runs, kept even after the plan is deleted

QUICK START:

  $ fitdb user add Ada --email ada@example.com --level beginner
  $ fitdb exercise add "Bench Press" --type strength --body chest
  $ fitdb workout add 1 "Push Day"
  $ fitdb plan add 1 "Strength Block" --description "Four weeks"
  $ fitdb session log 1 1 1

IMPORT / EXPORT:

  $ fitdb exercise import catalog.xlsx   # Seed the catalog from a spreadsheet
  $ fitdb export --format yaml           # Dump everything, human-readable
  $ fitdb export -o backup.json          # Full JSON backup
  $ fitdb import backup.json             # Restore into an empty database

MCP INTEGRATION:

  Run 'fitdb mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitdb": { "command": "fitdb", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  One SQLite file, ~/.local/share/fitdb/fitdb.db by default. Override
  with --db, the FITDB_DB environment variable, or
  ~/.config/fitdb/config.toml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store setup for commands that don't touch it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// A .env file can carry FITDB_* overrides during development.
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagVerbose {
			cfg.LogLevel = "debug"
		}

		if flagDB != "" {
			// The flag wins over config and environment.
			store, err = cfg.OpenStoreAt(filepath.Clean(config.ExpandPath(flagDB)))
		} else {
			store, err = cfg.OpenStore()
		}
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
