// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fitdb/fitdb/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets assistants like Claude read and update your training data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fitdb": {
        "command": "fitdb",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_user         Create a user account
  list_users       List all users
  add_exercise     Add a catalog exercise
  list_exercises   List exercises, optionally by body part
  delete_exercise  Delete an exercise by id
  add_workout      Create a workout for a user
  list_workouts    List workouts, optionally for one user
  add_plan         Create a workout plan for a user
  list_plans       List plans
  log_session      Record that a user ran a workout from a plan
  list_sessions    List sessions, optionally for one user

AVAILABLE RESOURCES:

  fitdb://summary    Row counts for every table
  fitdb://exercises  The catalog grouped by body part
  fitdb://plans      Plans with their owners resolved`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
