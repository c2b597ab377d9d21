// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"os/signal"
	"syscall"

	"github.com/harperreed/calorietrack/internal/daylog"
	"github.com/harperreed/calorietrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:         "mcp",
	Short:       "Start MCP server",
	Annotations: map[string]string{annotationLogs: "full"},
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to capture meals and read your progress
through a standardized protocol. The server communicates via stdin/stdout;
logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "calorietrack": {
        "command": "calorietrack",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  capture_food      Recognize a food photo (base64 or file path)
  retake_capture    Replace the photo under review
  retry_capture     Retry after a timeout
  confirm_capture   Log the reviewed meal
  cancel_capture    Discard the capture
  capture_status    Capture workflow state
  search_foods      Search the catalog by name and category
  popular_foods     Popular foods
  recent_foods      Recently used foods
  get_progress      Today's totals or the weekly summary
  delete_meal       Delete a meal by ID or prefix
  log_water         Add glasses of water
  log_exercise      Add calories burned
  get_profile       Profile, weekly stats, achievements
  set_calorie_goal  Change the daily goal

AVAILABLE RESOURCES:

  calorietrack://today     Today's progress
  calorietrack://week      Weekly summary
  calorietrack://foods     Food catalog
  calorietrack://profile   Profile and achievements`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(sess, version)
		if err != nil {
			return err
		}

		rollover := daylog.NewRolloverScheduler(sess.Store, sess.Location, logger.Named("rollover"))
		if err := rollover.Start(); err != nil {
			return err
		}
		defer rollover.Stop()

		// Handle shutdown signals
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
