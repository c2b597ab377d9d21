// ABOUTME: CLI commands for showing and initializing the config file.
// ABOUTME: Prints effective settings with defaults applied.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/calorietrack/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Annotations: map[string]string{annotationNoSession: "true"},
	Use:         "config",
	Short:       "Show effective configuration",
	Long: `Show the config file path and the effective settings.

The config file is JSON at ~/.config/calorietrack/config.json
(or $XDG_CONFIG_HOME/calorietrack/config.json). Set CALORIETRACK_CONFIG
to use another path.

EXAMPLE CONFIG:

  {
    "calorie_goal": 1800,
    "recognition_delay": "1.5s",
    "recognition_timeout": "10s",
    "listen": ":8080",
    "log_level": "info",
    "log_format": "json",
    "timezone": "America/Chicago",
    "export_dir": "~/calorietrack"
  }

EXAMPLES:

  calorietrack config          # Show settings
  calorietrack config init     # Write a config file with defaults`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return printConfig(cmd.OutOrStdout(), c)
	},
}

var configInitCmd = &cobra.Command{
	Annotations: map[string]string{annotationNoSession: "true"},
	Use:         "init",
	Short:       "Write a config file with defaults",
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}

		c := &config.Config{
			CalorieGoal:        config.DefaultCalorieGoal,
			RecognitionDelay:   config.DefaultRecognitionDelay.String(),
			RecognitionTimeout: config.DefaultRecognitionTimeout.String(),
			Listen:             config.DefaultListen,
			LogLevel:           config.DefaultLogLevel,
			LogFormat:          config.DefaultLogFormat,
		}
		if err := c.Save(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func printConfig(out io.Writer, c *config.Config) error {
	delay, err := c.GetRecognitionDelay()
	if err != nil {
		return err
	}
	timeout, err := c.GetRecognitionTimeout()
	if err != nil {
		return err
	}
	loc, err := c.GetLocation()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", faint.Sprint("file:"), config.GetConfigPath())
	fmt.Fprintf(out, "calorie_goal         %d\n", c.GetCalorieGoal())
	fmt.Fprintf(out, "recognition_delay    %s\n", delay)
	fmt.Fprintf(out, "recognition_timeout  %s\n", timeout)
	fmt.Fprintf(out, "listen               %s\n", c.GetListen())
	fmt.Fprintf(out, "log_level            %s\n", c.GetLogLevel())
	fmt.Fprintf(out, "log_format           %s\n", c.GetLogFormat())
	fmt.Fprintf(out, "timezone             %s\n", loc)
	fmt.Fprintf(out, "start_empty          %t\n", c.StartEmpty)
	fmt.Fprintf(out, "seed                 %d\n", c.Seed)
	fmt.Fprintf(out, "export_dir           %s\n", c.GetExportDir())
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
