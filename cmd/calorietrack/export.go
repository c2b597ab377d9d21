// ABOUTME: CLI command for exporting today's meal log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/calorietrack/internal/config"
	"github.com/harperreed/calorietrack/internal/export"
	"github.com/harperreed/calorietrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportMealType string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export today's meal log",
	Long: `Export today's meals and totals in various formats.

FORMATS:

  json       Full JSON export
  yaml       YAML export, meals grouped by type
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o      Write to file instead of stdout. Relative paths are
                    placed in export_dir from the config (default ".").
  --meal-type, -t   Only list meals of this type; totals cover the day

EXAMPLES:

  calorietrack export json                    # JSON to stdout
  calorietrack export json -o today.json      # Save to file
  calorietrack export yaml                    # Export as YAML
  calorietrack export markdown -t lunch       # Lunch meals as Markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: export.Formats,
	RunE: func(cmd *cobra.Command, args []string) error {
		var mealType *models.MealType
		if exportMealType != "" {
			if !models.IsValidMealType(exportMealType) {
				return fmt.Errorf("unknown meal type: %s (use breakfast, lunch, dinner, or snack)", exportMealType)
			}
			mt := models.MealType(exportMealType)
			mealType = &mt
		}

		data, err := export.Render(args[0], export.Build(sess.Store.Today(), mealType, sess.Store.Now()))
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		path := exportPath(exportOutput)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", path)
		return nil
	},
}

func exportPath(output string) string {
	output = config.ExpandPath(output)
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(cfg.GetExportDir(), output)
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file")
	exportCmd.Flags().StringVarP(&exportMealType, "meal-type", "t", "", "filter meals by type")
	rootCmd.AddCommand(exportCmd)
}
