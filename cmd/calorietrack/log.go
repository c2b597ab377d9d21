// ABOUTME: CLI commands for logging water and exercise and deleting meals.
// ABOUTME: Each prints the new running total for the day.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water [glasses]",
	Short: "Log glasses of water",
	Long: `Add glasses of water to today's intake. Defaults to one glass.

EXAMPLES:

  calorietrack water      # One glass
  calorietrack water 3    # Three glasses`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		glasses := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid glasses: %s", args[0])
			}
			glasses = n
		}

		total, err := sess.Store.AddWater(glasses)
		if err != nil {
			return fmt.Errorf("failed to log water: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Water: %d glasses today\n", total)
		return nil
	},
}

var exerciseCmd = &cobra.Command{
	Use:     "exercise <calories>",
	Aliases: []string{"ex"},
	Short:   "Log calories burned by exercise",
	Long: `Add calories burned by exercise today.

Exercise is tracked next to the meal log; it does not change the
remaining calories against the goal.

EXAMPLES:

  calorietrack exercise 300`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[0])
		}

		total, err := sess.Store.AddExercise(calories)
		if err != nil {
			return fmt.Errorf("failed to log exercise: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exercise: %d cal burned today\n", total)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a logged meal",
	Long: `Delete a meal from today's log by its ID or ID prefix.

The ID prefix is shown in the first column of 'calorietrack progress'.

EXAMPLES:

  calorietrack delete meal-2      # Demo meal by full ID
  calorietrack rm 3f2a            # Short prefix (if unique)

CAUTION:

  If the prefix matches multiple meals, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := sess.Store.DeleteMeal(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		out := cmd.OutOrStdout()
		day := sess.Store.Today()
		color.New(color.FgYellow).Fprintf(out, "✗ Deleted %s\n", meal.Food.Name)
		fmt.Fprintf(out, "  %s %d cal, %d remaining\n", faint.Sprint(meal.ShortID()), meal.Food.Calories, day.RemainingCalories)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(waterCmd, exerciseCmd, deleteCmd)
}
