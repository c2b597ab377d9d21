// ABOUTME: CLI commands for today's progress and the weekly summary.
// ABOUTME: Shows calories against goal, macros, meal-type split, and insights.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/calorietrack/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"today", "p"},
	Short:   "Show today's progress",
	Long: `Show today's calories, macros, meal-type breakdown, and meals.

OUTPUT:

  Calories consumed against the daily goal, with the remainder
  (negative when over goal), water and exercise, macro split by grams,
  calories per meal type, and every meal newest first.

  Meal IDs in the first column work with 'calorietrack delete'.

EXAMPLES:

  calorietrack progress          # Today
  calorietrack progress week     # Weekly stats and insights
  calorietrack progress --empty  # Start without the demo meals`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printToday(cmd.OutOrStdout(), progress.Today(sess.Store.Today()))
		return nil
	},
}

var progressWeekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"weekly", "w"},
	Short:   "Show the weekly summary",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printWeek(cmd.OutOrStdout(), progress.Week(sess.Store.Weekly()))
		return nil
	},
}

func printToday(out io.Writer, t progress.TodaySummary) {
	bold := color.New(color.Bold)
	day := t.Progress

	bold.Fprintf(out, "Today  %s\n", day.Date.Format("Mon Jan 2"))
	remaining := color.New(color.FgGreen).Sprintf("%d remaining", day.RemainingCalories)
	if day.RemainingCalories < 0 {
		remaining = color.New(color.FgRed).Sprintf("%d over", -day.RemainingCalories)
	}
	fmt.Fprintf(out, "  %d / %d cal (%d%%)  %s\n", day.CurrentCalories, day.CalorieGoal, t.GoalPercent, remaining)
	if day.WaterIntake != nil {
		fmt.Fprintf(out, "  Water: %d glasses\n", *day.WaterIntake)
	}
	if day.ExerciseCalories != nil {
		fmt.Fprintf(out, "  Exercise: %d cal burned\n", *day.ExerciseCalories)
	}

	fmt.Fprintln(out)
	bold.Fprintln(out, "Macros")
	fmt.Fprintf(out, "  Protein %3d%%  %s\n", t.Macros.Protein, faint.Sprintf("%.0fg", t.MacroGrams.Protein))
	fmt.Fprintf(out, "  Carbs   %3d%%  %s\n", t.Macros.Carbs, faint.Sprintf("%.0fg", t.MacroGrams.Carbs))
	fmt.Fprintf(out, "  Fat     %3d%%  %s\n", t.Macros.Fat, faint.Sprintf("%.0fg", t.MacroGrams.Fat))

	fmt.Fprintln(out)
	bold.Fprintln(out, "By meal type")
	for _, s := range t.MealTypes {
		fmt.Fprintf(out, "  %s %4d cal %3d%%\n", padRight(string(s.MealType), 10), s.Calories, s.Percent)
	}

	fmt.Fprintln(out)
	bold.Fprintln(out, "Meals")
	if len(t.Meals) == 0 {
		fmt.Fprintln(out, "  No meals logged yet.")
		return
	}
	for _, m := range t.Meals {
		printMeal(out, m)
	}
}

func printWeek(out io.Writer, w progress.WeekSummary) {
	bold := color.New(color.Bold)
	s := w.Stats

	bold.Fprintf(out, "Week  %s - %s\n", s.WeekStart.Format("Jan 2"), s.WeekEnd.Format("Jan 2"))
	fmt.Fprintf(out, "  Average:     %d cal/day\n", s.AverageCalories)
	fmt.Fprintf(out, "  On track:    %d of %d days (%d%%)\n", s.DaysOnTrack, s.TotalDays, w.OnTrackPercent)
	unit := " lbs"
	if s.WeightTrend == nil {
		unit = ""
	}
	fmt.Fprintf(out, "  Weight:      %s%s\n", w.WeightChange, unit)

	fmt.Fprintln(out)
	bold.Fprintln(out, "Insights")
	for _, in := range w.Insights {
		fmt.Fprintf(out, "  • %s  %s\n", in.Title, faint.Sprint(in.Detail))
	}
}

func init() {
	progressCmd.AddCommand(progressWeekCmd)
	rootCmd.AddCommand(progressCmd)
}
