// ABOUTME: CLI commands for the user profile and calorie goal.
// ABOUTME: Shows profile, weekly stats, and achievements; edits profile fields.
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/calorietrack/internal/daylog"
	"github.com/harperreed/calorietrack/internal/models"
	"github.com/harperreed/calorietrack/internal/progress"
	"github.com/spf13/cobra"
)

var (
	profileName     string
	profileEmail    string
	profileGoal     int
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileActivity string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and achievements",
	Long: `Show the user profile, this week's stats, and achievements.

EXAMPLES:

  calorietrack profile                          # Show profile
  calorietrack profile set --calorie-goal 1800  # Change the daily goal
  calorietrack profile set --activity active --weight 168.5
  calorietrack goal 2200                        # Shortcut for the goal`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printProfile(cmd.OutOrStdout())
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit profile fields",
	Long: `Edit profile fields. Only the flags you pass are changed.

ACTIVITY LEVELS:

  sedentary, light, moderate, active, very_active`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		var patch daylog.ProfilePatch
		if flags.Changed("name") {
			patch.Name = &profileName
		}
		if flags.Changed("email") {
			patch.Email = &profileEmail
		}
		if flags.Changed("calorie-goal") {
			patch.CalorieGoal = &profileGoal
		}
		if flags.Changed("weight") {
			patch.Weight = &profileWeight
		}
		if flags.Changed("height") {
			patch.Height = &profileHeight
		}
		if flags.Changed("age") {
			patch.Age = &profileAge
		}
		if flags.Changed("activity") {
			patch.ActivityLevel = &profileActivity
		}

		if _, err := sess.Store.UpdateProfile(patch); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Profile updated")
		printProfile(cmd.OutOrStdout())
		return nil
	},
}

var goalCmd = &cobra.Command{
	Use:   "goal <calories>",
	Short: "Set the daily calorie goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid goal: %s", args[0])
		}
		if err := sess.Store.SetCalorieGoal(goal); err != nil {
			return fmt.Errorf("failed to set goal: %w", err)
		}

		day := sess.Store.Today()
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Goal set to %d cal, %d remaining\n", day.CalorieGoal, day.RemainingCalories)
		return nil
	},
}

func printProfile(out io.Writer) {
	bold := color.New(color.Bold)
	p := sess.Store.Profile()

	bold.Fprintf(out, "%s  %s\n", p.Initials(), p.Name)
	if p.Email != "" {
		fmt.Fprintf(out, "  %s\n", faint.Sprint(p.Email))
	}
	fmt.Fprintf(out, "  Goal:     %d cal/day\n", p.CalorieGoal)
	if p.Weight != nil {
		fmt.Fprintf(out, "  Weight:   %.1f lbs\n", *p.Weight)
	}
	if p.Height != nil {
		fmt.Fprintf(out, "  Height:   %.0f in\n", *p.Height)
	}
	if p.Age != nil {
		fmt.Fprintf(out, "  Age:      %d\n", *p.Age)
	}
	if p.ActivityLevel != nil {
		fmt.Fprintf(out, "  Activity: %s\n", *p.ActivityLevel)
	}

	week := progress.Week(sess.Store.Weekly())
	fmt.Fprintln(out)
	bold.Fprintln(out, "This week")
	fmt.Fprintf(out, "  %d cal/day avg  ·  %d/%d days on track  ·  %s lbs\n",
		week.Stats.AverageCalories, week.Stats.DaysOnTrack, week.Stats.TotalDays, week.WeightChange)

	achievements := sess.Store.Achievements()
	if len(achievements) == 0 {
		return
	}
	fmt.Fprintln(out)
	bold.Fprintln(out, "Achievements")
	for _, a := range achievements {
		printAchievement(out, a)
	}
}

func printAchievement(out io.Writer, a models.Achievement) {
	if a.Earned {
		fmt.Fprintf(out, "  %s %s\n", a.Icon, a.Title)
		return
	}
	fmt.Fprintf(out, "  %s %s\n", a.Icon, faint.Sprintf("%s (locked)", a.Title))
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "email address")
	profileSetCmd.Flags().IntVar(&profileGoal, "calorie-goal", 0, "daily calorie goal")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in lbs")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in inches")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd, goalCmd)
}
