// ABOUTME: CLI command for capturing a meal photo.
// ABOUTME: Runs recognition, then confirms, retakes, or cancels interactively.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/calorietrack/internal/capture"
	"github.com/spf13/cobra"
)

var (
	captureYes     bool
	captureTimeout time.Duration
)

var captureCmd = &cobra.Command{
	Use:     "capture <image>",
	Aliases: []string{"snap", "c"},
	Short:   "Recognize a food photo and log it",
	Long: `Capture a food photo, review the recognized food, and log it.

FLOW:

  The image is sent to the recognizer. When the estimate arrives you can:

    y   log the meal (meal type is picked from the time of day)
    r   retake with another image path
    n   cancel without logging

  If recognition times out you are offered a retry with the same image.

EXAMPLES:

  calorietrack capture lunch.jpg          # Review, then confirm
  calorietrack capture lunch.jpg --yes    # Log without asking
  calorietrack capture plate.png --seed 7 # Reproducible estimate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wf := sess.Workflow
		if err := wf.AcquireFrom(cmd.Context(), capture.FileSource{Path: args[0]}); err != nil {
			return fmt.Errorf("failed to capture: %w", err)
		}
		return runCapture(cmd.Context(), cmd.OutOrStdout(), bufio.NewReader(cmd.InOrStdin()))
	},
}

func runCapture(ctx context.Context, out io.Writer, in *bufio.Reader) error {
	wf := sess.Workflow
	for {
		fmt.Fprintln(out, faint.Sprint("Analyzing image..."))
		waitCtx, cancel := context.WithTimeout(ctx, captureTimeout)
		snap, _ := wf.Await(waitCtx)
		cancel()

		switch snap.State {
		case capture.StateReviewing:
			printResult(out, snap)
			answer := "y"
			if !captureYes {
				answer = strings.ToLower(prompt(out, in, "Log this meal? [y]es / [r]etake / [n]o: "))
			}
			switch answer {
			case "y", "yes":
				return confirmCapture(out)
			case "r", "retake":
				img, err := capture.FileSource{Path: prompt(out, in, "Image path: ")}.Acquire(ctx)
				if err == nil {
					err = wf.Retake(img)
				}
				if err != nil {
					wf.Cancel()
					return fmt.Errorf("failed to retake: %w", err)
				}
			default:
				wf.Cancel()
				fmt.Fprintln(out, "Capture canceled.")
				return nil
			}

		case capture.StateFailed:
			color.New(color.FgRed).Fprintf(out, "✗ %s\n", snap.Error)
			if !snap.Retryable || captureYes {
				wf.Cancel()
				return errors.New(snap.Error)
			}
			if answer := strings.ToLower(prompt(out, in, "Retry? [y/N] ")); answer != "y" && answer != "yes" {
				wf.Cancel()
				fmt.Fprintln(out, "Capture canceled.")
				return nil
			}
			if err := wf.Retry(); err != nil {
				return fmt.Errorf("failed to retry: %w", err)
			}

		case capture.StateIdle:
			if snap.Error != "" {
				return errors.New(snap.Error)
			}
			return nil

		default:
			wf.Cancel()
			return fmt.Errorf("recognition still running after %s", captureTimeout)
		}
	}
}

func confirmCapture(out io.Writer) error {
	meal, err := sess.Workflow.Confirm()
	if err != nil {
		return fmt.Errorf("failed to log meal: %w", err)
	}
	day := sess.Store.Today()
	color.New(color.FgGreen).Fprintf(out, "✓ Logged %s: %d cal as %s (ID: %s)\n",
		meal.Food.Name, meal.Food.Calories, meal.MealType, meal.ShortID())
	fmt.Fprintf(out, "  %d of %d cal, %d remaining\n",
		day.CurrentCalories, day.CalorieGoal, day.RemainingCalories)
	return nil
}

func printResult(out io.Writer, snap capture.Snapshot) {
	r := snap.Result
	fmt.Fprintf(out, "%s %s\n", color.New(color.Bold).Sprint(r.FoodName), faint.Sprintf("(%d%% confident)", r.Confidence))
	fmt.Fprintf(out, "  %d cal ±%d  ·  %s\n", r.Calories, r.MarginOfError, r.Portion)
	if len(r.Suggestions) > 0 {
		names := make([]string, 0, len(r.Suggestions))
		for _, s := range r.Suggestions {
			names = append(names, s.Name)
		}
		fmt.Fprintf(out, "  %s %s\n", faint.Sprint("Similar:"), strings.Join(names, ", "))
	}
}

func prompt(out io.Writer, in *bufio.Reader, question string) string {
	fmt.Fprint(out, question)
	response, err := in.ReadString('\n')
	if err != nil && response == "" {
		fmt.Fprintln(out)
		return ""
	}
	return strings.TrimSpace(response)
}

func init() {
	captureCmd.Flags().BoolVarP(&captureYes, "yes", "y", false, "log the recognized meal without asking")
	captureCmd.Flags().DurationVar(&captureTimeout, "wait", 30*time.Second, "how long to wait for recognition")
	rootCmd.AddCommand(captureCmd)
}
