// ABOUTME: Shared output helpers for calorietrack commands.
// ABOUTME: Column padding, truncation, and meal/food line rendering.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/calorietrack/internal/models"
)

var faint = color.New(color.Faint)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// printMeal writes one line: ID  TIME  TYPE  NAME  CALORIES  (CONFIDENCE)
func printMeal(out io.Writer, m models.MealRecord) {
	conf := ""
	if m.Confidence != nil {
		conf = faint.Sprintf(" (%d%%)", *m.Confidence)
	}
	fmt.Fprintf(out, "%s %s %s %s %4d cal%s\n",
		faint.Sprint(padRight(m.ShortID(), 8)),
		faint.Sprint(m.Timestamp.Format("15:04")),
		padRight(string(m.MealType), 10),
		padRight(truncate(m.Food.Name, 30), 30),
		m.Food.Calories,
		conf)
}

// printFood writes one line: ID  NAME  CALORIES  PORTION  P/C/F
func printFood(out io.Writer, f models.FoodRecord) {
	fmt.Fprintf(out, "%s %s %4d cal  %s %s\n",
		faint.Sprint(padRight(f.ID, 8)),
		padRight(truncate(f.Name, 30), 30),
		f.Calories,
		padRight(f.Portion, 12),
		faint.Sprintf("P %.0fg  C %.0fg  F %.0fg", f.ProteinGrams(), f.CarbGrams(), f.FatGrams()))
}
