// ABOUTME: CLI commands for browsing the food catalog.
// ABOUTME: Search, category filter, popular, recent, and single-food views.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/calorietrack/internal/catalog"
	"github.com/harperreed/calorietrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	foodsCategory string
	popularLimit  int
	recentLimit   int
)

var foodsCmd = &cobra.Command{
	Use:     "foods",
	Aliases: []string{"food", "f"},
	Short:   "Browse the food catalog",
	Long: `Browse the food catalog.

OUTPUT FORMAT:

  Each line shows: ID  NAME  CALORIES  PORTION  PROTEIN/CARBS/FAT

CATEGORIES:

  all            every food
  high-protein   15g protein or more
  low-calorie    under 150 calories

EXAMPLES:

  calorietrack foods                          # Whole catalog
  calorietrack foods --category low-calorie   # One category
  calorietrack foods search rice              # Name search
  calorietrack foods search grilled -c high-protein
  calorietrack foods popular -n 3             # Top 3 popular foods
  calorietrack foods recent                   # Recently used foods
  calorietrack foods categories               # Category counts
  calorietrack foods show food-5              # One food in detail`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return searchFoods(cmd.OutOrStdout(), "")
	},
}

var foodsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return searchFoods(cmd.OutOrStdout(), args[0])
	},
}

var foodsPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular foods",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printFoods(cmd.OutOrStdout(), sess.Catalog.Popular(popularLimit))
		return nil
	},
}

var foodsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently used foods",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printFoods(cmd.OutOrStdout(), sess.Catalog.Recent(recentLimit))
		return nil
	},
}

var foodsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show category counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, c := range sess.Catalog.Categories() {
			fmt.Fprintf(out, "%s %s %d\n", padRight(string(c.ID), 14), padRight(c.Label, 14), c.Count)
		}
		return nil
	},
}

var foodsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := sess.Catalog.Get(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.Bold).Fprintln(out, f.Name)
		fmt.Fprintf(out, "  ID:       %s\n", f.ID)
		fmt.Fprintf(out, "  Calories: %d\n", f.Calories)
		fmt.Fprintf(out, "  Portion:  %s\n", f.Portion)
		fmt.Fprintf(out, "  Protein:  %.1fg\n", f.ProteinGrams())
		fmt.Fprintf(out, "  Carbs:    %.1fg\n", f.CarbGrams())
		fmt.Fprintf(out, "  Fat:      %.1fg\n", f.FatGrams())
		if f.Fiber != nil {
			fmt.Fprintf(out, "  Fiber:    %.1fg\n", f.FiberGrams())
		}
		return nil
	},
}

func searchFoods(out io.Writer, query string) error {
	foods, err := sess.Catalog.Query(query, catalog.Category(foodsCategory))
	if err != nil {
		return err
	}
	printFoods(out, foods)
	return nil
}

func printFoods(out io.Writer, foods []models.FoodRecord) {
	if len(foods) == 0 {
		fmt.Fprintln(out, "No foods found.")
		return
	}
	for _, f := range foods {
		printFood(out, f)
	}
}

func init() {
	foodsCmd.PersistentFlags().StringVarP(&foodsCategory, "category", "c", "", "filter by category (all, high-protein, low-calorie)")
	foodsPopularCmd.Flags().IntVarP(&popularLimit, "limit", "n", catalog.DefaultPopularLimit, "max number of results")
	foodsRecentCmd.Flags().IntVarP(&recentLimit, "limit", "n", catalog.DefaultRecentLimit, "max number of results")

	foodsCmd.AddCommand(foodsSearchCmd, foodsPopularCmd, foodsRecentCmd, foodsCategoriesCmd, foodsShowCmd)
	rootCmd.AddCommand(foodsCmd)
}
