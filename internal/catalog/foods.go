// ABOUTME: Built-in reference food database.
// ABOUTME: Fifteen common foods with calories and macro grams.
package catalog

import "github.com/harperreed/calorietrack/internal/models"

// Default returns a catalog of the built-in foods.
func Default() *Catalog {
	return New(defaultFoods())
}

func defaultFoods() []models.FoodRecord {
	return []models.FoodRecord{
		{
			ID: "food-1", Name: "Avocado Toast", Calories: 340,
			Portion: "2 slices", PortionSize: 2, PortionUnit: "slices",
			ImageURL: "/generated/avocado-toast.png",
			Protein: models.Grams(12), Carbs: models.Grams(38), Fat: models.Grams(18), Fiber: models.Grams(10),
		},
		{
			ID: "food-2", Name: "Grilled Chicken Salad", Calories: 425,
			Portion: "1 bowl", PortionSize: 1, PortionUnit: "bowl",
			ImageURL: "/generated/chicken-salad.png",
			Protein: models.Grams(42), Carbs: models.Grams(22), Fat: models.Grams(18), Fiber: models.Grams(6),
		},
		{
			ID: "food-3", Name: "Greek Yogurt", Calories: 150,
			Portion: "1 cup", PortionSize: 1, PortionUnit: "cup",
			ImageURL: "/generated/greek-yogurt.png",
			Protein: models.Grams(20), Carbs: models.Grams(12), Fat: models.Grams(4), Fiber: models.Grams(2),
		},
		{
			ID: "food-4", Name: "Salmon with Rice & Vegetables", Calories: 532,
			Portion: "1 plate", PortionSize: 1, PortionUnit: "plate",
			ImageURL: "/generated/salmon-rice.png",
			Protein: models.Grams(38), Carbs: models.Grams(52), Fat: models.Grams(16), Fiber: models.Grams(6),
		},
		{
			ID: "food-5", Name: "Banana", Calories: 105,
			Portion: "1 medium", PortionSize: 1, PortionUnit: "medium",
			ImageURL: "/placeholder-banana.png",
			Protein: models.Grams(1), Carbs: models.Grams(27), Fat: models.Grams(0), Fiber: models.Grams(3),
		},
		{
			ID: "food-6", Name: "Almonds", Calories: 164,
			Portion: "1 oz (23 nuts)", PortionSize: 1, PortionUnit: "oz",
			ImageURL: "/placeholder-almonds.png",
			Protein: models.Grams(6), Carbs: models.Grams(6), Fat: models.Grams(14), Fiber: models.Grams(3),
		},
		{
			ID: "food-7", Name: "Protein Smoothie", Calories: 280,
			Portion: "16 oz", PortionSize: 16, PortionUnit: "oz",
			ImageURL: "/placeholder-smoothie.png",
			Protein: models.Grams(25), Carbs: models.Grams(35), Fat: models.Grams(6), Fiber: models.Grams(5),
		},
		{
			ID: "food-8", Name: "Oatmeal with Berries", Calories: 310,
			Portion: "1 bowl", PortionSize: 1, PortionUnit: "bowl",
			ImageURL: "/placeholder-oatmeal.png",
			Protein: models.Grams(10), Carbs: models.Grams(54), Fat: models.Grams(7), Fiber: models.Grams(8),
		},
		{
			ID: "food-9", Name: "Apple", Calories: 95,
			Portion: "1 medium", PortionSize: 1, PortionUnit: "medium",
			ImageURL: "/placeholder-apple.png",
			Protein: models.Grams(0), Carbs: models.Grams(25), Fat: models.Grams(0), Fiber: models.Grams(4),
		},
		{
			ID: "food-10", Name: "Brown Rice", Calories: 216,
			Portion: "1 cup cooked", PortionSize: 1, PortionUnit: "cup",
			ImageURL: "/placeholder-rice.png",
			Protein: models.Grams(5), Carbs: models.Grams(45), Fat: models.Grams(2), Fiber: models.Grams(4),
		},
		{
			ID: "food-11", Name: "Grilled Chicken Breast", Calories: 165,
			Portion: "3.5 oz", PortionSize: 3.5, PortionUnit: "oz",
			ImageURL: "/placeholder-chicken.png",
			Protein: models.Grams(31), Carbs: models.Grams(0), Fat: models.Grams(4), Fiber: models.Grams(0),
		},
		{
			ID: "food-12", Name: "Broccoli", Calories: 55,
			Portion: "1 cup cooked", PortionSize: 1, PortionUnit: "cup",
			ImageURL: "/placeholder-broccoli.png",
			Protein: models.Grams(4), Carbs: models.Grams(11), Fat: models.Grams(1), Fiber: models.Grams(5),
		},
		{
			ID: "food-13", Name: "Eggs", Calories: 140,
			Portion: "2 large", PortionSize: 2, PortionUnit: "large",
			ImageURL: "/placeholder-eggs.png",
			Protein: models.Grams(12), Carbs: models.Grams(1), Fat: models.Grams(10), Fiber: models.Grams(0),
		},
		{
			ID: "food-14", Name: "Whole Wheat Bread", Calories: 80,
			Portion: "1 slice", PortionSize: 1, PortionUnit: "slice",
			ImageURL: "/placeholder-bread.png",
			Protein: models.Grams(4), Carbs: models.Grams(14), Fat: models.Grams(1), Fiber: models.Grams(2),
		},
		{
			ID: "food-15", Name: "Peanut Butter", Calories: 190,
			Portion: "2 tbsp", PortionSize: 2, PortionUnit: "tbsp",
			ImageURL: "/placeholder-peanut-butter.png",
			Protein: models.Grams(8), Carbs: models.Grams(7), Fat: models.Grams(16), Fiber: models.Grams(2),
		},
	}
}
