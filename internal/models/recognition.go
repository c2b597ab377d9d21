// ABOUTME: RecognitionResult and Confirmation models for the capture flow.
// ABOUTME: Results are transient; a Confirmation is what gets handed to the day log.
package models

// RecognitionResult is the output of one recognition attempt.
type RecognitionResult struct {
	FoodName      string       `json:"food_name"`
	Confidence    int          `json:"confidence"`
	Calories      int          `json:"calories"`
	Portion       string       `json:"portion"`
	MarginOfError int          `json:"margin_of_error"`
	Suggestions   []FoodRecord `json:"suggestions,omitempty"`
	// Food is the matched catalog entry, when there is one.
	Food *FoodRecord `json:"food,omitempty"`
}

// Confirmation builds the hand-off payload for a confirmed result.
func (r RecognitionResult) Confirmation() Confirmation {
	c := Confirmation{
		FoodName:   r.FoodName,
		Confidence: r.Confidence,
		Calories:   r.Calories,
		Portion:    r.Portion,
	}
	if r.Food != nil {
		f := r.Food.Clone()
		c.Food = &f
	}
	return c
}

// Confirmation is a user-confirmed recognition, ready to be logged.
type Confirmation struct {
	FoodName   string      `json:"food_name"`
	Confidence int         `json:"confidence"`
	Calories   int         `json:"calories"`
	Portion    string      `json:"portion"`
	Food       *FoodRecord `json:"food,omitempty"`
}
