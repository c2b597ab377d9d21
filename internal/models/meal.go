// ABOUTME: MealRecord model and MealType buckets for logged food.
// ABOUTME: Meal type is assigned from the time of day at confirmation.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MealType is the meal bucket a logged food belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes lists meal types in display order.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// ClassifyMealType buckets a timestamp by its hour in t's own location.
func ClassifyMealType(t time.Time) MealType {
	hour := t.Hour()
	switch {
	case hour < 11:
		return MealBreakfast
	case hour < 15:
		return MealLunch
	case hour < 18:
		return MealSnack
	default:
		return MealDinner
	}
}

// MealRecord is one logged instance of a food. The food is embedded by value.
type MealRecord struct {
	ID         string     `json:"id" yaml:"id"`
	Food       FoodRecord `json:"food" yaml:"food"`
	Timestamp  time.Time  `json:"timestamp" yaml:"timestamp"`
	MealType   MealType   `json:"meal_type" yaml:"meal_type"`
	Confidence *int       `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// NewMealRecord creates a MealRecord with a generated UUID, classified by timestamp.
func NewMealRecord(food FoodRecord, at time.Time) *MealRecord {
	return &MealRecord{
		ID:        uuid.New().String(),
		Food:      food.Clone(),
		Timestamp: at,
		MealType:  ClassifyMealType(at),
	}
}

// WithConfidence sets the recognition confidence.
func (m *MealRecord) WithConfidence(confidence int) *MealRecord {
	m.Confidence = &confidence
	return m
}

// WithMealType overrides the time-of-day classification.
func (m *MealRecord) WithMealType(mt MealType) *MealRecord {
	m.MealType = mt
	return m
}

// ShortID returns the 8-character display prefix of the ID.
func (m MealRecord) ShortID() string {
	if len(m.ID) <= 8 {
		return m.ID
	}
	return m.ID[:8]
}

// Clone returns a deep copy.
func (m MealRecord) Clone() MealRecord {
	c := m
	c.Food = m.Food.Clone()
	if m.Confidence != nil {
		v := *m.Confidence
		c.Confidence = &v
	}
	return c
}
