// ABOUTME: UserProfile and Achievement models for the profile view.
// ABOUTME: Activity level enum and initials helper.
package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ActivityLevel describes how active the user is.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// AllActivityLevels returns all valid activity levels.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, l := range AllActivityLevels {
		if string(l) == s {
			return true
		}
	}
	return false
}

// UserProfile holds the user's settings. Weight is in lbs, height in inches.
type UserProfile struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	Email         string         `json:"email" yaml:"email"`
	CalorieGoal   int            `json:"calorie_goal" yaml:"calorie_goal"`
	Weight        *float64       `json:"weight,omitempty" yaml:"weight,omitempty"`
	Height        *float64       `json:"height,omitempty" yaml:"height,omitempty"`
	Age           *int           `json:"age,omitempty" yaml:"age,omitempty"`
	ActivityLevel *ActivityLevel `json:"activity_level,omitempty" yaml:"activity_level,omitempty"`
}

// Initials returns the upper-cased first letter of each word of the name.
func (u UserProfile) Initials() string {
	var sb strings.Builder
	for _, word := range strings.Fields(u.Name) {
		r, _ := utf8.DecodeRuneInString(word)
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}

// Clone returns a deep copy.
func (u UserProfile) Clone() UserProfile {
	c := u
	if u.Weight != nil {
		v := *u.Weight
		c.Weight = &v
	}
	if u.Height != nil {
		v := *u.Height
		c.Height = &v
	}
	if u.Age != nil {
		v := *u.Age
		c.Age = &v
	}
	if u.ActivityLevel != nil {
		v := *u.ActivityLevel
		c.ActivityLevel = &v
	}
	return c
}

// Achievement is a badge shown on the profile view.
type Achievement struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Icon   string `json:"icon" yaml:"icon"`
	Earned bool   `json:"earned" yaml:"earned"`
}
