// Package domain defines the core types and interfaces for the recipe catalog.
// All other packages depend on domain; domain depends on nothing.
package domain

import "strings"

// Difficulty is the self-reported effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the selectable levels in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty matches s case-insensitively against the known levels.
// Anything else, including the empty string, maps to DifficultyMedium.
func ParseDifficulty(s string) Difficulty {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) {
			return d
		}
	}
	return DifficultyMedium
}

// Recipe is one shareable dish. The JSON shape matches both the bundled
// catalog file and the locally persisted collection.
type Recipe struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	Image        string     `json:"image"`
	PrepTime     string     `json:"prepTime,omitempty"`
	Servings     string     `json:"servings,omitempty"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	Ingredients  []string   `json:"ingredients,omitempty"`
	Instructions []string   `json:"instructions,omitempty"`
	Tips         string     `json:"tips,omitempty"`
}

// Clone returns a deep copy so callers can't mutate shared slices.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	out.Instructions = append([]string(nil), r.Instructions...)
	return out
}
