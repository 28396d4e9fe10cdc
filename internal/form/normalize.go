package form

import (
	"strings"

	"github.com/hammamikhairi/recipehaven/internal/domain"
)

// Normalize turns a validated draft into a persisted record: strings are
// trimmed, multi-line fields split into entries, a missing image replaced
// with placeholder, and id stamped.
func Normalize(d domain.Draft, id int64, placeholder string) domain.Recipe {
	image := strings.TrimSpace(d.Image)
	if image == "" {
		image = placeholder
	}
	return domain.Recipe{
		ID:           id,
		Title:        strings.TrimSpace(d.Title),
		Summary:      strings.TrimSpace(d.Summary),
		Image:        image,
		PrepTime:     strings.TrimSpace(d.PrepTime),
		Servings:     strings.TrimSpace(d.Servings),
		Difficulty:   domain.ParseDifficulty(d.Difficulty),
		Ingredients:  Lines(d.Ingredients),
		Instructions: Lines(d.Instructions),
	}
}
