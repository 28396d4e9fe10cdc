package catalog

import (
	"strings"

	"github.com/hammamikhairi/recipehaven/internal/domain"
)

// Filter returns the recipes whose title contains query, compared
// case-insensitively, in their original order. An empty query returns
// recipes as given. A nil slice yields an empty, non-nil result.
func Filter(recipes []domain.Recipe, query string) []domain.Recipe {
	if recipes == nil {
		return []domain.Recipe{}
	}
	if query == "" {
		return recipes
	}

	q := strings.ToLower(query)
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Title), q) {
			out = append(out, r)
		}
	}
	return out
}
