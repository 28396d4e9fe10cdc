// Package form validates and normalizes recipe submission drafts.
package form

import (
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/recipehaven/internal/domain"
)

// Minimum content rules.
const (
	MinTitleLen   = 3
	MinSummaryLen = 10
	MinListItems  = 2
)

// Result is the outcome of validating a draft.
type Result struct {
	Errors domain.ErrorSet
	Valid  bool
	// Focus is the first invalid field in priority order. Only meaningful
	// when Valid is false; the presentation layer moves focus there.
	Focus domain.Field
}

// Validate checks a draft against the field rules. It never mutates the
// draft and returns identical results for identical input.
func Validate(d domain.Draft) Result {
	errs := domain.ErrorSet{}

	checkText(errs, domain.FieldTitle, d.Title, MinTitleLen,
		"Recipe title is required",
		"Title must be at least 3 characters long")
	checkText(errs, domain.FieldSummary, d.Summary, MinSummaryLen,
		"Recipe summary is required",
		"Summary must be at least 10 characters long")
	checkList(errs, domain.FieldIngredients, d.Ingredients,
		"Ingredients are required",
		"Please add at least 2 ingredients (one per line)")
	checkList(errs, domain.FieldInstructions, d.Instructions,
		"Preparation steps are required",
		"Please add at least 2 preparation steps (one per line)")
	checkText(errs, domain.FieldPrepTime, d.PrepTime, 0,
		"Preparation time is required", "")
	checkText(errs, domain.FieldServings, d.Servings, 0,
		"Number of servings is required", "")

	res := Result{Errors: errs, Valid: len(errs) == 0}
	if f, ok := errs.First(); ok {
		res.Focus = f
	}
	return res
}

func checkText(errs domain.ErrorSet, f domain.Field, raw string, minLen int, required, tooShort string) {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		errs[f] = required
	case utf8.RuneCountInString(v) < minLen:
		errs[f] = tooShort
	}
}

func checkList(errs domain.ErrorSet, f domain.Field, raw string, required, tooFew string) {
	if strings.TrimSpace(raw) == "" {
		errs[f] = required
		return
	}
	if len(Lines(raw)) < MinListItems {
		errs[f] = tooFew
	}
}

// Lines splits multi-line input into trimmed, non-blank entries.
func Lines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
