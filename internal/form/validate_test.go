package form

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipehaven/internal/domain"
)

func validDraft() domain.Draft {
	return domain.Draft{
		Title:        "Soup",
		Summary:      "A warm soup dish",
		Ingredients:  "Water\nSalt",
		Instructions: "Boil\nServe",
		PrepTime:     "10 min",
		Servings:     "2",
		Difficulty:   "Medium",
	}
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	res := Validate(validDraft())
	if !res.Valid {
		t.Fatalf("expected valid draft, got errors %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("expected empty error set, got %v", res.Errors)
	}
}

func TestValidateBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		field   domain.Field
		value   string
		wantErr string
	}{
		{"title empty", domain.FieldTitle, "", "Recipe title is required"},
		{"title blank", domain.FieldTitle, "   ", "Recipe title is required"},
		{"title two chars", domain.FieldTitle, "ab", "Title must be at least 3 characters long"},
		{"title padded two chars", domain.FieldTitle, "  ab  ", "Title must be at least 3 characters long"},
		{"title three chars", domain.FieldTitle, "abc", ""},
		{"title multibyte", domain.FieldTitle, "pâté", ""},
		{"summary empty", domain.FieldSummary, "", "Recipe summary is required"},
		{"summary nine chars", domain.FieldSummary, "123456789", "Summary must be at least 10 characters long"},
		{"summary ten chars", domain.FieldSummary, "1234567890", ""},
		{"ingredients empty", domain.FieldIngredients, "", "Ingredients are required"},
		{"ingredients one line", domain.FieldIngredients, "a", "Please add at least 2 ingredients (one per line)"},
		{"ingredients blank lines", domain.FieldIngredients, "a\n\n  \n", "Please add at least 2 ingredients (one per line)"},
		{"ingredients two lines", domain.FieldIngredients, "a\nb", ""},
		{"ingredients crlf", domain.FieldIngredients, "a\r\nb\r\n", ""},
		{"instructions empty", domain.FieldInstructions, "\n\n", "Preparation steps are required"},
		{"instructions one line", domain.FieldInstructions, "Boil", "Please add at least 2 preparation steps (one per line)"},
		{"instructions two lines", domain.FieldInstructions, "Boil\nServe", ""},
		{"prep time empty", domain.FieldPrepTime, " ", "Preparation time is required"},
		{"servings empty", domain.FieldServings, "", "Number of servings is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.Set(tt.field, tt.value)
			res := Validate(d)

			got := res.Errors[tt.field]
			if got != tt.wantErr {
				t.Fatalf("%s=%q: error %q, want %q", tt.field, tt.value, got, tt.wantErr)
			}
			if tt.wantErr == "" && !res.Valid {
				t.Fatalf("expected valid, got %v", res.Errors)
			}
			if tt.wantErr != "" && res.Focus != tt.field {
				t.Fatalf("focus = %s, want %s", res.Focus, tt.field)
			}
		})
	}
}

func TestValidateFocusPriority(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.Draft
		want  domain.Field
	}{
		{"everything empty", domain.NewDraft(), domain.FieldTitle},
		{"summary before servings", domain.Draft{Title: "Soup", Ingredients: "a\nb", Instructions: "a\nb", PrepTime: "1"}, domain.FieldSummary},
		{"ingredients before instructions", domain.Draft{Title: "Soup", Summary: "A warm soup dish", PrepTime: "1", Servings: "2"}, domain.FieldIngredients},
		{"servings last", domain.Draft{Title: "Soup", Summary: "A warm soup dish", Ingredients: "a\nb", Instructions: "a\nb", PrepTime: "1"}, domain.FieldServings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.draft)
			if res.Valid {
				t.Fatal("expected invalid draft")
			}
			if res.Focus != tt.want {
				t.Fatalf("focus = %s, want %s", res.Focus, tt.want)
			}
		})
	}
}

func TestValidateEmptyDraftFlagsAllRequiredFields(t *testing.T) {
	res := Validate(domain.NewDraft())
	want := []domain.Field{
		domain.FieldTitle,
		domain.FieldSummary,
		domain.FieldIngredients,
		domain.FieldInstructions,
		domain.FieldPrepTime,
		domain.FieldServings,
	}
	if diff := cmp.Diff(want, res.Errors.Fields()); diff != "" {
		t.Fatalf("error fields mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateIdempotent(t *testing.T) {
	d := domain.Draft{Title: "ab", Ingredients: "one"}
	first := Validate(d)
	second := Validate(d)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeat validation differs (-first +second):\n%s", diff)
	}
}

func TestValidateIgnoresOptionalFields(t *testing.T) {
	d := validDraft()
	d.Image = ""
	d.Difficulty = "Impossible"
	if res := Validate(d); !res.Valid {
		t.Fatalf("optional fields should not fail validation: %v", res.Errors)
	}
}

func TestLines(t *testing.T) {
	got := Lines("  400g spaghetti \n\n200g bacon\r\n   \n4 eggs")
	want := []string{"400g spaghetti", "200g bacon", "4 eggs"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Lines mismatch (-want +got):\n%s", diff)
	}
	if got := Lines(strings.Repeat("\n", 3)); len(got) != 0 {
		t.Fatalf("expected no lines, got %v", got)
	}
}
