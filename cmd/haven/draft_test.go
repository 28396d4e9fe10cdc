package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipehaven/internal/domain"
)

func TestParseDraft(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want domain.Draft
	}{
		{
			name: "block scalars",
			yaml: `
title: Soup
summary: A warm soup dish
ingredients: |
  Water
  Salt
instructions: |
  Boil
  Serve
prepTime: 10 min
servings: "2"
`,
			want: domain.Draft{
				Title:        "Soup",
				Summary:      "A warm soup dish",
				Ingredients:  "Water\nSalt\n",
				Instructions: "Boil\nServe\n",
				PrepTime:     "10 min",
				Servings:     "2",
				Difficulty:   "Medium",
			},
		},
		{
			name: "sequences and difficulty",
			yaml: `
title: Tea
ingredients: [Water, Leaves]
instructions:
  - Boil
  - Steep
difficulty: Easy
servings: 1
`,
			want: domain.Draft{
				Title:        "Tea",
				Ingredients:  "Water\nLeaves",
				Instructions: "Boil\nSteep",
				Servings:     "1",
				Difficulty:   "Easy",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDraft([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("draft mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDraftRejectsMappingForList(t *testing.T) {
	if _, err := parseDraft([]byte("ingredients:\n  a: b\n")); err == nil {
		t.Fatal("expected error for a mapping where a list belongs")
	}
}
