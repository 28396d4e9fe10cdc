package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipehaven/internal/domain"
)

func sample() []domain.Recipe {
	return []domain.Recipe{
		{ID: 1, Title: "Spaghetti Carbonara"},
		{ID: 2, Title: "Chicken Tikka Masala"},
		{ID: 3, Title: "Classic Pancakes"},
		{ID: 4, Title: "Chicken Noodle Soup"},
	}
}

func ids(recipes []domain.Recipe) []int64 {
	out := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3, 4}},
		{"chicken", []int64{2, 4}},
		{"CHICKEN", []int64{2, 4}},
		{"an", []int64{3}},
		{"a", []int64{1, 2, 3}},
		{"soup", []int64{4}},
		{"sushi", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ids(Filter(sample(), tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFilterEmptyQueryReturnsInput(t *testing.T) {
	in := sample()
	if diff := cmp.Diff(in, Filter(in, "")); diff != "" {
		t.Fatalf("empty query changed the list (-want +got):\n%s", diff)
	}
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	in := sample()
	for _, q := range []string{"", "c", "o", "chicken", "zzz", " "} {
		got := Filter(in, q)
		j := 0
		for _, r := range got {
			for j < len(in) && in[j].ID != r.ID {
				j++
			}
			if j == len(in) {
				t.Fatalf("Filter(%q) is not an ordered subsequence: %v", q, ids(got))
			}
			j++
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	in := sample()
	first := Filter(in, "ch")
	second := Filter(in, "ch")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeat filter differs (-first +second):\n%s", diff)
	}
}

func TestFilterNil(t *testing.T) {
	got := Filter(nil, "anything")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
