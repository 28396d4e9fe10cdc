// Package route maps navigation paths to pages.
package route

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Page identifies a screen.
type Page int

const (
	NotFound Page = iota
	Home
	Recipes
	Detail
	Add
	About
	Contact
)

func (p Page) String() string {
	switch p {
	case Home:
		return "home"
	case Recipes:
		return "recipes"
	case Detail:
		return "detail"
	case Add:
		return "add-recipe"
	case About:
		return "about"
	case Contact:
		return "contact"
	default:
		return "not-found"
	}
}

// Route is a parsed path.
type Route struct {
	Page     Page
	RecipeID int64 // only for Detail
	Path     string
}

type rule struct {
	regex *regexp.Regexp
	page  Page
}

var rules = []rule{
	{regexp.MustCompile(`^/$`), Home},
	{regexp.MustCompile(`(?i)^/recipes$`), Recipes},
	{regexp.MustCompile(`(?i)^/recipe/(\d+)$`), Detail},
	{regexp.MustCompile(`(?i)^/add-recipe$`), Add},
	{regexp.MustCompile(`(?i)^/about$`), About},
	{regexp.MustCompile(`(?i)^/contact$`), Contact},
}

// Parse resolves path. Empty paths mean home; a trailing slash and any
// query string are ignored.
func Parse(path string) Route {
	clean := strings.TrimSpace(path)
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	if clean == "" {
		clean = "/"
	}
	if !strings.HasPrefix(clean, "/") {
		clean = "/" + clean
	}
	if len(clean) > 1 {
		clean = strings.TrimRight(clean, "/")
		if clean == "" {
			clean = "/"
		}
	}

	for _, r := range rules {
		m := r.regex.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		rt := Route{Page: r.page, Path: clean}
		if r.page == Detail {
			id, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return Route{Page: NotFound, Path: clean}
			}
			rt.RecipeID = id
		}
		return rt
	}
	return Route{Page: NotFound, Path: clean}
}

// DetailPath returns the path of a recipe's detail page.
func DetailPath(id int64) string {
	return fmt.Sprintf("/recipe/%d", id)
}

// String returns the canonical path.
func (r Route) String() string {
	switch r.Page {
	case Home:
		return "/"
	case Recipes:
		return "/recipes"
	case Detail:
		return DetailPath(r.RecipeID)
	case Add:
		return "/add-recipe"
	case About:
		return "/about"
	case Contact:
		return "/contact"
	default:
		return r.Path
	}
}
