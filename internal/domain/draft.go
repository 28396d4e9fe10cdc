package domain

// Field names one input of the recipe submission form.
type Field int

const (
	FieldTitle Field = iota
	FieldSummary
	FieldIngredients
	FieldInstructions
	FieldPrepTime
	FieldServings
	FieldDifficulty
	FieldImage
)

// ValidatedFields lists the fields that carry validation rules, in the
// order used to pick the first invalid field.
var ValidatedFields = []Field{
	FieldTitle,
	FieldSummary,
	FieldIngredients,
	FieldInstructions,
	FieldPrepTime,
	FieldServings,
}

// String returns the form name of the field.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldSummary:
		return "summary"
	case FieldIngredients:
		return "ingredients"
	case FieldInstructions:
		return "instructions"
	case FieldPrepTime:
		return "prepTime"
	case FieldServings:
		return "servings"
	case FieldDifficulty:
		return "difficulty"
	case FieldImage:
		return "image"
	default:
		return "unknown"
	}
}

// Draft is the raw, unvalidated state of a recipe submission. Ingredients
// and Instructions hold one entry per line.
type Draft struct {
	Title        string
	Summary      string
	Ingredients  string
	Instructions string
	PrepTime     string
	Servings     string
	Difficulty   string
	Image        string
}

// NewDraft returns an empty draft with the default difficulty selected.
func NewDraft() Draft {
	return Draft{Difficulty: string(DifficultyMedium)}
}

// Get returns the raw value of a field.
func (d *Draft) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldSummary:
		return d.Summary
	case FieldIngredients:
		return d.Ingredients
	case FieldInstructions:
		return d.Instructions
	case FieldPrepTime:
		return d.PrepTime
	case FieldServings:
		return d.Servings
	case FieldDifficulty:
		return d.Difficulty
	case FieldImage:
		return d.Image
	}
	return ""
}

// Set replaces the raw value of a field.
func (d *Draft) Set(f Field, v string) {
	switch f {
	case FieldTitle:
		d.Title = v
	case FieldSummary:
		d.Summary = v
	case FieldIngredients:
		d.Ingredients = v
	case FieldInstructions:
		d.Instructions = v
	case FieldPrepTime:
		d.PrepTime = v
	case FieldServings:
		d.Servings = v
	case FieldDifficulty:
		d.Difficulty = v
	case FieldImage:
		d.Image = v
	}
}

// ErrorSet maps a field to a human-readable validation message.
type ErrorSet map[Field]string

// Has reports whether f has a message.
func (e ErrorSet) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Fields returns the fields with messages, in validation priority order.
func (e ErrorSet) Fields() []Field {
	var out []Field
	for _, f := range ValidatedFields {
		if e.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// First returns the highest-priority field with a message.
func (e ErrorSet) First() (Field, bool) {
	for _, f := range ValidatedFields {
		if e.Has(f) {
			return f, true
		}
	}
	return 0, false
}
