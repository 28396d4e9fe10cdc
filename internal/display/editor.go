package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/form"
)

// formTips are shown under the submission form.
var formTips = []string{
	"Be specific with measurements and cooking times",
	"Break down complex steps into simple, easy-to-follow instructions",
	"Include helpful tips or variations if applicable",
	"Use a high-quality image that showcases your finished dish",
}

type fieldSpec struct {
	field       domain.Field
	label       string
	required    bool
	multiline   bool
	placeholder string
}

// formLayout is the on-screen order of the submission form.
var formLayout = []fieldSpec{
	{domain.FieldTitle, "Recipe Title", true, false, "e.g., Grandma's Chocolate Chip Cookies"},
	{domain.FieldSummary, "Recipe Summary", true, true, "A brief description of your recipe..."},
	{domain.FieldPrepTime, "Prep Time", true, false, "e.g., 30 minutes"},
	{domain.FieldServings, "Servings", true, false, "e.g., 4 people"},
	{domain.FieldDifficulty, "Difficulty Level", false, false, ""},
	{domain.FieldIngredients, "Ingredients (one per line)", true, true, "400g spaghetti\n200g bacon or pancetta\n4 large eggs"},
	{domain.FieldInstructions, "Preparation Steps (one per line)", true, true, "Bring a large pot of salted water to boil\nCook spaghetti according to package directions"},
	{domain.FieldImage, "Image URL (optional)", false, false, "https://example.com/your-recipe-image.jpg"},
}

// editor is the add-recipe form. Widget values mirror the draft in state;
// every edit goes through state.Set so a changed field drops its error.
type editor struct {
	state      *form.State
	inputs     map[domain.Field]textinput.Model
	areas      map[domain.Field]textarea.Model
	focus      int
	spinner    spinner.Model
	submitting bool
	failure    string
	width      int
}

func newEditor() *editor {
	e := &editor{
		state:  form.NewState(),
		inputs: make(map[domain.Field]textinput.Model),
		areas:  make(map[domain.Field]textarea.Model),
		width:  60,
	}
	for _, spec := range formLayout {
		switch {
		case spec.field == domain.FieldDifficulty:
		case spec.multiline:
			ta := textarea.New()
			ta.Placeholder = spec.placeholder
			ta.ShowLineNumbers = false
			ta.SetHeight(4)
			ta.SetWidth(e.width)
			ta.CharLimit = 4000
			e.areas[spec.field] = ta
		default:
			ti := textinput.New()
			ti.Placeholder = spec.placeholder
			ti.Prompt = ""
			ti.CharLimit = 300
			ti.Width = e.width
			e.inputs[spec.field] = ti
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = BannerStyle
	e.spinner = sp
	return e
}

func (e *editor) current() domain.Field {
	return formLayout[e.focus].field
}

// multiline reports whether the focused widget takes multi-line input.
func (e *editor) multiline() bool {
	return formLayout[e.focus].multiline
}

func (e *editor) setFocus(i int) tea.Cmd {
	n := len(formLayout)
	e.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for _, spec := range formLayout {
		f := spec.field
		if ti, ok := e.inputs[f]; ok {
			if f == e.current() {
				cmd = ti.Focus()
			} else {
				ti.Blur()
			}
			e.inputs[f] = ti
		}
		if ta, ok := e.areas[f]; ok {
			if f == e.current() {
				cmd = ta.Focus()
			} else {
				ta.Blur()
			}
			e.areas[f] = ta
		}
	}
	return cmd
}

func (e *editor) focusField(f domain.Field) tea.Cmd {
	for i, spec := range formLayout {
		if spec.field == f {
			return e.setFocus(i)
		}
	}
	return nil
}

func (e *editor) next() tea.Cmd { return e.setFocus(e.focus + 1) }
func (e *editor) prev() tea.Cmd { return e.setFocus(e.focus - 1) }

// cycleDifficulty moves the difficulty selection by step.
func (e *editor) cycleDifficulty(step int) {
	cur := domain.ParseDifficulty(e.state.Draft.Difficulty)
	idx := 0
	for i, d := range domain.Difficulties {
		if d == cur {
			idx = i
		}
	}
	n := len(domain.Difficulties)
	idx = ((idx+step)%n + n) % n
	e.state.Set(domain.FieldDifficulty, string(domain.Difficulties[idx]))
}

// update forwards msg to the focused widget and syncs its value.
func (e *editor) update(msg tea.Msg) tea.Cmd {
	f := e.current()
	var cmd tea.Cmd
	if ti, ok := e.inputs[f]; ok {
		ti, cmd = ti.Update(msg)
		e.inputs[f] = ti
		e.state.Set(f, ti.Value())
	}
	if ta, ok := e.areas[f]; ok {
		ta, cmd = ta.Update(msg)
		e.areas[f] = ta
		e.state.Set(f, ta.Value())
	}
	return cmd
}

// validate recomputes the error set and moves focus to the first invalid
// field. It reports whether the draft may be submitted.
func (e *editor) validate() (bool, tea.Cmd) {
	res := e.state.Validate()
	if res.Valid {
		return true, nil
	}
	return false, e.focusField(res.Focus)
}

// showErrors adopts an error set computed elsewhere.
func (e *editor) showErrors(res form.Result) tea.Cmd {
	e.state.Errors = res.Errors
	if res.Valid {
		return nil
	}
	return e.focusField(res.Focus)
}

// reset clears the draft and every widget.
func (e *editor) reset() tea.Cmd {
	e.state.Reset()
	e.failure = ""
	for f, ti := range e.inputs {
		ti.SetValue("")
		e.inputs[f] = ti
	}
	for f, ta := range e.areas {
		ta.Reset()
		e.areas[f] = ta
	}
	return e.setFocus(0)
}

func (e *editor) setWidth(w int) {
	if w <= 0 {
		return
	}
	e.width = w
	for f, ti := range e.inputs {
		ti.Width = w
		e.inputs[f] = ti
	}
	for f, ta := range e.areas {
		ta.SetWidth(w)
		e.areas[f] = ta
	}
}

func (e *editor) view() string {
	var b strings.Builder

	for i, spec := range formLayout {
		label := labelStyle
		marker := "  "
		if i == e.focus {
			label = focusedLabelStyle
			marker = promptStyle.Render("› ")
		}
		b.WriteString(marker + label.Render(spec.label))
		if spec.required {
			b.WriteString(requiredStyle.Render(" *"))
		}
		b.WriteByte('\n')

		switch {
		case spec.field == domain.FieldDifficulty:
			b.WriteString("  " + e.difficultyView(i == e.focus))
		case spec.multiline:
			ta := e.areas[spec.field]
			b.WriteString(indent(ta.View(), "  "))
		default:
			ti := e.inputs[spec.field]
			b.WriteString("  " + ti.View())
		}
		b.WriteByte('\n')

		if msg, ok := e.state.Errors[spec.field]; ok {
			b.WriteString("  " + errorStyle.Render(msg) + "\n")
		}
		b.WriteByte('\n')
	}

	switch {
	case e.submitting:
		b.WriteString("  " + e.spinner.View() + " " + secondaryStyle.Render("Submitting recipe...") + "\n")
	case e.failure != "":
		b.WriteString("  " + errorStyle.Render(e.failure) + "\n")
	default:
		b.WriteString("  " + secondaryStyle.Render("Press ctrl+s to submit your recipe") + "\n")
	}

	var tips strings.Builder
	tips.WriteString(headerStyle.Render("Tips for a Great Recipe"))
	for _, t := range formTips {
		tips.WriteString("\n✓ " + t)
	}
	b.WriteString("\n" + tipsStyle.Render(tips.String()) + "\n")
	return b.String()
}

func (e *editor) difficultyView(focused bool) string {
	cur := domain.ParseDifficulty(e.state.Draft.Difficulty)
	parts := make([]string, 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		if d == cur {
			parts = append(parts, badgeStyle.Render(string(d)))
		} else {
			parts = append(parts, secondaryStyle.Render(string(d)))
		}
	}
	out := strings.Join(parts, " ")
	if focused {
		out = promptStyle.Render("‹ ") + out + promptStyle.Render(" ›")
	}
	return out
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
