package display

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/engine"
	"github.com/hammamikhairi/recipehaven/internal/route"
)

// Messages.
type (
	navigateMsg   struct{ path string }
	refreshMsg    struct{}
	submitDoneMsg struct {
		sub *engine.Submission
		err error
	}
)

const successNotice = "Success! Your recipe has been submitted successfully."

type model struct {
	ctx  context.Context
	svc  Service
	keys keyMap
	help help.Model

	route route.Route
	back  route.Route

	width, height int

	// Home and Recipes.
	recipes []domain.Recipe
	cursor  int
	search  textinput.Model

	// Detail.
	detail   *domain.Recipe
	viewport viewport.Model

	form   *editor
	notice string
	status string
}

func newModel(ctx context.Context, svc Service) *model {
	ti := textinput.New()
	ti.Placeholder = "Search recipes..."
	ti.Prompt = "⌕ "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 100
	ti.Width = 40

	h := help.New()
	h.ShowAll = false

	m := &model{
		ctx:      ctx,
		svc:      svc,
		keys:     defaultKeyMap(),
		help:     h,
		search:   ti,
		viewport: viewport.New(80, 20),
		form:     newEditor(),
	}
	m.goTo(route.Parse("/"))
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("Recipe Haven"),
	)
}

func submitCmd(ctx context.Context, svc Service, d domain.Draft) tea.Cmd {
	return func() tea.Msg {
		sub, err := svc.Submit(ctx, d)
		return submitDoneMsg{sub: sub, err: err}
	}
}

// goTo switches page and loads whatever the page shows.
func (m *model) goTo(r route.Route) tea.Cmd {
	if r.Page != m.route.Page {
		m.back = m.route
	}
	m.route = r
	m.status = ""

	var cmd tea.Cmd
	m.search.Blur()
	switch r.Page {
	case route.Home:
		m.recipes = m.svc.ListRecipes(m.ctx)
		m.clampCursor()
	case route.Recipes:
		cmd = m.search.Focus()
		m.recipes = m.svc.Search(m.ctx, m.search.Value())
		m.clampCursor()
	case route.Detail:
		rec, err := m.svc.GetRecipe(m.ctx, r.RecipeID)
		if err != nil {
			m.detail = nil
			m.status = "Recipe not found"
			if !errors.Is(err, domain.ErrNotFound) {
				m.status = fmt.Sprintf("Could not load recipe: %v", err)
			}
			break
		}
		m.detail = rec
		m.viewport.SetContent(renderDetail(*rec, m.contentWidth()))
		m.viewport.GotoTop()
	case route.Add:
		cmd = m.form.setFocus(m.form.focus)
	}
	return cmd
}

// reload refreshes the current page after the catalog changed.
func (m *model) reload() {
	switch m.route.Page {
	case route.Home:
		m.recipes = m.svc.ListRecipes(m.ctx)
	case route.Recipes:
		m.recipes = m.svc.Search(m.ctx, m.search.Value())
	case route.Detail:
		if rec, err := m.svc.GetRecipe(m.ctx, m.route.RecipeID); err == nil {
			m.detail = rec
			m.viewport.SetContent(renderDetail(*rec, m.contentWidth()))
		}
	}
	m.clampCursor()
}

func (m *model) clampCursor() {
	if m.cursor >= len(m.recipes) {
		m.cursor = len(m.recipes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	return max(20, m.width-4)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(10, m.contentWidth()-4)
		m.form.setWidth(m.contentWidth() - 4)
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = max(5, msg.Height-6)
		if m.detail != nil {
			m.viewport.SetContent(renderDetail(*m.detail, m.contentWidth()))
		}
		return m, nil

	case navigateMsg:
		return m, m.goTo(route.Parse(msg.path))

	case refreshMsg:
		m.reload()
		return m, nil

	case submitDoneMsg:
		return m, m.finishSubmit(msg)

	case spinner.TickMsg:
		if !m.form.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.form.spinner, cmd = m.form.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.route.Page {
		case route.Recipes:
			return m, m.updateSearch(msg)
		case route.Add:
			return m, m.updateForm(msg)
		case route.Detail:
			return m, m.updateDetail(msg)
		case route.Home:
			return m, m.updateHome(msg)
		default:
			return m, m.updateStatic(msg)
		}
	}

	// Cursor blink and friends go to whatever has focus.
	var cmd tea.Cmd
	switch m.route.Page {
	case route.Recipes:
		m.search, cmd = m.search.Update(msg)
	case route.Add:
		cmd = m.form.update(msg)
	}
	return m, cmd
}

// globalNav handles the single-letter page shortcuts available wherever
// no text input has focus.
func (m *model) globalNav(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Browse):
		return m.goTo(route.Parse("/recipes")), true
	case key.Matches(msg, m.keys.Add):
		return m.goTo(route.Parse("/add-recipe")), true
	case key.Matches(msg, m.keys.About):
		return m.goTo(route.Parse("/about")), true
	case key.Matches(msg, m.keys.Contact):
		return m.goTo(route.Parse("/contact")), true
	case key.Matches(msg, m.keys.Home):
		return m.goTo(route.Parse("/")), true
	}
	return nil, false
}

func (m *model) updateHome(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
		return nil
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return nil
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	}
	cmd, _ := m.globalNav(msg)
	return cmd
}

func (m *model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyUp:
		m.cursor--
		m.clampCursor()
		return nil
	case tea.KeyDown:
		m.cursor++
		m.clampCursor()
		return nil
	case tea.KeyEnter:
		return m.openSelected()
	case tea.KeyEsc:
		return m.goTo(route.Parse("/"))
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != before {
		m.recipes = m.svc.Search(m.ctx, q)
		m.cursor = 0
	}
	return cmd
}

func (m *model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Back) || msg.Type == tea.KeyBackspace {
		back := m.back
		if back.Page == route.Detail || back.Page == route.NotFound {
			back = route.Parse("/")
		}
		return m.goTo(back)
	}
	if cmd, ok := m.globalNav(msg); ok {
		return cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *model) updateStatic(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Back) {
		return m.goTo(route.Parse("/"))
	}
	cmd, _ := m.globalNav(msg)
	return cmd
}

func (m *model) updateForm(msg tea.KeyMsg) tea.Cmd {
	f := m.form
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.goTo(route.Parse("/"))
	case key.Matches(msg, m.keys.Submit):
		return m.startSubmit()
	case key.Matches(msg, m.keys.Next):
		return f.next()
	case key.Matches(msg, m.keys.Prev):
		return f.prev()
	}

	if f.current() == domain.FieldDifficulty {
		switch {
		case key.Matches(msg, m.keys.Left):
			f.cycleDifficulty(-1)
		case key.Matches(msg, m.keys.Right), msg.Type == tea.KeySpace:
			f.cycleDifficulty(1)
		case msg.Type == tea.KeyEnter:
			return f.next()
		}
		return nil
	}
	if msg.Type == tea.KeyEnter && !f.multiline() {
		return f.next()
	}
	return f.update(msg)
}

// startSubmit validates locally and, if the draft passes, hands it to the
// engine. The trigger does nothing while a submission is running.
func (m *model) startSubmit() tea.Cmd {
	f := m.form
	if f.submitting || m.svc.Submitting() {
		return nil
	}
	f.failure = ""
	if ok, cmd := f.validate(); !ok {
		return cmd
	}
	f.submitting = true
	return tea.Batch(f.spinner.Tick, submitCmd(m.ctx, m.svc, f.state.Draft))
}

func (m *model) finishSubmit(msg submitDoneMsg) tea.Cmd {
	f := m.form
	f.submitting = false
	switch {
	case errors.Is(msg.err, domain.ErrSubmitInFlight):
		return nil
	case msg.err != nil:
		f.failure = fmt.Sprintf("Could not submit your recipe: %v", msg.err)
		return nil
	case msg.sub == nil:
		return nil
	case !msg.sub.Result.Valid:
		return f.showErrors(msg.sub.Result)
	}

	m.notice = successNotice
	cmd := f.reset()
	if m.route.Page == route.Home {
		m.recipes = m.svc.ListRecipes(m.ctx)
	}
	return cmd
}

func (m *model) openSelected() tea.Cmd {
	if len(m.recipes) == 0 {
		return nil
	}
	return m.goTo(route.Parse(route.DetailPath(m.recipes[m.cursor].ID)))
}

// ── View ─────────────────────────────────────────────────────────

func (m *model) View() string {
	var b strings.Builder

	switch m.route.Page {
	case route.Home:
		b.WriteString(RenderBanner())
		b.WriteString(subtitleStyle.Render("  Discover, cook and share delicious recipes from around the world") + "\n\n")
		if m.notice != "" {
			b.WriteString(successStyle.Render(m.notice) + "\n\n")
		}
		b.WriteString(headerStyle.Render("  Our Recipe Collection") + "\n\n")
		b.WriteString(m.listView(m.height - 14))
		b.WriteString("\n" + m.help.ShortHelpView(m.keys.browseHelp()))

	case route.Recipes:
		b.WriteString(headerStyle.Render("  All Recipes") + "\n")
		b.WriteString(subtitleStyle.Render("  Browse our complete collection of delicious recipes") + "\n\n")
		b.WriteString("  " + m.search.View() + "\n\n")
		if len(m.recipes) == 0 {
			b.WriteString(secondaryStyle.Render(fmt.Sprintf("  No recipes match %q", m.search.Value())) + "\n")
		} else {
			b.WriteString(m.listView(m.height - 8))
		}
		b.WriteString("\n" + m.help.ShortHelpView(m.keys.searchHelp()))

	case route.Detail:
		if m.detail == nil {
			b.WriteString(errorStyle.Render("  "+m.status) + "\n\n")
		} else {
			b.WriteString(m.viewport.View() + "\n")
		}
		b.WriteString("\n" + m.help.ShortHelpView(m.keys.pageHelp()))

	case route.Add:
		b.WriteString(headerStyle.Render("  Share Your Recipe") + "\n")
		b.WriteString(subtitleStyle.Render("  Inspire others with your culinary creations!") + "\n\n")
		b.WriteString(m.form.view())
		b.WriteString("\n" + m.help.ShortHelpView(m.keys.formHelp()))

	case route.About:
		b.WriteString(aboutText())
		b.WriteString("\n" + m.help.ShortHelpView(m.keys.pageHelp()))

	case route.Contact:
		b.WriteString(contactText())
		b.WriteString("\n" + m.help.ShortHelpView(m.keys.pageHelp()))

	default:
		b.WriteString(errorStyle.Render(fmt.Sprintf("  Page not found: %s", m.route.Path)) + "\n")
		b.WriteString("\n" + m.help.ShortHelpView(m.keys.pageHelp()))
	}
	return b.String()
}

// listView renders recipe cards around the cursor, at most rows lines.
func (m *model) listView(rows int) string {
	if len(m.recipes) == 0 {
		return secondaryStyle.Render("  No recipes yet.") + "\n"
	}
	const perCard = 3
	visible := len(m.recipes)
	if rows > 0 {
		visible = max(1, rows/perCard)
	}
	start, end := window(m.cursor, len(m.recipes), visible)

	w := m.contentWidth() - 4
	var b strings.Builder
	for i := start; i < end; i++ {
		r := m.recipes[i]
		title := titleStyle.Render(r.Title)
		marker := "  "
		if i == m.cursor {
			title = selectedTitleStyle.Render(" " + r.Title + " ")
			marker = promptStyle.Render("▸ ")
		}
		b.WriteString(marker + title + "  " + secondaryStyle.Render(cardMeta(r)) + "\n")
		b.WriteString("    " + primaryStyle.Render(runewidth.Truncate(r.Summary, w, "…")) + "\n\n")
	}
	if end < len(m.recipes) || start > 0 {
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.recipes))) + "\n")
	}
	return b.String()
}

// window returns the [start, end) slice of n items of size at most size
// that keeps cursor in view.
func window(cursor, n, size int) (int, int) {
	if size >= n {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}

func aboutText() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("  About Recipe Haven") + "\n")
	b.WriteString(subtitleStyle.Render("  Sharing the joy of cooking, one recipe at a time") + "\n\n")
	b.WriteString(titleStyle.Render("  Our Story") + "\n")
	b.WriteString(primaryStyle.Render("  Recipe Haven was born from a simple idea: everyone has a recipe worth sharing.") + "\n")
	b.WriteString(primaryStyle.Render("  Whether it's a family secret or your own fusion creation, every dish tells a story.") + "\n\n")
	b.WriteString(titleStyle.Render("  Our Mission") + "\n")
	for _, item := range [][2]string{
		{"Inspire Creativity", "Encourage home cooks to experiment, create, and share their culinary masterpieces."},
		{"Build Community", "Connect people through their love of food and cooking."},
		{"Preserve Traditions", "Keep family recipes and cultural culinary heritage alive for future generations."},
	} {
		b.WriteString("  " + labelStyle.Render(item[0]) + "\n")
		b.WriteString("    " + secondaryStyle.Render(item[1]) + "\n")
	}
	return b.String()
}

func contactText() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("  Get in Touch") + "\n")
	b.WriteString(subtitleStyle.Render("  We'd love to hear from you!") + "\n\n")
	for _, item := range [][2]string{
		{"Email Us", "hello@recipehaven.com"},
		{"Call Us", "+1 (555) 123-4567"},
		{"Visit Us", "123 Culinary Street, Food City, FC 12345"},
		{"Hours", "Mon-Fri: 9AM - 6PM"},
	} {
		b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%-9s", item[0])) + " " + primaryStyle.Render(item[1]) + "\n")
	}
	return b.String()
}
