// Package display provides the terminal UI using Bubble Tea, plus the
// plain renderers used by the one-shot command-line modes.
//
// The [UI] type owns the Bubble Tea program. Other goroutines drive it
// through [UI.Navigate] and [UI.Refresh], which post messages into the
// event loop so the model is only ever touched from Update.
package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/engine"
	"github.com/hammamikhairi/recipehaven/internal/logger"
)

// Display defaults for recipes that omit optional fields.
const (
	cardPrepTime   = "30 min"
	cardServings   = "4 servings"
	detailPrepTime = "30 minutes"
	detailServings = "4 people"
)

// Service is what the UI needs from the engine.
type Service interface {
	ListRecipes(ctx context.Context) []domain.Recipe
	Search(ctx context.Context, query string) []domain.Recipe
	GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error)
	Submit(ctx context.Context, d domain.Draft) (*engine.Submission, error)
	Submitting() bool
}

// Compile-time interface checks.
var (
	_ Service          = (*engine.Engine)(nil)
	_ domain.Navigator = (*UI)(nil)
)

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Navigate and Refresh are safe
// to call from any goroutine; before Run starts or after it returns they
// are dropped.
type UI struct {
	svc     Service
	log     *logger.Logger
	program atomic.Pointer[tea.Program]
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(svc Service, log *logger.Logger) *UI {
	return &UI{svc: svc, log: log}
}

// Navigate moves the UI to path, e.g. "/" or "/recipe/3".
func (u *UI) Navigate(path string) {
	u.log.Debug("navigate %s", path)
	u.send(navigateMsg{path: path})
}

// Refresh reloads the recipes shown on the current page.
func (u *UI) Refresh() {
	u.send(refreshMsg{})
}

func (u *UI) send(msg tea.Msg) {
	if p := u.program.Load(); p != nil && !u.done.Load() {
		p.Send(msg)
	}
}

// Run starts the Bubble Tea event loop. Blocks until the user quits or
// ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	p := tea.NewProgram(newModel(ctx, u.svc),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	u.program.Store(p)

	_, err := p.Run()
	u.done.Store(true)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// ── Plain renderers ──────────────────────────────────────────────

// PrintRecipeList writes one card per recipe.
func PrintRecipeList(w io.Writer, recipes []domain.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, secondaryStyle.Render("No recipes found."))
		return
	}
	for _, r := range recipes {
		body := titleStyle.Render(r.Title) + "\n" +
			primaryStyle.Render(r.Summary) + "\n" +
			secondaryStyle.Render(fmt.Sprintf("#%d · %s", r.ID, cardMeta(r)))
		fmt.Fprintln(w, cardStyle.Width(72).Render(body))
	}
}

// PrintRecipe writes the full detail view of r.
func PrintRecipe(w io.Writer, r domain.Recipe) {
	fmt.Fprintln(w, renderDetail(r, 76))
}

// PrintErrors writes an error set in validation priority order.
func PrintErrors(w io.Writer, errs domain.ErrorSet) {
	for _, f := range errs.Fields() {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render(f.String()+":"), errs[f])
	}
}

// cardMeta is the one-line summary shown under a card title.
func cardMeta(r domain.Recipe) string {
	prep := orDefault(r.PrepTime, cardPrepTime)
	serv := orDefault(r.Servings, cardServings)
	return fmt.Sprintf("⏱ %s · 🍽 %s", prep, serv)
}

func renderDetail(r domain.Recipe, width int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(width)

	b.WriteString(headerStyle.Render(r.Title) + "\n\n")
	b.WriteString(wrap.Inherit(primaryStyle).Render(r.Summary) + "\n\n")

	diff := string(domain.DifficultyMedium)
	if r.Difficulty != "" {
		diff = string(r.Difficulty)
	}
	b.WriteString(badgeStyle.Render("Prep Time: "+orDefault(r.PrepTime, detailPrepTime)) + " ")
	b.WriteString(badgeStyle.Render("Servings: "+orDefault(r.Servings, detailServings)) + " ")
	b.WriteString(badgeStyle.Render("Difficulty: "+diff) + "\n")
	if r.Image != "" {
		b.WriteString(secondaryStyle.Render(r.Image) + "\n")
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("\n" + titleStyle.Render("Ingredients") + "\n")
		for _, ing := range r.Ingredients {
			b.WriteString(wrap.Inherit(primaryStyle).Render("• "+ing) + "\n")
		}
	}
	if len(r.Instructions) > 0 {
		b.WriteString("\n" + titleStyle.Render("Instructions") + "\n")
		for i, step := range r.Instructions {
			b.WriteString(wrap.Inherit(primaryStyle).Render(fmt.Sprintf("%d. %s", i+1, step)) + "\n")
		}
	}
	if strings.TrimSpace(r.Tips) != "" {
		b.WriteString("\n" + tipsStyle.Width(width-2).Render(headerStyle.Render("Chef's Tips")+"\n"+r.Tips) + "\n")
	}
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
