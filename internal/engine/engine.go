// Package engine ties the recipe catalog, the submission form and the local
// collection together. The presentation layer only talks to the Engine.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hammamikhairi/recipehaven/internal/catalog"
	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/form"
	"github.com/hammamikhairi/recipehaven/internal/logger"
)

// Sink stores accepted submissions.
type Sink interface {
	Append(ctx context.Context, d domain.Draft) (domain.Recipe, error)
	List(ctx context.Context) []domain.Recipe
}

// Option configures the engine.
type Option func(*Engine)

// WithBackend replaces the default delay backend.
func WithBackend(b domain.Backend) Option {
	return func(e *Engine) {
		e.backend = b
	}
}

// WithNavigator sets who is told to go home after a successful submit.
func WithNavigator(n domain.Navigator) Option {
	return func(e *Engine) {
		e.nav = n
	}
}

// Engine serves the catalog and accepts submissions. It depends only on
// interfaces and is fully testable with fakes.
type Engine struct {
	recipes  domain.RecipeSource
	sink     Sink
	backend  domain.Backend
	nav      domain.Navigator
	log      *logger.Logger
	inFlight atomic.Bool
}

// Submission is the outcome of a submit attempt. Recipe is nil unless the
// draft was accepted.
type Submission struct {
	Result form.Result
	Recipe *domain.Recipe
}

// New creates an engine with the given dependencies and options.
func New(recipes domain.RecipeSource, sink Sink, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		recipes: recipes,
		sink:    sink,
		log:     log,
		backend: NewDelayBackend(DefaultDelay, log),
		nav:     nopNavigator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetNavigator swaps the navigator after construction. The UI is usually
// built after the engine it drives.
func (e *Engine) SetNavigator(n domain.Navigator) {
	if n == nil {
		n = nopNavigator{}
	}
	e.nav = n
}

// ListRecipes returns the catalog followed by local submissions. A catalog
// that can't be read is logged and treated as empty.
func (e *Engine) ListRecipes(ctx context.Context) []domain.Recipe {
	recipes, err := e.recipes.List(ctx)
	if err != nil {
		e.log.Error("listing catalog: %v", err)
		recipes = nil
	}
	local := e.sink.List(ctx)
	out := make([]domain.Recipe, 0, len(recipes)+len(local))
	out = append(out, recipes...)
	return append(out, local...)
}

// Search filters the merged listing by title.
func (e *Engine) Search(ctx context.Context, query string) []domain.Recipe {
	return catalog.Filter(e.ListRecipes(ctx), query)
}

// GetRecipe looks a recipe up in the catalog, then in local submissions.
func (e *Engine) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	r, err := e.recipes.Get(ctx, id)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		e.log.Warn("catalog lookup %d: %v", id, err)
	}
	for _, local := range e.sink.List(ctx) {
		if local.ID == id {
			return &local, nil
		}
	}
	return nil, fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
}

// Submitting reports whether a submission is in flight.
func (e *Engine) Submitting() bool {
	return e.inFlight.Load()
}

// Submit validates d, hands it to the backend, persists it locally and
// navigates home. An invalid draft returns a Submission carrying the error
// set and a nil error. Only one submission may be in flight at a time.
func (e *Engine) Submit(ctx context.Context, d domain.Draft) (*Submission, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrSubmitInFlight
	}
	defer e.inFlight.Store(false)

	ref := generateID()
	res := form.Validate(d)
	if !res.Valid {
		e.log.Debug("submission %s rejected: %d field errors, first %s", ref, len(res.Errors), res.Focus)
		return &Submission{Result: res}, nil
	}

	e.log.Debug("submission %s: sending %q to backend", ref, d.Title)
	if err := e.backend.Submit(ctx, d); err != nil {
		return nil, fmt.Errorf("submitting recipe: %w", err)
	}

	rec, err := e.sink.Append(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("saving recipe: %w", err)
	}

	e.log.Info("submission %s accepted as recipe %d", ref, rec.ID)
	e.nav.Navigate("/")
	return &Submission{Result: res, Recipe: &rec}, nil
}

type nopNavigator struct{}

func (nopNavigator) Navigate(string) {}
