// Package catalog loads the read-only recipe collection and derives
// filtered views of it.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/logger"
)

//go:embed data/recipes.json
var bundled []byte

// Compile-time interface check.
var _ domain.RecipeSource = (*Source)(nil)

// Source holds the catalog in memory. Safe for concurrent reads; Reload
// swaps the whole collection at once.
type Source struct {
	mu      sync.RWMutex
	recipes []domain.Recipe
	index   map[int64]int
	path    string
	log     *logger.Logger
}

// NewSource creates a catalog backed by the JSON file at path, or by the
// bundled collection when path is empty. A load failure is logged and
// leaves the catalog empty.
func NewSource(path string, log *logger.Logger) *Source {
	s := &Source{path: path, log: log}
	if err := s.Reload(); err != nil {
		s.log.Error("loading recipes: %v", err)
	}
	return s
}

// Path returns the backing file, or "" for the bundled collection.
func (s *Source) Path() string { return s.path }

// Reload reads the backing resource again. On failure the catalog is
// emptied and the error returned for logging.
func (s *Source) Reload() error {
	recipes, err := s.read()
	if err != nil {
		s.swap(nil)
		return err
	}
	s.swap(recipes)
	s.log.Info("loaded %d recipes from %s", len(recipes), s.origin())
	return nil
}

func (s *Source) origin() string {
	if s.path == "" {
		return "bundled data"
	}
	return s.path
}

func (s *Source) read() ([]domain.Recipe, error) {
	if s.path == "" {
		return Decode(bytes.NewReader(bundled))
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()
	recipes, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return recipes, nil
}

func (s *Source) swap(recipes []domain.Recipe) {
	index := make(map[int64]int, len(recipes))
	for i, r := range recipes {
		if _, dup := index[r.ID]; dup {
			s.log.Warn("duplicate recipe id %d (%q), keeping the first", r.ID, r.Title)
			continue
		}
		index[r.ID] = i
	}

	s.mu.Lock()
	s.recipes = recipes
	s.index = index
	s.mu.Unlock()
}

// Decode parses a JSON array of recipes.
func Decode(r io.Reader) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := json.NewDecoder(r).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("decoding recipes: %w", err)
	}
	return recipes, nil
}

// List returns a copy of every recipe in catalog order.
func (s *Source) List(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing recipes, count=%d", len(s.recipes))

	out := make([]domain.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out, nil
}

// Get returns a recipe by ID.
func (s *Source) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		s.log.Debug("recipe not found: %d", id)
		return nil, domain.ErrNotFound
	}
	r := s.recipes[i].Clone()
	return &r, nil
}
