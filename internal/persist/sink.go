// Package persist appends accepted recipe submissions to a collection kept
// in a key-value slot.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/form"
	"github.com/hammamikhairi/recipehaven/internal/logger"
)

const (
	// DefaultSlot is the key holding the collection.
	DefaultSlot = "recipes"
	// DefaultPlaceholder is stored as the image of drafts without one.
	DefaultPlaceholder = "https://via.placeholder.com/400x300?text=Recipe+Image"
)

// Option configures the Sink.
type Option func(*Sink)

// WithSlot sets the key the collection is stored under.
func WithSlot(slot string) Option {
	return func(s *Sink) {
		s.slot = slot
	}
}

// WithPlaceholder sets the image URL stored for drafts without one.
func WithPlaceholder(url string) Option {
	return func(s *Sink) {
		s.placeholder = url
	}
}

// WithClock replaces time.Now for id stamping.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		s.now = now
	}
}

// Sink is the single writer for the local collection. Appends from
// one process are serialized; the store itself offers no atomic
// read-modify-write, so separate processes remain last-writer-wins.
type Sink struct {
	mu          sync.Mutex
	kv          domain.KV
	log         *logger.Logger
	slot        string
	placeholder string
	now         func() time.Time
}

// New creates a sink writing to kv.
func New(kv domain.KV, log *logger.Logger, opts ...Option) *Sink {
	s := &Sink{
		kv:          kv,
		log:         log,
		slot:        DefaultSlot,
		placeholder: DefaultPlaceholder,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append normalizes d and appends it to the stored collection. Drafts that
// fail validation are rejected with domain.ErrInvalidDraft. An unreadable
// or corrupt collection is treated as empty, and a failed write is logged
// without failing the call: the returned recipe is what was accepted.
func (s *Sink) Append(ctx context.Context, d domain.Draft) (domain.Recipe, error) {
	if res := form.Validate(d); !res.Valid {
		return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrInvalidDraft, res.Errors[res.Focus])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prior := s.load(ctx)
	rec := form.Normalize(d, nextID(prior, s.now()), s.placeholder)

	data, err := json.Marshal(append(prior, rec))
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("encoding collection: %w", err)
	}
	if err := s.kv.Put(ctx, s.slot, data); err != nil {
		s.log.Error("writing collection %q: %v", s.slot, err)
	} else {
		s.log.Info("saved recipe %d %q (%d in collection)", rec.ID, rec.Title, len(prior)+1)
	}
	return rec, nil
}

// List returns the stored collection, or an empty one when it can't be
// read.
func (s *Sink) List(ctx context.Context) []domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// load must be called with s.mu held.
func (s *Sink) load(ctx context.Context) []domain.Recipe {
	data, err := s.kv.Get(ctx, s.slot)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.Recipe{}
	}
	if err != nil {
		s.log.Warn("reading collection %q, starting empty: %v", s.slot, err)
		return []domain.Recipe{}
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		s.log.Warn("%v (slot %q), starting empty: %v", domain.ErrSlotCorrupt, s.slot, err)
		return []domain.Recipe{}
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes
}

// nextID derives an id from the clock in Unix milliseconds, bumped past
// any id already in the collection.
func nextID(prior []domain.Recipe, now time.Time) int64 {
	id := now.UnixMilli()
	for _, r := range prior {
		if r.ID >= id {
			id = r.ID + 1
		}
	}
	return id
}
