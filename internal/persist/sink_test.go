package persist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/logger"
	"github.com/hammamikhairi/recipehaven/internal/storage"
)

func soupDraft() domain.Draft {
	return domain.Draft{
		Title:        "Soup",
		Summary:      "A warm soup dish",
		Ingredients:  "Water\nSalt",
		Instructions: "Boil\nServe",
		PrepTime:     "10 min",
		Servings:     "2",
		Difficulty:   "Medium",
	}
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

// failingKV returns the configured errors from Get and Put.
type failingKV struct {
	getErr error
	putErr error
	data   []byte
	puts   int
}

func (f *failingKV) Get(context.Context, string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data, nil
}

func (f *failingKV) Put(_ context.Context, _ string, v []byte) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.data = v
	return nil
}

func TestAppendPersistsNormalizedRecipe(t *testing.T) {
	kv := storage.NewMemoryKV(logger.Nop())
	sink := New(kv, logger.Nop(),
		WithClock(fixedClock(1700000000000)),
		WithPlaceholder("https://example.com/p.jpg"),
	)
	ctx := context.Background()

	rec, err := sink.Append(ctx, soupDraft())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if rec.ID != 1700000000000 {
		t.Fatalf("id = %d", rec.ID)
	}
	if rec.Image != "https://example.com/p.jpg" {
		t.Fatalf("image = %q", rec.Image)
	}

	raw, err := kv.Get(ctx, DefaultSlot)
	if err != nil {
		t.Fatalf("slot not written: %v", err)
	}
	var stored []domain.Recipe
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("slot is not a recipe list: %v", err)
	}
	if diff := cmp.Diff([]domain.Recipe{rec}, stored); diff != "" {
		t.Fatalf("stored collection mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendKeepsPriorRecordsAndUniqueIDs(t *testing.T) {
	kv := storage.NewMemoryKV(logger.Nop())
	sink := New(kv, logger.Nop(), WithClock(fixedClock(5000)))
	ctx := context.Background()

	first, err := sink.Append(ctx, soupDraft())
	if err != nil {
		t.Fatal(err)
	}
	second, err := sink.Append(ctx, soupDraft())
	if err != nil {
		t.Fatal(err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids not increasing with a frozen clock: %d then %d", first.ID, second.ID)
	}

	got := sink.List(ctx)
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("unexpected collection: %+v", got)
	}
}

func TestAppendRejectsInvalidDraft(t *testing.T) {
	kv := &failingKV{}
	sink := New(kv, logger.Nop())

	d := soupDraft()
	d.Summary = ""
	_, err := sink.Append(context.Background(), d)
	if !errors.Is(err, domain.ErrInvalidDraft) {
		t.Fatalf("expected ErrInvalidDraft, got %v", err)
	}
	if kv.puts != 0 {
		t.Fatal("invalid draft must not be written")
	}
}

func TestAppendDegradesOnBadPriorState(t *testing.T) {
	tests := []struct {
		name string
		kv   *failingKV
	}{
		{"store unavailable", &failingKV{getErr: errors.New("disk on fire")}},
		{"not json", &failingKV{data: []byte("<html>")}},
		{"wrong shape", &failingKV{data: []byte(`{"recipes": []}`)}},
		{"json null", &failingKV{data: []byte(`null`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := New(tt.kv, logger.Nop(), WithClock(fixedClock(1)))
			rec, err := sink.Append(context.Background(), soupDraft())
			if err != nil {
				t.Fatalf("append should degrade, got %v", err)
			}
			var stored []domain.Recipe
			if err := json.Unmarshal(tt.kv.data, &stored); err != nil {
				t.Fatalf("written value not a list: %v", err)
			}
			if len(stored) != 1 || stored[0].ID != rec.ID {
				t.Fatalf("expected collection of just the new record, got %+v", stored)
			}
		})
	}
}

func TestAppendWriteFailureStillSucceeds(t *testing.T) {
	kv := &failingKV{getErr: domain.ErrNotFound, putErr: errors.New("quota exceeded")}
	sink := New(kv, logger.Nop())

	rec, err := sink.Append(context.Background(), soupDraft())
	if err != nil {
		t.Fatalf("write failure must not block success, got %v", err)
	}
	if rec.Title != "Soup" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestConcurrentAppendsAreSerialized(t *testing.T) {
	kv := storage.NewMemoryKV(logger.Nop())
	sink := New(kv, logger.Nop(), WithClock(fixedClock(100)))
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := sink.Append(ctx, soupDraft()); err != nil {
				t.Errorf("append: %v", err)
			}
		}()
	}
	wg.Wait()

	got := sink.List(ctx)
	if len(got) != n {
		t.Fatalf("expected %d records, got %d (lost updates)", n, len(got))
	}
	seen := make(map[int64]bool)
	for _, r := range got {
		if seen[r.ID] {
			t.Fatalf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestWithSlot(t *testing.T) {
	kv := storage.NewMemoryKV(logger.Nop())
	sink := New(kv, logger.Nop(), WithSlot("mine"))
	ctx := context.Background()

	if _, err := sink.Append(ctx, soupDraft()); err != nil {
		t.Fatal(err)
	}
	if _, err := kv.Get(ctx, "mine"); err != nil {
		t.Fatalf("custom slot not written: %v", err)
	}
	if _, err := kv.Get(ctx, DefaultSlot); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("default slot should be untouched, got %v", err)
	}
}

func TestDefaultPlaceholder(t *testing.T) {
	sink := New(storage.NewMemoryKV(logger.Nop()), logger.Nop())
	rec, err := sink.Append(context.Background(), soupDraft())
	if err != nil {
		t.Fatal(err)
	}
	if rec.Image != DefaultPlaceholder {
		t.Fatalf("image = %q, want placeholder", rec.Image)
	}
}
