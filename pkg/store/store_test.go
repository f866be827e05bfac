package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string       { return t.path }
func (t testConfig) QuestionsURL() string   { return "" }
func (t testConfig) AnalyticsEnabled() bool { return false }
func (t testConfig) ShowDisable() bool      { return false }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func stamped(id string, at time.Time) *mood.Entry {
	return &mood.Entry{
		ID:        id,
		CreatedAt: at.UTC().Format(time.RFC3339),
		Rating:    mood.RatingNeutral,
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	e := stamped("abc", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	e.Message = "sunny"
	e.Tags = []mood.TagReference{{ID: "t1", Title: "work"}}
	if err := p.Create(e); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := p.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Message != "sunny" || len(got.Tags) != 1 || got.Tags[0].Title != "work" {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestAllReturnsCreationOrder(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// Store out of order across two month buckets.
	for _, offset := range []int{40, 0, 20} {
		e := stamped(fmt.Sprintf("e%02d", offset), base.AddDate(0, 0, offset))
		if err := p.Create(e); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all := p.All(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Created().Before(all[i-1].Created()) {
			t.Fatalf("entries out of creation order: %v before %v", all[i].CreatedAt, all[i-1].CreatedAt)
		}
	}
	if p.Count(ctx) != 3 {
		t.Fatalf("count = %d", p.Count(ctx))
	}
}

func TestUpdateRequiresExistingEntry(t *testing.T) {
	p := load(t)

	missing := stamped("ghost", time.Now())
	if err := p.Update(missing); err == nil {
		t.Fatal("expected update of unknown entry to fail")
	}

	e := stamped("real", time.Now())
	if err := p.Create(e); err != nil {
		t.Fatalf("create: %v", err)
	}
	e.Message = "edited"
	if err := p.Update(e); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := p.Get(context.Background(), "real")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Message != "edited" {
		t.Fatalf("update not persisted: %q", got.Message)
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	e := stamped("gone", time.Now())
	if err := p.Create(e); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := p.Delete(ctx, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get(ctx, "gone"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := p.Delete(ctx, "gone"); err != ErrNotFound {
		t.Fatalf("second delete expected ErrNotFound, got %v", err)
	}
}

func TestWatchEmitsOnStore(t *testing.T) {
	p := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Create(stamped("watched", time.Now())); err != nil {
		t.Fatalf("create: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}
