package mood

import (
	"testing"
	"time"
)

func TestScaleIsOrdered(t *testing.T) {
	prev := -1
	for _, r := range Scale() {
		if !r.Valid() {
			t.Fatalf("scale value %q not valid", r)
		}
		if r.Index() <= prev {
			t.Fatalf("scale out of order at %q: index %d after %d", r, r.Index(), prev)
		}
		prev = r.Index()
	}
	if RatingUnset.Index() != -1 {
		t.Fatalf("unset rating should have index -1, got %d", RatingUnset.Index())
	}
}

func TestNewStampsDayAndCreation(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)
	day := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	e := New(day, now)
	if e.ID == "" {
		t.Fatal("expected generated id")
	}
	if e.Date != "2024-03-02" {
		t.Fatalf("date = %q", e.Date)
	}
	if e.DateTime != "2024-03-02T09:26:00Z" {
		t.Fatalf("dateTime = %q", e.DateTime)
	}
	if e.CreatedAt != "2024-03-14T09:26:53Z" {
		t.Fatalf("createdAt = %q", e.CreatedAt)
	}

	undated := New(time.Time{}, now)
	if undated.Date != "" || undated.DateTime != "" {
		t.Fatalf("undated entry got date %q dateTime %q", undated.Date, undated.DateTime)
	}
}

func TestEquivalentIgnoresTagOrderAndBookkeeping(t *testing.T) {
	a := &Entry{
		ID:        "one",
		CreatedAt: "2024-01-01T00:00:00Z",
		Date:      "2024-01-01",
		Rating:    RatingGood,
		Message:   "fine",
		Tags:      []TagReference{{ID: "x"}, {ID: "y"}},
	}
	b := a.Clone()
	b.ID = "two"
	b.CreatedAt = "2024-02-02T00:00:00Z"
	b.Tags = []TagReference{{ID: "y"}, {ID: "x"}}

	if !a.Equivalent(b) {
		t.Fatal("entries differing only in id, createdAt and tag order should be equivalent")
	}

	b.Message = "not fine"
	if a.Equivalent(b) {
		t.Fatal("message change should break equivalence")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := &Entry{ID: "a", Tags: []TagReference{{ID: "x"}}}
	c := a.Clone()
	c.Tags[0].ID = "z"
	if a.Tags[0].ID != "x" {
		t.Fatal("clone shares tag backing array")
	}
}
