package composer

import (
	"testing"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

func scaffoldEntry() *mood.Entry {
	return &mood.Entry{
		ID:        "draft-1",
		Date:      "2024-06-01",
		DateTime:  "2024-06-01T08:00:00Z",
		CreatedAt: "2024-06-01T08:00:00Z",
	}
}

func TestApplyPatchesOnlyNamedFields(t *testing.T) {
	d := NewDraft(scaffoldEntry())

	d.Apply(func(e *mood.Entry) { e.Message = "rough morning" })
	got := d.Entry()
	if got.Message != "rough morning" {
		t.Fatalf("message = %q", got.Message)
	}
	if got.Date != "2024-06-01" || got.Rating != mood.RatingUnset {
		t.Fatalf("unrelated fields changed: %+v", got)
	}

	// Repeating the identical patch changes nothing further.
	d.Apply(func(e *mood.Entry) { e.Message = "rough morning" })
	if again := d.Entry(); again.Message != got.Message {
		t.Fatalf("repeated patch not idempotent: %q", again.Message)
	}
}

func TestHasChangedLifecycle(t *testing.T) {
	d := NewDraft(scaffoldEntry())

	if d.HasChanged() {
		t.Fatal("fresh draft should not report changes")
	}

	d.Apply(func(e *mood.Entry) { e.Rating = mood.RatingBad })
	if !d.HasChanged() {
		t.Fatal("rating mutation should report a change")
	}

	d.Reset()
	if d.HasChanged() {
		t.Fatal("reset draft should match its scaffold again")
	}
}

func TestHasDifferenceIgnoresTagOrder(t *testing.T) {
	s := scaffoldEntry()
	s.Tags = []mood.TagReference{{ID: "a"}, {ID: "b"}}
	d := NewDraft(s)

	ref := s.Clone()
	ref.Tags = []mood.TagReference{{ID: "b"}, {ID: "a"}}
	if d.HasDifference(ref) {
		t.Fatal("tag order should not count as a difference")
	}

	ref.Tags = []mood.TagReference{{ID: "a"}}
	if !d.HasDifference(ref) {
		t.Fatal("dropped tag should count as a difference")
	}
}

func TestFilterTagsDropsUnknownIDs(t *testing.T) {
	s := scaffoldEntry()
	s.Tags = []mood.TagReference{{ID: "a", Title: "work"}, {ID: "b", Title: "rain"}}
	d := NewDraft(s)

	d.FilterTags([]mood.Tag{{ID: "a", Title: "work"}})

	got := d.Entry().Tags
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("tags after filter = %+v", got)
	}
}
