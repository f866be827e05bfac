package stats

import (
	"testing"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

func entryWith(rating mood.Rating, tagIDs ...string) *mood.Entry {
	e := &mood.Entry{Rating: rating}
	for _, id := range tagIDs {
		e.Tags = append(e.Tags, mood.TagReference{ID: id})
	}
	return e
}

func TestTagsCountsAndFiltersUnknown(t *testing.T) {
	entries := []*mood.Entry{
		entryWith(mood.RatingGood, "work", "rain"),
		entryWith(mood.RatingBad, "work"),
		entryWith(mood.RatingNeutral, "deleted-tag"),
		entryWith(mood.RatingNeutral),
	}
	known := []mood.Tag{
		{ID: "work", Title: "Work"},
		{ID: "rain", Title: "Rain"},
	}

	dist := Tags(entries, known)

	if dist.ItemsCount != 3 {
		t.Fatalf("items with tags = %d", dist.ItemsCount)
	}
	if len(dist.Tags) != 2 {
		t.Fatalf("expected unknown tag filtered, got %+v", dist.Tags)
	}
	if dist.Tags[0].Tag.ID != "work" || dist.Tags[0].Count != 2 {
		t.Fatalf("top tag = %+v", dist.Tags[0])
	}
	if dist.Tags[1].Tag.ID != "rain" || dist.Tags[1].Count != 1 {
		t.Fatalf("second tag = %+v", dist.Tags[1])
	}
}

func TestRatingsCoverFullScale(t *testing.T) {
	entries := []*mood.Entry{
		entryWith(mood.RatingGood),
		entryWith(mood.RatingGood),
		entryWith(mood.RatingExtremelyBad),
		{}, // unset rating is not counted
	}

	counts := Ratings(entries)
	if len(counts) != len(mood.Scale()) {
		t.Fatalf("expected %d rows, got %d", len(mood.Scale()), len(counts))
	}
	byRating := map[mood.Rating]int{}
	for _, rc := range counts {
		byRating[rc.Rating] = rc.Count
	}
	if byRating[mood.RatingGood] != 2 || byRating[mood.RatingExtremelyBad] != 1 {
		t.Fatalf("counts = %+v", byRating)
	}
	if byRating[mood.RatingVeryGood] != 0 {
		t.Fatalf("expected zero row for very_good, got %d", byRating[mood.RatingVeryGood])
	}
}
