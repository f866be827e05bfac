// Package stats aggregates simple frequency counts over the journal.
package stats

import (
	"sort"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

// TagCount pairs a known tag with how many entries reference it.
type TagCount struct {
	Tag   mood.Tag
	Count int
}

// TagsDistribution summarizes tag usage across entries.
type TagsDistribution struct {
	Tags []TagCount
	// ItemsCount is the number of entries carrying at least one tag.
	ItemsCount int
}

// Tags counts entry references per tag id, keeping only tags that still
// exist in settings, sorted by count descending.
func Tags(entries []*mood.Entry, known []mood.Tag) TagsDistribution {
	counts := make(map[string]int)
	itemsWithTags := 0
	for _, e := range entries {
		if len(e.Tags) == 0 {
			continue
		}
		itemsWithTags++
		for _, ref := range e.Tags {
			counts[ref.ID]++
		}
	}

	byID := make(map[string]mood.Tag, len(known))
	for _, tag := range known {
		byID[tag.ID] = tag
	}

	out := make([]TagCount, 0, len(counts))
	for id, count := range counts {
		tag, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag.Title < out[j].Tag.Title
	})

	return TagsDistribution{Tags: out, ItemsCount: itemsWithTags}
}

// RatingCount pairs a rating with its frequency.
type RatingCount struct {
	Rating mood.Rating
	Count  int
}

// Ratings counts entries per rating in scale order, including zero rows so
// callers can render the full scale.
func Ratings(entries []*mood.Entry) []RatingCount {
	counts := make(map[mood.Rating]int)
	for _, e := range entries {
		if e.Rating.Valid() {
			counts[e.Rating]++
		}
	}
	out := make([]RatingCount, 0, len(mood.Scale()))
	for _, r := range mood.Scale() {
		out = append(out, RatingCount{Rating: r, Count: counts[r]})
	}
	return out
}
