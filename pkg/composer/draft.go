package composer

import (
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

// Draft is the in-progress working copy of an entry, owned by exactly one
// session. It remembers the scaffold it was seeded with so change detection
// can compare against it later.
type Draft struct {
	data     mood.Entry
	scaffold mood.Entry
}

// NewDraft seeds a draft from the scaffold entry.
func NewDraft(scaffold *mood.Entry) *Draft {
	d := &Draft{}
	d.Seed(scaffold)
	return d
}

// Seed replaces both the working copy and the reference scaffold.
func (d *Draft) Seed(scaffold *mood.Entry) {
	d.scaffold = *scaffold.Clone()
	d.data = *scaffold.Clone()
}

// Entry returns a copy of the current draft content.
func (d *Draft) Entry() *mood.Entry {
	return d.data.Clone()
}

// Rating reports the current draft rating without copying.
func (d *Draft) Rating() mood.Rating {
	return d.data.Rating
}

// Apply mutates the draft through a patch function. Fields the patch does
// not touch keep their value.
func (d *Draft) Apply(patch func(e *mood.Entry)) {
	patch(&d.data)
}

// Reset restores the draft to the scaffold it was seeded with.
func (d *Draft) Reset() {
	d.data = *d.scaffold.Clone()
}

// HasChanged reports whether the draft differs from its scaffold.
func (d *Draft) HasChanged() bool {
	return !d.data.Equivalent(&d.scaffold)
}

// HasDifference reports whether the draft differs from an arbitrary
// reference entry, field-wise, with tags compared as an id set.
func (d *Draft) HasDifference(other *mood.Entry) bool {
	return !d.data.Equivalent(other)
}

// FilterTags drops tag references whose id is no longer in the valid set.
// Runs whenever the settings tag set changes; stale references disappear
// silently rather than surfacing as errors.
func (d *Draft) FilterTags(valid []mood.Tag) {
	if len(d.data.Tags) == 0 {
		return
	}
	ids := make(map[string]struct{}, len(valid))
	for _, t := range valid {
		ids[t.ID] = struct{}{}
	}
	kept := d.data.Tags[:0]
	for _, ref := range d.data.Tags {
		if _, ok := ids[ref.ID]; ok {
			kept = append(kept, ref)
		}
	}
	d.data.Tags = kept
}
