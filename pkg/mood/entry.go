package mood

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a user-defined label kept in settings. Color names one of the
// terminal palette entries, not a raw color value.
type Tag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
}

// TagReference is a tag attached to an entry: the id plus the title as it
// read at selection time. The referenced tag may later disappear from
// settings; readers filter such references out rather than failing.
type TagReference struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// Entry is one persisted mood log record. Date holds the calendar day
// (2006-01-02) the entry is about, DateTime and CreatedAt are RFC3339
// instants. Date and DateTime stay empty for undated entries.
type Entry struct {
	ID        string         `json:"id"`
	Date      string         `json:"date,omitempty"`
	DateTime  string         `json:"dateTime,omitempty"`
	CreatedAt string         `json:"createdAt"`
	Rating    Rating         `json:"rating,omitempty"`
	Tags      []TagReference `json:"tags,omitempty"`
	Message   string         `json:"message,omitempty"`
}

const layoutDay = "2006-01-02"

// New scaffolds an entry for the given day. A zero day produces an undated
// entry stamped with now only.
func New(day time.Time, now time.Time) *Entry {
	e := &Entry{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	if !day.IsZero() {
		e.Date = day.Format(layoutDay)
		// Keep the wall-clock time of "now" on the chosen day.
		at := time.Date(day.Year(), day.Month(), day.Day(),
			now.Hour(), now.Minute(), 0, 0, now.Location())
		e.DateTime = at.UTC().Format(time.RFC3339)
	}
	return e
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := *e
	if e.Tags != nil {
		c.Tags = make([]TagReference, len(e.Tags))
		copy(c.Tags, e.Tags)
	}
	return &c
}

// TagIDs returns the set of referenced tag ids.
func (e *Entry) TagIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(e.Tags))
	for _, t := range e.Tags {
		ids[t.ID] = struct{}{}
	}
	return ids
}

// Equivalent compares the user-meaningful fields of two entries: day, time,
// rating, message, and the tag id set (order insensitive). ID and CreatedAt
// are bookkeeping and do not participate.
func (e *Entry) Equivalent(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Date != other.Date || e.DateTime != other.DateTime {
		return false
	}
	if e.Rating != other.Rating || e.Message != other.Message {
		return false
	}
	return sameIDSet(e.TagIDs(), other.TagIDs())
}

func sameIDSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}

// Created parses CreatedAt, returning the zero time when absent or invalid.
func (e *Entry) Created() time.Time {
	t, err := time.Parse(time.RFC3339, e.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Title renders the entry's day for display, falling back to the creation
// day for undated entries.
func (e *Entry) Title() string {
	if e.Date != "" {
		if t, err := time.Parse(layoutDay, e.Date); err == nil {
			return t.Format("Monday, January 2, 2006")
		}
		return e.Date
	}
	if c := e.Created(); !c.IsZero() {
		return c.Local().Format("Monday, January 2, 2006")
	}
	return "(undated)"
}
