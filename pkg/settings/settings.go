// Package settings persists user preferences: which optional wizard steps
// are enabled, the reminder flag, and the tag set. A Store notifies
// subscribers after every mutation so live sessions can react to tag-set
// changes without polling.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

const settingsFile = "settings.json"

// ColorNames is the fixed tag color palette.
var ColorNames = []string{
	"slate", "stone", "red", "orange", "amber", "yellow", "lime",
	"green", "emerald", "teal", "cyan", "sky", "blue", "indigo",
	"violet", "purple", "fuchsia", "pink", "rose",
}

// MaxTagTitleLength bounds tag titles in runes.
const MaxTagTitleLength = 30

type state struct {
	Steps           map[composer.Step]bool `json:"steps"`
	ReminderEnabled bool                   `json:"reminderEnabled"`
	Tags            []mood.Tag             `json:"tags"`
}

func defaultState() state {
	return state{
		Steps: map[composer.Step]bool{
			composer.StepTags:     true,
			composer.StepMessage:  true,
			composer.StepFeedback: true,
		},
	}
}

// Store reads and writes settings.json under the configured base path.
type Store struct {
	mu      sync.Mutex
	path    string
	state   state
	nextSub int
	subs    map[int]func()
}

// Open loads settings from basePath, creating defaults on first use.
func Open(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, errors.New("settings: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("settings: ensure base path: %w", err)
	}
	s := &Store{
		path:  filepath.Join(basePath, settingsFile),
		state: defaultState(),
		subs:  make(map[int]func()),
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if len(data) > 0 {
		loaded := defaultState()
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("settings: parse %s: %w", s.path, err)
		}
		if loaded.Steps == nil {
			loaded.Steps = defaultState().Steps
		}
		s.state = loaded
	}
	return s, nil
}

// save writes atomically via tmp+rename so a crash never truncates settings.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// HasStep reports whether the optional step is enabled. The rating step is
// not optional and always reports true.
func (s *Store) HasStep(step composer.Step) bool {
	if step == composer.StepRating {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Steps[step]
}

// ToggleStep flips an optional step on or off.
func (s *Store) ToggleStep(step composer.Step) error {
	if step == composer.StepRating {
		return errors.New("settings: rating step cannot be toggled")
	}
	s.mu.Lock()
	s.state.Steps[step] = !s.state.Steps[step]
	err := s.save()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// ReminderEnabled reports the reminder flag.
func (s *Store) ReminderEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ReminderEnabled
}

// SetReminderEnabled records the reminder flag.
func (s *Store) SetReminderEnabled(enabled bool) error {
	s.mu.Lock()
	s.state.ReminderEnabled = enabled
	err := s.save()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Tags returns a copy of the current tag set.
func (s *Store) Tags() []mood.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := make([]mood.Tag, len(s.state.Tags))
	copy(tags, s.state.Tags)
	return tags
}

// AddTag appends a tag, enforcing the title length bound.
func (s *Store) AddTag(tag mood.Tag) error {
	if tag.ID == "" {
		return errors.New("settings: tag id required")
	}
	if tag.Title == "" || len([]rune(tag.Title)) > MaxTagTitleLength {
		return fmt.Errorf("settings: tag title must be 1-%d characters", MaxTagTitleLength)
	}
	s.mu.Lock()
	for _, existing := range s.state.Tags {
		if existing.ID == tag.ID {
			s.mu.Unlock()
			return fmt.Errorf("settings: tag %s already exists", tag.ID)
		}
	}
	s.state.Tags = append(s.state.Tags, tag)
	err := s.save()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// RemoveTag deletes a tag from the set. Persisted entries referencing the
// tag are left untouched; drafts filter stale references themselves.
func (s *Store) RemoveTag(id string) error {
	s.mu.Lock()
	kept := s.state.Tags[:0]
	found := false
	for _, tag := range s.state.Tags {
		if tag.ID == id {
			found = true
			continue
		}
		kept = append(kept, tag)
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("settings: no tag %s", id)
	}
	s.state.Tags = kept
	err := s.save()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Subscribe registers fn to run after every settings mutation. The returned
// cancel func removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
