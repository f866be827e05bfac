package composer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

// ErrClosed is returned by operations invoked after the session ended.
var ErrClosed = errors.New("composer: session closed")

// LogStore is the slice of the persistence layer the wizard needs.
type LogStore interface {
	All(ctx context.Context) []*mood.Entry
	Create(e *mood.Entry) error
	Update(e *mood.Entry) error
	Delete(ctx context.Context, id string) error
}

// SettingsStore extends the planner's settings view with the mutations the
// wizard performs and change notification for tag filtering.
type SettingsStore interface {
	StepSettings
	ToggleStep(step Step) error
	SetReminderEnabled(enabled bool) error
	Tags() []mood.Tag
	Subscribe(fn func()) func()
}

// Telemetry records fire-and-forget product events.
type Telemetry interface {
	Track(event string, props map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Track(string, map[string]any) {}

// Question is an optional feedback prompt shown on the feedback step.
type Question struct {
	ID   string
	Text string
}

// Hooks let the view layer follow the session. All fields are optional.
type Hooks struct {
	// ScrollTo is called after every position change with the new index.
	ScrollTo func(index int)
	// FocusMessage is called when navigation lands on the message step.
	FocusMessage func()
	// Dismiss is called exactly once when the session closes.
	Dismiss func()
	// Failed is called when a store operation inside a continuation fails.
	// The session stays open so the user can retry.
	Failed func(err error)
}

// Config assembles a wizard session.
type Config struct {
	Logs      LogStore
	Settings  SettingsStore
	Prompter  Prompter
	Telemetry Telemetry
	Question  *Question
	Hooks     Hooks

	// ExistingID selects an entry to edit; empty starts a new entry.
	ExistingID string
	// StartStep positions the wizard on a specific step when present in
	// the planned sequence.
	StartStep Step
	// Date is the calendar day (2006-01-02) a new entry is about.
	Date string
	// ShowDisable surfaces the per-step disable affordance.
	ShowDisable bool

	Now func() time.Time
}

// Session is one wizard run: a fixed step sequence, a position within it,
// and an exclusively owned draft. A session ends by committing, cancelling,
// or deleting; nothing is valid afterwards.
type Session struct {
	ctx       context.Context
	logs      LogStore
	settings  SettingsStore
	prompter  Prompter
	telemetry Telemetry
	hooks     Hooks
	question  *Question

	steps             []Step
	index             int
	touched           bool
	pendingAutoCommit bool
	closed            bool
	showDisable       bool

	editing     bool
	original    *mood.Entry
	draft       *Draft
	unsubscribe func()
}

// Open plans the step sequence, seeds the draft, and subscribes to settings
// changes. The sequence is fixed for the lifetime of the session; later
// settings changes only filter draft tags, they never reshape the plan.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.Logs == nil {
		return nil, errors.New("composer: log store required")
	}
	if cfg.Settings == nil {
		return nil, errors.New("composer: settings store required")
	}
	if cfg.Prompter == nil {
		return nil, errors.New("composer: prompter required")
	}
	if cfg.Telemetry == nil {
		cfg.Telemetry = noopTelemetry{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	all := cfg.Logs.All(ctx)

	var original *mood.Entry
	if cfg.ExistingID != "" {
		for _, e := range all {
			if e.ID == cfg.ExistingID {
				original = e
				break
			}
		}
		if original == nil {
			return nil, fmt.Errorf("composer: no entry %s", cfg.ExistingID)
		}
	}

	steps := Plan(PlanInput{
		Editing:     original != nil,
		EntryCount:  len(all),
		HasQuestion: cfg.Question != nil,
		Settings:    cfg.Settings,
	})

	scaffold := original
	if scaffold == nil {
		var day time.Time
		if cfg.Date != "" {
			parsed, err := time.Parse("2006-01-02", cfg.Date)
			if err != nil {
				return nil, fmt.Errorf("composer: parse date %q: %w", cfg.Date, err)
			}
			day = parsed
		}
		scaffold = mood.New(day, now())
	}

	index := indexOf(steps, cfg.StartStep)
	if index < 0 {
		index = 0
	}

	s := &Session{
		ctx:         ctx,
		logs:        cfg.Logs,
		settings:    cfg.Settings,
		prompter:    cfg.Prompter,
		telemetry:   cfg.Telemetry,
		hooks:       cfg.Hooks,
		question:    cfg.Question,
		steps:       steps,
		index:       index,
		showDisable: cfg.ShowDisable,
		editing:     original != nil,
		original:    original,
		draft:       NewDraft(scaffold),
	}

	// Drop tag references the settings no longer know, now and whenever the
	// tag set changes later.
	s.draft.FilterTags(s.settings.Tags())
	s.unsubscribe = s.settings.Subscribe(func() {
		if s.closed {
			return
		}
		s.draft.FilterTags(s.settings.Tags())
	})

	return s, nil
}

// Steps returns the planned sequence.
func (s *Session) Steps() []Step {
	steps := make([]Step, len(s.steps))
	copy(steps, s.steps)
	return steps
}

// Index returns the current wizard position.
func (s *Session) Index() int { return s.index }

// Current returns the step at the current position.
func (s *Session) Current() Step { return s.steps[s.index] }

// Editing reports whether the session edits an existing entry.
func (s *Session) Editing() bool { return s.editing }

// Closed reports whether the session ended.
func (s *Session) Closed() bool { return s.closed }

// Question returns the feedback prompt, if one resolved before the session.
func (s *Session) Question() *Question { return s.question }

// ShowDisable reports whether steps render their disable affordance.
func (s *Session) ShowDisable() bool { return s.showDisable }

// Draft exposes the session's draft for reading. Mutations go through the
// Set* methods so deferred auto-commit can settle.
func (s *Session) Draft() *Draft { return s.draft }

// Touch records an explicit navigation gesture. Before the first gesture a
// rating change on the first step stays put instead of auto-advancing.
func (s *Session) Touch() { s.touched = true }

// CanGoBack reports whether Back currently does anything.
func (s *Session) CanGoBack() bool { return s.index > 0 }

// Next advances the wizard. On the last step it commits instead and, on
// success, closes the session.
func (s *Session) Next() {
	if s.closed {
		return
	}
	if s.index == len(s.steps)-1 {
		if err := s.Save(); err != nil {
			s.fail(err)
		}
		return
	}
	s.moveTo(s.index + 1)
}

// Back retreats one step. A no-op on the first step.
func (s *Session) Back() {
	if s.closed || s.index == 0 {
		return
	}
	s.moveTo(s.index - 1)
}

// JumpTo repositions the wizard, used by the step indicator. Jumping to the
// current position is a no-op.
func (s *Session) JumpTo(index int) {
	if s.closed || index < 0 || index >= len(s.steps) || index == s.index {
		return
	}
	s.moveTo(index)
}

func (s *Session) moveTo(index int) {
	s.index = index
	s.touched = true
	if s.hooks.ScrollTo != nil {
		s.hooks.ScrollTo(index)
	}
	if s.steps[index] == StepMessage && s.hooks.FocusMessage != nil {
		s.hooks.FocusMessage()
	}
}

// SetRating records a mood choice. In a single-step session a changed
// rating arms a deferred commit, so tapping a face saves a minimal entry
// once the mutation settled. In longer sessions a changed rating advances,
// unless the user still sits untouched on the first step.
func (s *Session) SetRating(r mood.Rating) {
	if s.closed {
		return
	}
	changed := s.draft.Rating() != r
	s.draft.Apply(func(e *mood.Entry) { e.Rating = r })
	if changed {
		switch {
		case len(s.steps) == 1:
			s.pendingAutoCommit = true
		case s.index > 0 || s.touched:
			s.Next()
		}
	}
	s.settle()
}

// SetTags replaces the draft's tag references.
func (s *Session) SetTags(tags []mood.TagReference) {
	if s.closed {
		return
	}
	s.draft.Apply(func(e *mood.Entry) { e.Tags = tags })
	s.settle()
}

// SetMessage replaces the draft's message text.
func (s *Session) SetMessage(message string) {
	if s.closed {
		return
	}
	s.draft.Apply(func(e *mood.Entry) { e.Message = message })
	s.settle()
}

// settle runs after every draft mutation and performs a commit that was
// deferred until the mutation applied.
func (s *Session) settle() {
	if !s.pendingAutoCommit || s.closed {
		return
	}
	s.pendingAutoCommit = false
	if err := s.Save(); err != nil {
		s.fail(err)
	}
}

// Save commits the draft: an unset rating is coerced to neutral, the entry
// is created or updated, and the session closes. A store failure leaves the
// session open with the draft intact.
func (s *Session) Save() error {
	if s.closed {
		return ErrClosed
	}
	e := s.draft.Entry()
	if e.Rating == mood.RatingUnset {
		e.Rating = mood.RatingNeutral
	}

	var err error
	if s.editing {
		err = s.logs.Update(e)
	} else {
		err = s.logs.Create(e)
	}
	if err != nil {
		return fmt.Errorf("composer: save entry: %w", err)
	}

	props := map[string]any{
		"date":          e.Date,
		"dateTime":      e.DateTime,
		"messageLength": utf8.RuneCountInString(e.Message),
		"rating":        string(e.Rating),
		"tagsCount":     len(e.Tags),
	}
	s.telemetry.Track("log_saved", props)
	if s.editing {
		s.telemetry.Track("log_changed", props)
	} else {
		s.telemetry.Track("log_created", props)
	}

	s.close()
	return nil
}

// Cancel discards the draft. When the draft differs from what the session
// started with, the user confirms first; declining keeps the session open
// and untouched. The difference is recomputed fresh on every attempt.
func (s *Session) Cancel() {
	if s.closed {
		return
	}
	var dirty bool
	if s.editing {
		dirty = s.draft.HasDifference(s.original)
	} else {
		dirty = s.draft.HasChanged()
	}
	if !dirty {
		s.discard()
		return
	}
	s.prompter.Ask(PromptCancel, func(confirmed bool) {
		if !confirmed || s.closed {
			return
		}
		s.discard()
	})
}

func (s *Session) discard() {
	s.telemetry.Track("log_cancelled", nil)
	s.close()
}

// NeedsRemoveConfirmation reports whether deleting the entry should be
// confirmed: only entries carrying a message or tags are worth a prompt.
func NeedsRemoveConfirmation(e *mood.Entry) bool {
	return len(e.Message) > 0 || len(e.Tags) > 0
}

// Remove deletes the entry behind the session, confirming first when the
// entry is non-empty. A confirmed delete always closes the session.
func (s *Session) Remove() {
	if s.closed {
		return
	}
	if !NeedsRemoveConfirmation(s.draft.Entry()) {
		s.remove()
		return
	}
	s.prompter.Ask(PromptRemove, func(confirmed bool) {
		if !confirmed || s.closed {
			return
		}
		s.remove()
	})
}

func (s *Session) remove() {
	id := s.draft.Entry().ID
	if err := s.logs.Delete(s.ctx, id); err != nil {
		s.fail(fmt.Errorf("composer: delete entry: %w", err))
		return
	}
	s.telemetry.Track("log_deleted", nil)
	s.close()
}

// DisableStep confirms, toggles the step off in settings, and advances. The
// feedback step gets its own prompt wording. The running session keeps its
// planned sequence; the removal takes effect next session.
func (s *Session) DisableStep(step Step) {
	if s.closed {
		return
	}
	kind := PromptDisableStep
	if step == StepFeedback {
		kind = PromptDisableFeedback
	}
	s.prompter.Ask(kind, func(confirmed bool) {
		if !confirmed || s.closed {
			return
		}
		if err := s.settings.ToggleStep(step); err != nil {
			s.fail(fmt.Errorf("composer: disable step: %w", err))
			return
		}
		s.telemetry.Track("step_disabled", map[string]any{"step": string(step)})
		s.Next()
	})
}

// EnableReminder turns the reminder setting on from the reminder step and
// advances.
func (s *Session) EnableReminder() {
	if s.closed {
		return
	}
	if err := s.settings.SetReminderEnabled(true); err != nil {
		s.fail(fmt.Errorf("composer: enable reminder: %w", err))
		return
	}
	s.telemetry.Track("reminder_enabled", nil)
	s.Next()
}

// SendFeedback records the feedback answer and advances.
func (s *Session) SendFeedback(answer string) {
	if s.closed {
		return
	}
	props := map[string]any{"answerLength": utf8.RuneCountInString(answer)}
	if s.question != nil {
		props["question"] = s.question.ID
	}
	s.telemetry.Track("feedback_sent", props)
	s.Next()
}

func (s *Session) close() {
	if s.closed {
		return
	}
	s.closed = true
	s.draft.Reset()
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	if s.hooks.Dismiss != nil {
		s.hooks.Dismiss()
	}
}

func (s *Session) fail(err error) {
	if s.hooks.Failed != nil {
		s.hooks.Failed(err)
		return
	}
	fmt.Fprintf(os.Stderr, "%v\n", err)
}
