package composertui

import (
	"context"
	"strings"
	"testing"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

type uiSettings struct {
	steps map[composer.Step]bool
	tags  []mood.Tag
}

func (f *uiSettings) HasStep(step composer.Step) bool {
	if step == composer.StepRating {
		return true
	}
	return f.steps[step]
}

func (f *uiSettings) ReminderEnabled() bool { return true }

func (f *uiSettings) ToggleStep(step composer.Step) error {
	f.steps[step] = !f.steps[step]
	return nil
}

func (f *uiSettings) SetReminderEnabled(bool) error { return nil }

func (f *uiSettings) Tags() []mood.Tag { return f.tags }

func (f *uiSettings) Subscribe(func()) func() { return func() {} }

type uiLogs struct {
	entries []*mood.Entry
	created []*mood.Entry
}

func (f *uiLogs) All(ctx context.Context) []*mood.Entry { return f.entries }

func (f *uiLogs) Create(e *mood.Entry) error {
	f.created = append(f.created, e)
	return nil
}

func (f *uiLogs) Update(e *mood.Entry) error { return nil }

func (f *uiLogs) Delete(ctx context.Context, id string) error { return nil }

func newTestModel(t *testing.T) (*Model, *uiLogs) {
	t.Helper()
	logs := &uiLogs{}
	m, err := New(context.Background(), Config{
		Logs: logs,
		Settings: &uiSettings{
			steps: map[composer.Step]bool{
				composer.StepTags:    true,
				composer.StepMessage: true,
			},
			tags: []mood.Tag{
				{ID: "t1", Title: "work", Color: "sky"},
				{ID: "t2", Title: "gym", Color: "lime"},
			},
		},
	})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return m, logs
}

func TestNumberKeyPicksRating(t *testing.T) {
	m, _ := newTestModel(t)

	m.handleRatingKey("5")

	want := mood.Scale()[4]
	if got := m.session.Draft().Rating(); got != want {
		t.Fatalf("expected rating %q, got %q", want, got)
	}
	if m.ratingCursor != 4 {
		t.Fatalf("expected cursor 4, got %d", m.ratingCursor)
	}
}

func TestToggleTagRoundTrips(t *testing.T) {
	m, _ := newTestModel(t)

	m.toggleTag(m.tags[1])
	refs := m.session.Draft().Entry().Tags
	if len(refs) != 1 || refs[0].ID != "t2" {
		t.Fatalf("expected draft to hold t2, got %+v", refs)
	}

	m.toggleTag(m.tags[1])
	if refs := m.session.Draft().Entry().Tags; len(refs) != 0 {
		t.Fatalf("expected empty tag set after second toggle, got %+v", refs)
	}
}

func TestCancelPromptConfirmQuits(t *testing.T) {
	m, logs := newTestModel(t)

	m.session.Touch()
	m.session.SetRating(mood.RatingBad)
	m.session.Cancel()
	if m.prompt == nil {
		t.Fatal("expected a confirmation prompt for a dirty draft")
	}

	m.handlePromptKey("y")
	if !m.done {
		t.Fatal("expected model done after confirming cancel")
	}
	if len(logs.created) != 0 {
		t.Fatalf("cancel must not persist, created %d", len(logs.created))
	}
}

func TestCancelPromptDeclineKeepsSession(t *testing.T) {
	m, _ := newTestModel(t)

	m.session.Touch()
	m.session.SetRating(mood.RatingBad)
	m.session.Cancel()
	m.handlePromptKey("n")

	if m.done {
		t.Fatal("declining the prompt must keep the session open")
	}
	if m.prompt != nil {
		t.Fatal("prompt should be dismissed after answering")
	}
}

func TestViewShowsStepperAndFaces(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, "●") {
		t.Fatalf("expected stepper dot in view:\n%s", out)
	}
	if !strings.Contains(out, mood.RatingNeutral.Meaning()) {
		t.Fatalf("expected the neutral face label in view:\n%s", out)
	}
}
