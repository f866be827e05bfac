package settings

import (
	"strings"
	"testing"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

func TestDefaultsEnableOptionalSteps(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, step := range []composer.Step{composer.StepRating, composer.StepTags, composer.StepMessage, composer.StepFeedback} {
		if !s.HasStep(step) {
			t.Fatalf("step %s should default to enabled", step)
		}
	}
	if s.ReminderEnabled() {
		t.Fatal("reminder should default to off")
	}
}

func TestToggleStepPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.ToggleStep(composer.StepTags); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.HasStep(composer.StepTags) {
		t.Fatal("tags step should be off after toggle")
	}
	if err := s.ToggleStep(composer.StepRating); err == nil {
		t.Fatal("rating step must not be toggleable")
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.HasStep(composer.StepTags) {
		t.Fatal("toggle did not persist")
	}
	if !reopened.HasStep(composer.StepMessage) {
		t.Fatal("untouched step lost its default")
	}
}

func TestTagLifecycle(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	tag := mood.Tag{ID: "t1", Title: "work", Color: "sky"}
	if err := s.AddTag(tag); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddTag(tag); err == nil {
		t.Fatal("duplicate tag id should fail")
	}
	if err := s.AddTag(mood.Tag{ID: "t2", Title: strings.Repeat("x", MaxTagTitleLength+1)}); err == nil {
		t.Fatal("overlong title should fail")
	}

	if got := s.Tags(); len(got) != 1 || got[0].Title != "work" {
		t.Fatalf("tags = %+v", got)
	}

	if err := s.RemoveTag("t1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.RemoveTag("t1"); err == nil {
		t.Fatal("removing a missing tag should fail")
	}
	if got := s.Tags(); len(got) != 0 {
		t.Fatalf("tags after remove = %+v", got)
	}
}

func TestSubscribeFiresOnEveryMutation(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	fired := 0
	cancel := s.Subscribe(func() { fired++ })

	if err := s.AddTag(mood.Tag{ID: "a", Title: "a"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.SetReminderEnabled(true); err != nil {
		t.Fatalf("set reminder: %v", err)
	}
	if fired != 2 {
		t.Fatalf("expected 2 notifications, got %d", fired)
	}

	cancel()
	if err := s.RemoveTag("a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if fired != 2 {
		t.Fatalf("cancelled subscription still fired, count %d", fired)
	}
}
