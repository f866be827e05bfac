// Package composer implements the entry-composition wizard: the per-session
// step plan, the draft entry being composed, and the session state machine
// that coordinates navigation, commit, cancel, delete, and step disablement.
package composer

import "fmt"

// Step identifies one screen of the composition wizard.
type Step string

const (
	StepRating   Step = "rating"
	StepTags     Step = "tags"
	StepMessage  Step = "message"
	StepReminder Step = "reminder"
	StepFeedback Step = "feedback"
)

// OptionalSteps are the steps users may toggle off. Rating is mandatory.
var OptionalSteps = []Step{StepTags, StepMessage, StepFeedback}

// ParseStep maps a user-supplied name to a Step.
func ParseStep(name string) (Step, error) {
	switch Step(name) {
	case StepRating, StepTags, StepMessage, StepReminder, StepFeedback:
		return Step(name), nil
	}
	return "", fmt.Errorf("unknown step %q", name)
}

// StepSettings is the slice of settings the planner needs.
type StepSettings interface {
	HasStep(step Step) bool
	ReminderEnabled() bool
}

// PlanInput carries everything the planner looks at. EntryCount is the
// number of persisted entries at session start; HasQuestion reports whether
// a feedback prompt resolved.
type PlanInput struct {
	Editing     bool
	EntryCount  int
	HasQuestion bool
	Settings    StepSettings
}

// Plan derives the ordered step sequence for one wizard session. Rating is
// always first. The reminder step is offered exactly once, right after the
// very first entry was logged and only while reminders are off. The
// feedback step needs an available question, at least three entries, and a
// new (not edited) entry. Plan is pure: same input, same output.
func Plan(in PlanInput) []Step {
	steps := []Step{StepRating}

	appendStep := func(step Step) {
		for _, s := range steps {
			if s == step {
				return
			}
		}
		steps = append(steps, step)
	}

	if in.Settings.HasStep(StepTags) {
		appendStep(StepTags)
	}
	if in.Settings.HasStep(StepMessage) {
		appendStep(StepMessage)
	}
	if in.EntryCount == 1 && !in.Settings.ReminderEnabled() && !in.Editing {
		appendStep(StepReminder)
	}
	if in.EntryCount >= 3 && in.HasQuestion && !in.Editing && in.Settings.HasStep(StepFeedback) {
		appendStep(StepFeedback)
	}

	return steps
}

func indexOf(steps []Step, step Step) int {
	for i, s := range steps {
		if s == step {
			return i
		}
	}
	return -1
}
