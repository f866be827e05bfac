package composer

import "testing"

type planSettings struct {
	steps    map[Step]bool
	reminder bool
}

func (p planSettings) HasStep(step Step) bool {
	if step == StepRating {
		return true
	}
	return p.steps[step]
}

func (p planSettings) ReminderEnabled() bool { return p.reminder }

func allSteps() map[Step]bool {
	return map[Step]bool{StepTags: true, StepMessage: true, StepFeedback: true}
}

func TestPlanRatingAlwaysFirstAndUnique(t *testing.T) {
	inputs := []PlanInput{
		{Settings: planSettings{steps: map[Step]bool{}}},
		{Settings: planSettings{steps: allSteps()}},
		{Settings: planSettings{steps: allSteps()}, EntryCount: 1},
		{Settings: planSettings{steps: allSteps()}, EntryCount: 5, HasQuestion: true},
		{Settings: planSettings{steps: allSteps()}, EntryCount: 5, HasQuestion: true, Editing: true},
	}
	for i, in := range inputs {
		steps := Plan(in)
		if len(steps) == 0 || steps[0] != StepRating {
			t.Fatalf("case %d: expected rating first, got %v", i, steps)
		}
		seen := map[Step]int{}
		for _, s := range steps {
			seen[s]++
			if seen[s] > 1 {
				t.Fatalf("case %d: step %s appears twice in %v", i, s, steps)
			}
		}
	}
}

func TestPlanStepRules(t *testing.T) {
	cases := []struct {
		name string
		in   PlanInput
		want []Step
	}{
		{
			name: "everything disabled",
			in:   PlanInput{Settings: planSettings{steps: map[Step]bool{}}},
			want: []Step{StepRating},
		},
		{
			name: "tags and message follow settings",
			in:   PlanInput{Settings: planSettings{steps: allSteps()}},
			want: []Step{StepRating, StepTags, StepMessage},
		},
		{
			name: "reminder after the very first entry",
			in:   PlanInput{Settings: planSettings{steps: allSteps()}, EntryCount: 1},
			want: []Step{StepRating, StepTags, StepMessage, StepReminder},
		},
		{
			name: "no reminder on second entry",
			in:   PlanInput{Settings: planSettings{steps: allSteps()}, EntryCount: 2},
			want: []Step{StepRating, StepTags, StepMessage},
		},
		{
			name: "no reminder when already enabled",
			in:   PlanInput{Settings: planSettings{steps: allSteps(), reminder: true}, EntryCount: 1},
			want: []Step{StepRating, StepTags, StepMessage},
		},
		{
			name: "no reminder when editing",
			in:   PlanInput{Settings: planSettings{steps: allSteps()}, EntryCount: 1, Editing: true},
			want: []Step{StepRating, StepTags, StepMessage},
		},
		{
			name: "feedback with question and three entries",
			in:   PlanInput{Settings: planSettings{steps: allSteps()}, EntryCount: 3, HasQuestion: true},
			want: []Step{StepRating, StepTags, StepMessage, StepFeedback},
		},
		{
			name: "no feedback when editing",
			in:   PlanInput{Settings: planSettings{steps: allSteps()}, EntryCount: 3, HasQuestion: true, Editing: true},
			want: []Step{StepRating, StepTags, StepMessage},
		},
		{
			name: "no feedback without question",
			in:   PlanInput{Settings: planSettings{steps: allSteps()}, EntryCount: 3},
			want: []Step{StepRating, StepTags, StepMessage},
		},
		{
			name: "no feedback when step disabled",
			in: PlanInput{
				Settings:    planSettings{steps: map[Step]bool{StepTags: true, StepMessage: true}},
				EntryCount:  4,
				HasQuestion: true,
			},
			want: []Step{StepRating, StepTags, StepMessage},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Plan(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("plan = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("plan = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestPlanIsIdempotent(t *testing.T) {
	in := PlanInput{Settings: planSettings{steps: allSteps()}, EntryCount: 3, HasQuestion: true}
	first := Plan(in)
	second := Plan(in)
	if len(first) != len(second) {
		t.Fatalf("repeated plan differs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated plan differs: %v vs %v", first, second)
		}
	}
}
