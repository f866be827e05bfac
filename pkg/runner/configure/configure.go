// Package configure provides the runners for wizard step and reminder
// preferences.
package configure

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/settings"
)

// Steps toggles one optional wizard step, or lists step state when Step is
// empty.
type Steps struct {
	Step      string
	Settings  *settings.Store
	Telemetry composer.Telemetry
}

func (n *Steps) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not configure steps, no settings")
	}

	if n.Step == "" {
		n.list()
		return nil
	}

	step, err := composer.ParseStep(n.Step)
	if err != nil {
		return err
	}
	if err := n.Settings.ToggleStep(step); err != nil {
		return err
	}
	if n.Telemetry != nil && !n.Settings.HasStep(step) {
		n.Telemetry.Track("step_disabled", map[string]any{"step": string(step)})
	}
	n.list()
	return nil
}

func (n *Steps) list() {
	fmt.Println("")
	for _, step := range composer.OptionalSteps {
		state := color.GreenString("on")
		if !n.Settings.HasStep(step) {
			state = color.RedString("off")
		}
		fmt.Printf("%-10s %s\n", step, state)
	}
}

// Reminder switches the daily reminder preference.
type Reminder struct {
	Enabled   bool
	Settings  *settings.Store
	Telemetry composer.Telemetry
}

func (n *Reminder) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not configure reminder, no settings")
	}
	if err := n.Settings.SetReminderEnabled(n.Enabled); err != nil {
		return err
	}
	if n.Telemetry != nil && n.Enabled {
		n.Telemetry.Track("reminder_enabled", nil)
	}
	if n.Enabled {
		fmt.Println("reminder on")
	} else {
		fmt.Println("reminder off")
	}
	return nil
}
