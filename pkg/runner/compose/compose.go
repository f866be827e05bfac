// Package compose provides the runner that opens the composition wizard.
package compose

import (
	"context"
	"errors"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/question"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/settings"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/store"
	composertui "github.com/jtsilverio/pixy-mood-tracker-app/pkg/tui/composer"
)

// Compose drives one full wizard run in the terminal.
type Compose struct {
	Persistence store.Persistence
	Settings    *settings.Store
	Telemetry   composer.Telemetry
	Questions   question.Provider

	// ExistingID selects an entry to edit; empty logs a new one.
	ExistingID  string
	StartStep   composer.Step
	Date        string
	ShowDisable bool
}

func (n *Compose) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not compose, no persistence")
	}
	if n.Settings == nil {
		return errors.New("can not compose, no settings")
	}

	// A feedback question is optional context, never a reason to block
	// the wizard.
	var q *composer.Question
	if n.Questions != nil {
		if fetched, err := n.Questions.Question(ctx); err == nil && fetched != nil {
			q = &composer.Question{ID: fetched.ID, Text: fetched.Text}
		}
	}

	return composertui.Run(ctx, composertui.Config{
		Logs:        n.Persistence,
		Settings:    n.Settings,
		Telemetry:   n.Telemetry,
		Question:    q,
		ExistingID:  n.ExistingID,
		StartStep:   n.StartStep,
		Date:        n.Date,
		ShowDisable: n.ShowDisable,
	})
}
