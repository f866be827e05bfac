// Package view provides the runner for inspecting and deleting one entry.
package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/printers"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/store"
)

// View prints a single entry and optionally deletes it.
type View struct {
	ID          string
	ShowID      bool
	Delete      bool
	Persistence store.Persistence
	Prompter    composer.Prompter
	Telemetry   composer.Telemetry
}

func (n *View) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not view, no persistence")
	}
	if n.ID == "" {
		return errors.New("can not view, no id")
	}

	e, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Entry(e)

	if !n.Delete {
		return nil
	}

	// Entries with no message and no tags are cheap to recreate, so those
	// are removed without asking.
	confirmed := true
	if composer.NeedsRemoveConfirmation(e) && n.Prompter != nil {
		n.Prompter.Ask(composer.PromptRemove, func(ok bool) {
			confirmed = ok
		})
	}
	if !confirmed {
		return nil
	}

	if err := n.Persistence.Delete(ctx, n.ID); err != nil {
		return err
	}
	if n.Telemetry != nil {
		n.Telemetry.Track("log_deleted", nil)
	}
	fmt.Println("deleted", e.Title())
	return nil
}
