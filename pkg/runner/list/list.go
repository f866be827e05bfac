// Package list provides the runner that prints the journal, optionally
// live-updating as the store changes on disk.
package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/printers"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/store"
)

const monthLayout = "2006-01"

// List prints entries, newest month first within creation order.
type List struct {
	ShowID      bool
	Month       string // limit to one month, formatted 2006-01
	Watch       bool
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	if err := n.print(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for range events {
		if err := n.print(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (n *List) print(ctx context.Context) error {
	all := n.Persistence.All(ctx)
	all = n.filtered(all)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	if n.Month != "" {
		pp.Title(n.Month)
	} else {
		pp.Title(fmt.Sprintf("%d entries", len(all)))
	}
	pp.Entries(all...)
	return nil
}

func (n *List) filtered(all []*mood.Entry) []*mood.Entry {
	if n.Month == "" {
		return all
	}
	c := make([]*mood.Entry, 0, len(all))
	for _, e := range all {
		if e.Created().Format(monthLayout) == n.Month {
			c = append(c, e)
		}
	}
	return c
}
