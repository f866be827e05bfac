// Package report provides the runner for mood and tag statistics.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/printers"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/settings"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/stats"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/store"
)

// Report prints the rating histogram and the tag usage distribution.
type Report struct {
	Persistence store.Persistence
	Settings    *settings.Store
}

func (n *Report) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report, no persistence")
	}
	if n.Settings == nil {
		return errors.New("can not report, no settings")
	}

	all := n.Persistence.All(ctx)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("%d entries", len(all)))
	pp.NewLine()
	pp.RatingsDistribution(stats.Ratings(all))
	pp.NewLine()
	pp.TagsDistribution(stats.Tags(all, n.Settings.Tags()))

	return nil
}
