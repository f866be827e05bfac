package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/runner/report"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the mood histogram and tag usage.",
		Example: `
pixy stats
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			r := report.Report{
				Persistence: env.Persistence,
				Settings:    env.Settings,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
