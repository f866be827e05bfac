package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/runner/configure"
)

func addSteps(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "steps [step]",
		Short:     "Show wizard steps, or toggle one of tags, message, feedback.",
		ValidArgs: []string{"tags", "message", "feedback"},
		Args:      cobra.MaximumNArgs(1),
		Example: `
pixy steps
pixy steps message
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			s := configure.Steps{
				Settings:  env.Settings,
				Telemetry: env.Telemetry,
			}
			if len(args) == 1 {
				s.Step = args[0]
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
