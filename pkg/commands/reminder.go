package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/runner/configure"
)

func addReminder(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "reminder on|off",
		Short:     "Switch the daily reminder preference.",
		ValidArgs: []string{"on", "off"},
		Args:      cobra.ExactArgs(1),
		Example: `
pixy reminder on
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled := false
			switch args[0] {
			case "on":
				enabled = true
			case "off":
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}

			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			r := configure.Reminder{
				Enabled:   enabled,
				Settings:  env.Settings,
				Telemetry: env.Telemetry,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
