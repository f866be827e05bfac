package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/commands/options"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/prompt"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/runner/view"
)

func addView(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	del := false

	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "Show a single entry, optionally deleting it.",
		Example: `
pixy view 4cd3f8a2
pixy view 4cd3f8a2 --delete
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			v := view.View{
				ID:          args[0],
				ShowID:      io.ShowID,
				Delete:      del,
				Persistence: env.Persistence,
				Prompter:    prompt.New(),
				Telemetry:   env.Telemetry,
			}
			return v.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&del, "delete", false,
		"Delete the entry after showing it, asking first when it holds notes or tags.")

	topLevel.AddCommand(cmd)
}
