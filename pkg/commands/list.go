package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/commands/options"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	month := ""
	watch := false

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first.",
		Example: `
pixy list
pixy list --month 2026-08
pixy list --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			l := list.List{
				ShowID:      io.ShowID,
				Month:       month,
				Watch:       watch,
				Persistence: env.Persistence,
			}
			return l.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&month, "month", "", `Limit to one month, example: --month="2026-08".`)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep running and reprint whenever the journal changes on disk.")

	topLevel.AddCommand(cmd)
}
