package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/runner/tag"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/settings"
)

func addTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage the tags offered by the wizard.",
		Example: `
pixy tags
pixy tags add gym --color lime
pixy tags rm 4cd3f8a2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			l := tag.List{Settings: env.Settings}
			return l.Do(context.Background())
		},
	}

	addTagsAdd(cmd)
	addTagsRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTagsAdd(parent *cobra.Command) {
	color := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a tag.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			a := tag.Add{
				Title:     strings.Join(args, " "),
				Color:     color,
				Settings:  env.Settings,
				Telemetry: env.Telemetry,
			}
			return a.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&color, "color", "",
		"Tag color, one of: "+strings.Join(settings.ColorNames, ", ")+".")
	parent.AddCommand(cmd)
}

func addTagsRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a tag. Entries keep their history.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			r := tag.Remove{ID: args[0], Settings: env.Settings}
			return r.Do(context.Background())
		},
	}

	parent.AddCommand(cmd)
}
