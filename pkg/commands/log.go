package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/commands/options"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/question"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/runner/compose"
)

func addLog(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	so := &options.StepOptions{}
	showDisable := false

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Open the wizard to log or edit an entry.",
		Example: `
pixy log
pixy log --on 2026-08-30
pixy log --edit 4cd3f8a2 --step message
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			var step composer.Step
			if so.StepName != "" {
				if step, err = composer.ParseStep(so.StepName); err != nil {
					return err
				}
			}

			var provider question.Provider = question.NewStatic()
			if url := env.Config.QuestionsURL(); url != "" {
				provider = question.NewHTTP(url)
			}

			c := compose.Compose{
				Persistence: env.Persistence,
				Settings:    env.Settings,
				Telemetry:   env.Telemetry,
				Questions:   provider,
				ExistingID:  io.ID,
				StartStep:   step,
				Date:        on,
				ShowDisable: showDisable || env.Config.ShowDisable(),
			}
			return c.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddEditArgs(cmd, io)
	options.AddStepArgs(cmd, so)
	cmd.Flags().BoolVar(&showDisable, "show-disable", false,
		"Offer disabling optional steps from inside the wizard.")

	topLevel.AddCommand(cmd)
}
