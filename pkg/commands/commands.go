package commands

import (
	"github.com/spf13/cobra"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/settings"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/store"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/telemetry"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pixy",
		Short: "Track how the days feel, one entry at a time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addView(topLevel)
	addList(topLevel)
	addStats(topLevel)
	addTags(topLevel)
	addSteps(topLevel)
	addReminder(topLevel)
	addVersion(topLevel)
}

// environment wires the shared collaborators every command needs: the
// resolved config, the entry store, the settings store, and a telemetry
// sink honoring the analytics opt-out.
type environment struct {
	Config      store.Config
	Persistence store.Persistence
	Settings    *settings.Store
	Telemetry   composer.Telemetry
}

func loadEnvironment() (*environment, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	s, err := settings.Open(cfg.BasePath())
	if err != nil {
		return nil, err
	}

	var sink composer.Telemetry = telemetry.Noop{}
	if cfg.AnalyticsEnabled() {
		rec, err := telemetry.NewRecorder(cfg.BasePath())
		if err != nil {
			return nil, err
		}
		sink = rec
	}

	return &environment{
		Config:      cfg,
		Persistence: p,
		Settings:    s,
		Telemetry:   sink,
	}, nil
}
