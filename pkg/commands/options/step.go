package options

import (
	"github.com/spf13/cobra"
)

// StepOptions
type StepOptions struct {
	StepName string
}

func AddStepArgs(cmd *cobra.Command, o *StepOptions) {
	cmd.Flags().StringVar(&o.StepName, "step", "",
		"Open the wizard on this step: rating, tags, message, reminder or feedback.")
}
