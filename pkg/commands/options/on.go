package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOShort = "01-02"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2026-02-28" or --on="02-28".`)
}

// GetOn resolves the flag to a full 2006-01-02 day, letting a short month-day
// form borrow the current year. Empty means today.
func (o *OnOptions) GetOn() (string, error) {
	if o.OnString == "" {
		return time.Now().Format(layoutISO), nil
	}
	if t, err := time.Parse(layoutISO, o.OnString); err == nil {
		return t.Format(layoutISO), nil
	}
	t, err := time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return "", err
	}
	t = t.AddDate(time.Now().Year(), 0, 0)
	return t.Format(layoutISO), nil
}
