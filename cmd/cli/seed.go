package cli

import (
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo hotel catalog",
		Long:  "Apply pending migrations, then insert the demo hotels and rooms. Hotels that already exist are skipped.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runOnce(maintenanceOptions{migrate: true, seed: true})
		},
	}
}
