package commands

import (
	"github.com/spf13/cobra"
)

// NewSummaryCommand creates the summary command
func NewSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the shop-wide overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			app.render.Summary(app.summary.Summarize(cmd.Context()))
			return nil
		},
	}
}
