package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

// NewVerifyCommand creates the verify command
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the data files for structural problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			report := app.verify.Verify(cmd.Context())
			app.render.VerifyReport(report)

			if !report.OK() {
				return errors.New("verification failed")
			}
			return nil
		},
	}
}
