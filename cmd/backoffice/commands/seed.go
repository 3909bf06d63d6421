package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/ports"
)

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write demo data into the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			req := ports.SeedRequest{}
			req.Users, _ = cmd.Flags().GetInt("users")
			req.Orders, _ = cmd.Flags().GetInt("orders")
			req.Enquiries, _ = cmd.Flags().GetInt("enquiries")
			req.Force, _ = cmd.Flags().GetBool("force")

			report, err := app.seed.Seed(cmd.Context(), req)
			if errors.Is(err, entities.ErrDataNotEmpty) {
				return fmt.Errorf("%w (pass --force to overwrite)", err)
			}
			if err != nil {
				return err
			}

			app.render.SeedReport(report)
			return nil
		},
	}
	seedCmd.Flags().Int("users", 4, "number of demo customers")
	seedCmd.Flags().Int("orders", 5, "number of demo orders")
	seedCmd.Flags().Int("enquiries", 3, "number of demo enquiries")
	seedCmd.Flags().Bool("force", false, "overwrite collections that already hold records")

	return seedCmd
}
