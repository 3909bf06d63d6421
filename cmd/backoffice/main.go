package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/navyajewels/backoffice/cmd/backoffice/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backoffice",
		Short: "Navya Jewels admin console",
		Long: `Backoffice is the admin console for the Navya Jewels storefront.
It reads and edits the same JSON data files the shop writes, so orders,
customers and contact enquiries can be managed straight from a terminal.`,
		SilenceUsage: true,
	}

	commands.RegisterGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewOrdersCommand())
	rootCmd.AddCommand(commands.NewEnquiriesCommand())
	rootCmd.AddCommand(commands.NewSummaryCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVerifyCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
