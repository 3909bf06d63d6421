package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/ports"
)

// NewEnquiriesCommand creates the enquiries command with subcommands
func NewEnquiriesCommand() *cobra.Command {
	enquiriesCmd := &cobra.Command{
		Use:     "enquiries",
		Aliases: []string{"contacts"},
		Short:   "Browse and manage contact enquiries",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List enquiries",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			filter := ports.EnquiryFilter{}

			statusFlag, _ := cmd.Flags().GetString("status")
			if statusFlag != "" {
				status, err := entities.ParseEnquiryStatus(statusFlag)
				if err != nil {
					return err
				}
				filter.Status = &status
			}

			app.render.EnquiriesTable(app.enquiries.ListEnquiries(cmd.Context(), filter))
			return nil
		},
	}
	listCmd.Flags().String("status", "", "filter by status (Pending, Done)")
	enquiriesCmd.AddCommand(listCmd)

	enquiriesCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one enquiry with its full message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			contact, err := app.enquiries.GetEnquiry(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			app.render.EnquiryDetail(contact)
			return nil
		},
	})

	enquiriesCmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Mark an enquiry as handled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			contact, err := app.enquiries.MarkDone(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Enquiry %s is now %s\n", contact.ID, contact.Status)
			return nil
		},
	})

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an enquiry permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm(cmd, fmt.Sprintf("Delete enquiry %s permanently?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if err := app.enquiries.RemoveEnquiry(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Enquiry %s removed\n", args[0])
			return nil
		},
	}
	removeCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	enquiriesCmd.AddCommand(removeCmd)

	return enquiriesCmd
}
