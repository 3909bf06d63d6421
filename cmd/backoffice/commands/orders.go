package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/ports"
)

// NewOrdersCommand creates the orders command with subcommands
func NewOrdersCommand() *cobra.Command {
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Browse and manage storefront orders",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			filter := ports.OrderFilter{}

			statusFlag, _ := cmd.Flags().GetString("status")
			if statusFlag != "" {
				status, err := entities.ParseOrderStatus(statusFlag)
				if err != nil {
					return err
				}
				filter.Status = &status
			}

			userFlag, _ := cmd.Flags().GetString("user")
			if userFlag != "" {
				filter.UserID = &userFlag
			}

			app.render.OrdersTable(app.orders.ListOrders(cmd.Context(), filter))
			return nil
		},
	}
	listCmd.Flags().String("status", "", "filter by status (Pending, Confirmed, Delivered)")
	listCmd.Flags().String("user", "", "filter by customer id")
	ordersCmd.AddCommand(listCmd)

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			order, err := app.orders.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			app.render.OrderDetail(order)
			return nil
		},
	})

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "confirm <id>",
		Short: "Mark an order as confirmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			order, err := app.orders.ConfirmOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", order.ID, order.Status)
			return nil
		},
	})

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "deliver <id>",
		Short: "Mark an order as delivered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			order, err := app.orders.MarkDelivered(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", order.ID, order.Status)
			return nil
		},
	})

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an order permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm(cmd, fmt.Sprintf("Delete order %s permanently?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if err := app.orders.RemoveOrder(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %s removed\n", args[0])
			return nil
		},
	}
	removeCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	ordersCmd.AddCommand(removeCmd)

	return ordersCmd
}
