package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/ports"
)

// The storefront shows timestamps like "02 Nov 2025  |  03:15:00 PM",
// so the console does too.
const whenLayout = "02 Jan 2006  |  03:04:05 PM"

// Renderer writes tables and detail views for terminal display.
type Renderer struct {
	w       io.Writer
	printer *message.Printer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:       w,
		printer: message.NewPrinter(language.MustParse("en-IN")),
	}
}

// Money renders a rupee amount with Indian digit grouping.
func (r *Renderer) Money(amount float64) string {
	return r.printer.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// UsersTable lists customer accounts.
func (r *Renderer) UsersTable(users []entities.User) {
	if len(users) == 0 {
		fmt.Fprintln(r.w, "No users found.")
		return
	}

	fmt.Fprintf(r.w, "%-38s %-22s %-30s %s\n", "ID", "NAME", "EMAIL", "PHONE")
	for _, user := range users {
		fmt.Fprintf(r.w, "%-38s %-22s %-30s %s\n",
			user.ID,
			truncate(user.Name, 22),
			truncate(user.Email, 30),
			orDash(user.Phone),
		)
	}
	fmt.Fprintf(r.w, "\n%d users\n", len(users))
}

// UserDetail shows one customer account.
func (r *Renderer) UserDetail(user entities.User) {
	fmt.Fprintf(r.w, "User    %s\n", user.ID)
	fmt.Fprintf(r.w, "Name    %s\n", orDash(user.Name))
	fmt.Fprintf(r.w, "Email   %s\n", orDash(user.Email))
	fmt.Fprintf(r.w, "Phone   %s\n", orDash(user.Phone))
}

// OrdersTable lists orders with their headline figures.
func (r *Renderer) OrdersTable(orders []entities.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(r.w, "No orders found.")
		return
	}

	fmt.Fprintf(r.w, "%-38s %-22s %-14s %5s %12s  %s\n", "ID", "CUSTOMER", "CITY", "ITEMS", "TOTAL", "STATUS")
	for _, order := range orders {
		fmt.Fprintf(r.w, "%-38s %-22s %-14s %5d %12s  %s\n",
			order.ID,
			truncate(order.CustomerName, 22),
			truncate(orDash(order.City), 14),
			order.ItemCount(),
			r.Money(order.Total),
			order.Status,
		)
	}
	fmt.Fprintf(r.w, "\n%d orders\n", len(orders))
}

// OrderDetail shows one order with its item lines.
func (r *Renderer) OrderDetail(order entities.Order) {
	fmt.Fprintf(r.w, "Order      %s\n", order.ID)
	fmt.Fprintf(r.w, "Placed     %s\n", formatWhen(order.CreatedAt))
	fmt.Fprintf(r.w, "Status     %s\n", order.Status)
	if order.UserID != "" {
		fmt.Fprintf(r.w, "Customer   %s (%s)\n", orDash(order.CustomerName), order.UserID)
	} else {
		fmt.Fprintf(r.w, "Customer   %s\n", orDash(order.CustomerName))
	}
	fmt.Fprintf(r.w, "Phone      %s\n", orDash(order.Phone))
	fmt.Fprintf(r.w, "Ship to    %s\n", shipTo(order))
	fmt.Fprintf(r.w, "Payment    %s\n", orDash(order.PaymentMethod))

	if len(order.Items) > 0 {
		fmt.Fprintf(r.w, "\n%5s  %-26s %12s %12s\n", "QTY", "ITEM", "PRICE", "AMOUNT")
		for _, item := range order.Items {
			fmt.Fprintf(r.w, "%5d  %-26s %12s %12s\n",
				item.Quantity,
				truncate(item.Name, 26),
				r.Money(item.Price),
				r.Money(item.LineTotal()),
			)
		}
	}

	fmt.Fprintf(r.w, "\nTotal  %s\n", r.Money(order.Total))
}

// EnquiriesTable lists contact enquiries.
func (r *Renderer) EnquiriesTable(contacts []entities.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(r.w, "No enquiries found.")
		return
	}

	fmt.Fprintf(r.w, "%-38s %-20s %-8s %s\n", "ID", "NAME", "STATUS", "MESSAGE")
	for _, contact := range contacts {
		fmt.Fprintf(r.w, "%-38s %-20s %-8s %s\n",
			contact.ID,
			truncate(contact.Name, 20),
			contact.Status,
			truncate(contact.Message, 44),
		)
	}
	fmt.Fprintf(r.w, "\n%d enquiries\n", len(contacts))
}

// EnquiryDetail shows one contact enquiry with its full message.
func (r *Renderer) EnquiryDetail(contact entities.Contact) {
	fmt.Fprintf(r.w, "Enquiry    %s\n", contact.ID)
	fmt.Fprintf(r.w, "Received   %s\n", formatWhen(contact.CreatedAt))
	fmt.Fprintf(r.w, "Status     %s\n", contact.Status)
	fmt.Fprintf(r.w, "From       %s\n", orDash(contact.Name))
	fmt.Fprintf(r.w, "Email      %s\n", orDash(contact.Email))
	fmt.Fprintf(r.w, "Phone      %s\n", orDash(contact.Phone))
	fmt.Fprintln(r.w, "Message")
	for _, line := range strings.Split(orDash(contact.Message), "\n") {
		fmt.Fprintf(r.w, "  %s\n", line)
	}
}

// Summary shows the shop-wide overview.
func (r *Renderer) Summary(summary ports.Summary) {
	fmt.Fprintln(r.w, "NAVYA JEWELS BACKOFFICE")
	fmt.Fprintln(r.w, summary.GeneratedAt.Format(whenLayout))
	fmt.Fprintln(r.w)

	fmt.Fprintf(r.w, "Customers   %5d\n", summary.Users)
	fmt.Fprintf(r.w, "Orders      %5d  (%d open)\n", summary.Orders, summary.OpenOrders)
	for _, status := range []entities.OrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusConfirmed,
		entities.OrderStatusDelivered,
	} {
		if count := summary.OrdersByStatus[status]; count > 0 {
			fmt.Fprintf(r.w, "  %-10s%5d\n", status, count)
		}
	}
	fmt.Fprintf(r.w, "Revenue     %s\n", r.Money(summary.Revenue))
	if summary.DeliveredRevenue > 0 {
		fmt.Fprintf(r.w, "  delivered %s\n", r.Money(summary.DeliveredRevenue))
	}
	fmt.Fprintf(r.w, "Enquiries   %5d  (%d pending)\n", summary.Enquiries, summary.PendingEnquiries)
}

// SeedReport confirms what the seeder wrote.
func (r *Renderer) SeedReport(report ports.SeedReport) {
	fmt.Fprintf(r.w, "Wrote demo data to %s\n", report.DataDir)
	fmt.Fprintf(r.w, "  users     %d\n", report.Users)
	fmt.Fprintf(r.w, "  orders    %d\n", report.Orders)
	fmt.Fprintf(r.w, "  contacts  %d\n", report.Enquiries)
}

// VerifyReport shows file states and any findings.
func (r *Renderer) VerifyReport(report ports.VerifyReport) {
	fmt.Fprintln(r.w, "COLLECTION FILES")
	for _, stat := range report.Collections {
		name := filepath.Base(stat.Path)
		switch {
		case stat.Err != nil:
			fmt.Fprintf(r.w, "  %-16s ERROR: %v\n", name, stat.Err)
		case !stat.Exists:
			fmt.Fprintf(r.w, "  %-16s missing (treated as empty)\n", name)
		default:
			fmt.Fprintf(r.w, "  %-16s %d records\n", name, stat.Records)
		}
	}

	fmt.Fprintln(r.w)
	if len(report.Issues) == 0 {
		fmt.Fprintln(r.w, "No issues found.")
		return
	}

	fmt.Fprintf(r.w, "ISSUES (%d)\n", len(report.Issues))
	for _, issue := range report.Issues {
		where := issue.Collection
		if issue.RecordID != "" {
			where += "/" + issue.RecordID
		}
		if issue.Field != "" {
			where += " " + issue.Field
		}
		fmt.Fprintf(r.w, "  %s: %s\n", where, issue.Message)
	}
}

func formatWhen(raw string) string {
	if raw == "" {
		return "-"
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(whenLayout)
	}
	// The storefront has written a few formats over time; show
	// anything unparseable as-is.
	return raw
}

func shipTo(order entities.Order) string {
	parts := make([]string, 0, 3)
	if order.Address != "" {
		parts = append(parts, order.Address)
	}
	if order.City != "" {
		parts = append(parts, order.City)
	}
	if order.Pincode != "" {
		parts = append(parts, order.Pincode)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
