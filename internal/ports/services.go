package ports

import (
	"context"
	"time"

	"github.com/navyajewels/backoffice/internal/domain/entities"
)

// UserService interface for customer account operations
type UserService interface {
	ListUsers(ctx context.Context) []entities.User
	GetUser(ctx context.Context, id string) (entities.User, error)
	CountUsers(ctx context.Context) int
}

// OrderService interface for order management operations
type OrderService interface {
	ListOrders(ctx context.Context, filter OrderFilter) []entities.Order
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ConfirmOrder(ctx context.Context, id string) (entities.Order, error)
	MarkDelivered(ctx context.Context, id string) (entities.Order, error)
	RemoveOrder(ctx context.Context, id string) error
}

// EnquiryService interface for contact enquiry operations
type EnquiryService interface {
	ListEnquiries(ctx context.Context, filter EnquiryFilter) []entities.Contact
	GetEnquiry(ctx context.Context, id string) (entities.Contact, error)
	MarkDone(ctx context.Context, id string) (entities.Contact, error)
	RemoveEnquiry(ctx context.Context, id string) error
}

// SummaryService interface for the shop-wide overview
type SummaryService interface {
	Summarize(ctx context.Context) Summary
}

// SeedService interface for demo data generation
type SeedService interface {
	Seed(ctx context.Context, req SeedRequest) (SeedReport, error)
}

// VerifyService interface for data file integrity checks
type VerifyService interface {
	Verify(ctx context.Context) VerifyReport
}

// SeedRequest sizes the demo dataset. Force overwrites collections
// that already hold records.
type SeedRequest struct {
	Users     int
	Orders    int
	Enquiries int
	Force     bool
}

// Report Types

// Summary aggregates headline numbers across all collections.
type Summary struct {
	Users            int
	Orders           int
	OrdersByStatus   map[entities.OrderStatus]int
	OpenOrders       int
	Revenue          float64
	DeliveredRevenue float64
	Enquiries        int
	PendingEnquiries int
	GeneratedAt      time.Time
}

// SeedReport describes what the seeder wrote and where.
type SeedReport struct {
	DataDir   string
	Users     int
	Orders    int
	Enquiries int
}

// VerifyReport collects integrity findings across all collection files.
type VerifyReport struct {
	Collections []CollectionStat
	Issues      []VerifyIssue
}

// OK reports whether verification finished without findings.
func (r VerifyReport) OK() bool {
	if len(r.Issues) > 0 {
		return false
	}
	for _, stat := range r.Collections {
		if stat.Err != nil {
			return false
		}
	}
	return true
}

// VerifyIssue pinpoints one problem in one record of one collection.
type VerifyIssue struct {
	Collection string
	RecordID   string
	Field      string
	Message    string
}
