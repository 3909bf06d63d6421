package ports

import (
	"context"

	"github.com/navyajewels/backoffice/internal/domain/entities"
)

// UserRepository defines the interface for customer account data operations
type UserRepository interface {
	List(ctx context.Context) []entities.User
	GetByID(ctx context.Context, id string) (entities.User, error)
	Count(ctx context.Context) int
	Replace(ctx context.Context, users []entities.User) error
	Stat(ctx context.Context) CollectionStat
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	List(ctx context.Context, filter OrderFilter) []entities.Order
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
	Replace(ctx context.Context, orders []entities.Order) error
	Stat(ctx context.Context) CollectionStat
}

// EnquiryRepository defines the interface for contact enquiry data operations
type EnquiryRepository interface {
	List(ctx context.Context, filter EnquiryFilter) []entities.Contact
	GetByID(ctx context.Context, id string) (entities.Contact, error)
	UpdateStatus(ctx context.Context, id string, status entities.EnquiryStatus) (entities.Contact, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
	Replace(ctx context.Context, contacts []entities.Contact) error
	Stat(ctx context.Context) CollectionStat
}

// Filter types for repository queries
type OrderFilter struct {
	Status *entities.OrderStatus
	UserID *string
}

type EnquiryFilter struct {
	Status *entities.EnquiryStatus
}

// CollectionStat describes the on-disk state of one collection file.
type CollectionStat struct {
	Path    string
	Exists  bool
	Records int
	Err     error
}
