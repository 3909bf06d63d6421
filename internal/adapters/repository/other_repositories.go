package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// OrderRepositoryImpl implements the OrderRepository interface over the
// orders collection file
type OrderRepositoryImpl struct {
	coll *Collection[entities.Order]
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(path string, log *logger.Logger) ports.OrderRepository {
	return &OrderRepositoryImpl{
		coll: NewCollection[entities.Order](path, "orders", func(o *entities.Order) {
			o.Normalize()
		}, log),
	}
}

func (r *OrderRepositoryImpl) List(ctx context.Context, filter ports.OrderFilter) []entities.Order {
	orders := r.coll.Load(ctx)
	if filter.Status == nil && filter.UserID == nil {
		return orders
	}

	filtered := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		if filter.UserID != nil && order.UserID != *filter.UserID {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id string) (entities.Order, error) {
	order, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	order, err := r.coll.Mutate(ctx, id, func(o *entities.Order) {
		o.Status = status
	})
	if err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return entities.Order{}, entities.ErrOrderNotFound
		}
		return entities.Order{}, fmt.Errorf("update order status: %w", err)
	}
	return order, nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.coll.Remove(ctx, id); err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return entities.ErrOrderNotFound
		}
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepositoryImpl) Count(ctx context.Context) int {
	return r.coll.Count(ctx)
}

func (r *OrderRepositoryImpl) Replace(ctx context.Context, orders []entities.Order) error {
	return r.coll.Replace(ctx, orders)
}

func (r *OrderRepositoryImpl) Stat(ctx context.Context) ports.CollectionStat {
	return r.coll.Stat(ctx)
}

// EnquiryRepositoryImpl implements the EnquiryRepository interface over
// the contacts collection file
type EnquiryRepositoryImpl struct {
	coll *Collection[entities.Contact]
}

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(path string, log *logger.Logger) ports.EnquiryRepository {
	return &EnquiryRepositoryImpl{
		coll: NewCollection[entities.Contact](path, "contacts", func(c *entities.Contact) {
			c.Normalize()
		}, log),
	}
}

func (r *EnquiryRepositoryImpl) List(ctx context.Context, filter ports.EnquiryFilter) []entities.Contact {
	contacts := r.coll.Load(ctx)
	if filter.Status == nil {
		return contacts
	}

	filtered := make([]entities.Contact, 0, len(contacts))
	for _, contact := range contacts {
		if contact.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, contact)
	}
	return filtered
}

func (r *EnquiryRepositoryImpl) GetByID(ctx context.Context, id string) (entities.Contact, error) {
	contact, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return entities.Contact{}, entities.ErrEnquiryNotFound
	}
	return contact, nil
}

func (r *EnquiryRepositoryImpl) UpdateStatus(ctx context.Context, id string, status entities.EnquiryStatus) (entities.Contact, error) {
	contact, err := r.coll.Mutate(ctx, id, func(c *entities.Contact) {
		c.Status = status
	})
	if err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return entities.Contact{}, entities.ErrEnquiryNotFound
		}
		return entities.Contact{}, fmt.Errorf("update enquiry status: %w", err)
	}
	return contact, nil
}

func (r *EnquiryRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.coll.Remove(ctx, id); err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return entities.ErrEnquiryNotFound
		}
		return fmt.Errorf("delete enquiry: %w", err)
	}
	return nil
}

func (r *EnquiryRepositoryImpl) Count(ctx context.Context) int {
	return r.coll.Count(ctx)
}

func (r *EnquiryRepositoryImpl) Replace(ctx context.Context, contacts []entities.Contact) error {
	return r.coll.Replace(ctx, contacts)
}

func (r *EnquiryRepositoryImpl) Stat(ctx context.Context) ports.CollectionStat {
	return r.coll.Stat(ctx)
}
