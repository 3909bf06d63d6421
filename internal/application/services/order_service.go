package services

import (
	"context"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// OrderService handles order management operations
type OrderService struct {
	orderRepo ports.OrderRepository
	logger    *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo ports.OrderRepository, logger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ListOrders returns orders in file order, optionally filtered
func (s *OrderService) ListOrders(ctx context.Context, filter ports.OrderFilter) []entities.Order {
	return s.orderRepo.List(ctx, filter)
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ConfirmOrder marks an order as confirmed and persists the change
func (s *OrderService) ConfirmOrder(ctx context.Context, id string) (entities.Order, error) {
	order, err := s.orderRepo.UpdateStatus(ctx, id, entities.OrderStatusConfirmed)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Infow("Order confirmed",
		"order_id", order.ID,
		"customer", order.CustomerName,
	)

	return order, nil
}

// MarkDelivered marks an order as delivered and persists the change
func (s *OrderService) MarkDelivered(ctx context.Context, id string) (entities.Order, error) {
	order, err := s.orderRepo.UpdateStatus(ctx, id, entities.OrderStatusDelivered)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Infow("Order delivered",
		"order_id", order.ID,
		"customer", order.CustomerName,
	)

	return order, nil
}

// RemoveOrder deletes an order permanently
func (s *OrderService) RemoveOrder(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("Order removed", "order_id", id)

	return nil
}
