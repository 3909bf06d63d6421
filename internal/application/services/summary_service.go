package services

import (
	"context"
	"time"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// SummaryService aggregates headline numbers across all collections
type SummaryService struct {
	userRepo    ports.UserRepository
	orderRepo   ports.OrderRepository
	enquiryRepo ports.EnquiryRepository
	logger      *logger.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	userRepo ports.UserRepository,
	orderRepo ports.OrderRepository,
	enquiryRepo ports.EnquiryRepository,
	logger *logger.Logger,
) *SummaryService {
	return &SummaryService{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		enquiryRepo: enquiryRepo,
		logger:      logger,
	}
}

// Summarize computes the shop-wide overview. Collections that cannot
// be read count as empty, so the overview always renders.
func (s *SummaryService) Summarize(ctx context.Context) ports.Summary {
	orders := s.orderRepo.List(ctx, ports.OrderFilter{})
	contacts := s.enquiryRepo.List(ctx, ports.EnquiryFilter{})

	summary := ports.Summary{
		Users:          s.userRepo.Count(ctx),
		Orders:         len(orders),
		OrdersByStatus: make(map[entities.OrderStatus]int),
		Enquiries:      len(contacts),
		GeneratedAt:    time.Now(),
	}

	for _, order := range orders {
		summary.OrdersByStatus[order.Status]++
		summary.Revenue += order.Total
		if order.IsOpen() {
			summary.OpenOrders++
		}
		if order.Status == entities.OrderStatusDelivered {
			summary.DeliveredRevenue += order.Total
		}
	}

	for _, contact := range contacts {
		if contact.IsPending() {
			summary.PendingEnquiries++
		}
	}

	return summary
}
