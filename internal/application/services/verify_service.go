package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// Order totals are rupee amounts, so anything beyond a paisa is a
// real discrepancy.
const totalTolerance = 0.01

// VerifyService checks the collection files for structural problems
// the storefront or manual edits may have introduced
type VerifyService struct {
	userRepo    ports.UserRepository
	orderRepo   ports.OrderRepository
	enquiryRepo ports.EnquiryRepository
	validate    *validator.Validate
	logger      *logger.Logger
}

// NewVerifyService creates a new verify service
func NewVerifyService(
	userRepo ports.UserRepository,
	orderRepo ports.OrderRepository,
	enquiryRepo ports.EnquiryRepository,
	logger *logger.Logger,
) *VerifyService {
	return &VerifyService{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		enquiryRepo: enquiryRepo,
		validate:    validator.New(),
		logger:      logger,
	}
}

// Verify inspects every collection file and record. It never mutates
// anything; findings come back in the report.
func (s *VerifyService) Verify(ctx context.Context) ports.VerifyReport {
	report := ports.VerifyReport{
		Collections: []ports.CollectionStat{
			s.userRepo.Stat(ctx),
			s.orderRepo.Stat(ctx),
			s.enquiryRepo.Stat(ctx),
		},
	}

	users := s.userRepo.List(ctx)
	userIDs := make(map[string]bool, len(users))
	ids := make([]string, 0, len(users))
	for _, user := range users {
		if err := s.validate.Struct(user); err != nil {
			report.Issues = append(report.Issues, structIssues("users", user.ID, err)...)
		}
		userIDs[user.ID] = true
		ids = append(ids, user.ID)
	}
	report.Issues = append(report.Issues, duplicateIssues("users", ids)...)

	orders := s.orderRepo.List(ctx, ports.OrderFilter{})
	ids = ids[:0]
	for _, order := range orders {
		if err := s.validate.Struct(order); err != nil {
			report.Issues = append(report.Issues, structIssues("orders", order.ID, err)...)
		}
		if len(order.Items) > 0 {
			var sum float64
			for _, item := range order.Items {
				sum += item.LineTotal()
			}
			if math.Abs(sum-order.Total) > totalTolerance {
				report.Issues = append(report.Issues, ports.VerifyIssue{
					Collection: "orders",
					RecordID:   order.ID,
					Field:      "total",
					Message:    fmt.Sprintf("total %.2f differs from item sum %.2f", order.Total, sum),
				})
			}
		}
		if order.UserID != "" && !userIDs[order.UserID] {
			report.Issues = append(report.Issues, ports.VerifyIssue{
				Collection: "orders",
				RecordID:   order.ID,
				Field:      "userId",
				Message:    "references unknown user " + order.UserID,
			})
		}
		ids = append(ids, order.ID)
	}
	report.Issues = append(report.Issues, duplicateIssues("orders", ids)...)

	contacts := s.enquiryRepo.List(ctx, ports.EnquiryFilter{})
	ids = ids[:0]
	for _, contact := range contacts {
		if err := s.validate.Struct(contact); err != nil {
			report.Issues = append(report.Issues, structIssues("contacts", contact.ID, err)...)
		}
		ids = append(ids, contact.ID)
	}
	report.Issues = append(report.Issues, duplicateIssues("contacts", ids)...)

	s.logger.Infow("Verification finished",
		"collections", len(report.Collections),
		"issues", len(report.Issues),
	)

	return report
}

func structIssues(collection, id string, err error) []ports.VerifyIssue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]ports.VerifyIssue, 0, len(verrs))
		for _, fieldErr := range verrs {
			issues = append(issues, ports.VerifyIssue{
				Collection: collection,
				RecordID:   id,
				Field:      fieldErr.Field(),
				Message:    fmt.Sprintf("fails %s rule", fieldErr.Tag()),
			})
		}
		return issues
	}
	return []ports.VerifyIssue{{Collection: collection, RecordID: id, Message: err.Error()}}
}

func duplicateIssues(collection string, ids []string) []ports.VerifyIssue {
	seen := make(map[string]bool, len(ids))
	var issues []ports.VerifyIssue
	for _, id := range ids {
		if id == "" {
			// The required rule already reports missing ids.
			continue
		}
		if seen[id] {
			issues = append(issues, ports.VerifyIssue{
				Collection: collection,
				RecordID:   id,
				Field:      "id",
				Message:    "duplicate id",
			})
		}
		seen[id] = true
	}
	return issues
}
