package services

import (
	"context"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// EnquiryService handles contact enquiry operations
type EnquiryService struct {
	enquiryRepo ports.EnquiryRepository
	logger      *logger.Logger
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(enquiryRepo ports.EnquiryRepository, logger *logger.Logger) *EnquiryService {
	return &EnquiryService{
		enquiryRepo: enquiryRepo,
		logger:      logger,
	}
}

// ListEnquiries returns enquiries in file order, optionally filtered
func (s *EnquiryService) ListEnquiries(ctx context.Context, filter ports.EnquiryFilter) []entities.Contact {
	return s.enquiryRepo.List(ctx, filter)
}

// GetEnquiry retrieves an enquiry by ID
func (s *EnquiryService) GetEnquiry(ctx context.Context, id string) (entities.Contact, error) {
	return s.enquiryRepo.GetByID(ctx, id)
}

// MarkDone marks an enquiry as handled and persists the change
func (s *EnquiryService) MarkDone(ctx context.Context, id string) (entities.Contact, error) {
	contact, err := s.enquiryRepo.UpdateStatus(ctx, id, entities.EnquiryStatusDone)
	if err != nil {
		return entities.Contact{}, err
	}

	s.logger.Infow("Enquiry marked done",
		"enquiry_id", contact.ID,
		"name", contact.Name,
	)

	return contact, nil
}

// RemoveEnquiry deletes an enquiry permanently
func (s *EnquiryService) RemoveEnquiry(ctx context.Context, id string) error {
	if err := s.enquiryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("Enquiry removed", "enquiry_id", id)

	return nil
}
