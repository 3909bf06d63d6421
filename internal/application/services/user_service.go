package services

import (
	"context"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// UserService handles customer account operations
type UserService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, logger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers returns every registered customer in file order
func (s *UserService) ListUsers(ctx context.Context) []entities.User {
	return s.userRepo.List(ctx)
}

// GetUser retrieves a customer by ID
func (s *UserService) GetUser(ctx context.Context, id string) (entities.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CountUsers returns the number of registered customers
func (s *UserService) CountUsers(ctx context.Context) int {
	return s.userRepo.Count(ctx)
}
