package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/navyajewels/backoffice/internal/adapters/repository"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

type testStack struct {
	dir         string
	userRepo    ports.UserRepository
	orderRepo   ports.OrderRepository
	enquiryRepo ports.EnquiryRepository
}

func newTestStack(t *testing.T) testStack {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewNop()
	return testStack{
		dir:         dir,
		userRepo:    repository.NewUserRepository(filepath.Join(dir, "users.json"), log),
		orderRepo:   repository.NewOrderRepository(filepath.Join(dir, "orders.json"), log),
		enquiryRepo: repository.NewEnquiryRepository(filepath.Join(dir, "contacts.json"), log),
	}
}

func (ts testStack) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(ts.dir, name), []byte(content), 0644))
}

const testUsers = `[
  {"id": "USR-1", "name": "Ananya Rao", "email": "ananya@example.com"},
  {"id": "USR-2", "name": "Vikram Shah", "email": "vikram@example.com"}
]`

const testOrders = `[
  {
    "id": "ORD-1001",
    "userId": "USR-1",
    "customerName": "Ananya Rao",
    "status": "Pending",
    "items": [{"name": "Gold Ring", "quantity": 1, "price": 12500}],
    "total": 12500
  },
  {
    "id": "ORD-1002",
    "userId": "USR-2",
    "customerName": "Vikram Shah",
    "status": "Confirmed",
    "items": [{"name": "Silver Anklet", "quantity": 2, "price": 2100}],
    "total": 4200
  },
  {
    "id": "ORD-1003",
    "userId": "USR-1",
    "customerName": "Ananya Rao",
    "status": "Delivered",
    "items": [{"name": "Bangles Set", "quantity": 1, "price": 700}],
    "total": 700
  }
]`

const testContacts = `[
  {"id": "ENQ-1", "name": "Meera Iyer", "message": "Do you resize rings?", "status": "Pending"},
  {"id": "ENQ-2", "name": "Rohit Menon", "message": "Thanks!", "status": "Done"},
  {"id": "ENQ-3", "name": "Sana Khan", "message": "Is the pearl set in stock?"}
]`
