package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// SeedService writes a small demo dataset for trying out the console
type SeedService struct {
	dataDir     string
	userRepo    ports.UserRepository
	orderRepo   ports.OrderRepository
	enquiryRepo ports.EnquiryRepository
	logger      *logger.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(
	dataDir string,
	userRepo ports.UserRepository,
	orderRepo ports.OrderRepository,
	enquiryRepo ports.EnquiryRepository,
	logger *logger.Logger,
) *SeedService {
	return &SeedService{
		dataDir:     dataDir,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		enquiryRepo: enquiryRepo,
		logger:      logger,
	}
}

// Demo data pools. Generation cycles through them, so any requested
// count yields plausible jewelry-shop records.
var (
	demoNames = []string{
		"Ananya Rao", "Vikram Shah", "Meera Iyer", "Rohit Menon",
		"Sana Khan", "Arjun Nair", "Divya Pillai", "Kabir Bose",
	}
	demoCatalog = []entities.OrderItem{
		{Name: "Gold Ring", Price: 12500},
		{Name: "Silver Anklet", Price: 1450},
		{Name: "Pearl Necklace", Price: 8200},
		{Name: "Diamond Earrings", Price: 24000},
		{Name: "Gold Chain", Price: 15750},
		{Name: "Bangles Set", Price: 3600},
		{Name: "Ruby Pendant", Price: 9800},
	}
	demoShipping = []struct{ address, city, pincode string }{
		{"14 Marine Drive", "Mumbai", "400002"},
		{"22 CG Road", "Ahmedabad", "380009"},
		{"5 Besant Nagar Beach Road", "Chennai", "600090"},
		{"8 Panampilly Avenue", "Kochi", "682036"},
		{"31 Park Street", "Kolkata", "700016"},
	}
	demoPayments = []string{"COD", "UPI", "Card"}
	demoMessages = []string{
		"Is the pearl necklace set available in stock?",
		"Can you engrave initials on the gold ring?",
		"Thanks, the anklet arrived today.",
		"Do you ship to Singapore?",
		"Looking for a matching pair of diamond earrings.",
	}
)

// Seed replaces the collection files with generated demo data. Unless
// req.Force is set it refuses to touch collections that already hold
// records.
func (s *SeedService) Seed(ctx context.Context, req ports.SeedRequest) (ports.SeedReport, error) {
	if req.Users < 0 || req.Orders < 0 || req.Enquiries < 0 {
		return ports.SeedReport{}, fmt.Errorf("demo record counts cannot be negative")
	}

	if !req.Force {
		existing := s.userRepo.Count(ctx) + s.orderRepo.Count(ctx) + s.enquiryRepo.Count(ctx)
		if existing > 0 {
			return ports.SeedReport{}, fmt.Errorf("%w: %d records present", entities.ErrDataNotEmpty, existing)
		}
	}

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return ports.SeedReport{}, fmt.Errorf("create data dir: %w", err)
	}

	users := demoUsers(req.Users)
	orders := demoOrders(req.Orders, users)
	contacts := demoContacts(req.Enquiries)

	if err := s.userRepo.Replace(ctx, users); err != nil {
		return ports.SeedReport{}, fmt.Errorf("seed users: %w", err)
	}
	if err := s.orderRepo.Replace(ctx, orders); err != nil {
		return ports.SeedReport{}, fmt.Errorf("seed orders: %w", err)
	}
	if err := s.enquiryRepo.Replace(ctx, contacts); err != nil {
		return ports.SeedReport{}, fmt.Errorf("seed enquiries: %w", err)
	}

	report := ports.SeedReport{
		DataDir:   s.dataDir,
		Users:     len(users),
		Orders:    len(orders),
		Enquiries: len(contacts),
	}

	s.logger.Infow("Demo data written",
		"dir", report.DataDir,
		"users", report.Users,
		"orders", report.Orders,
		"enquiries", report.Enquiries,
	)

	return report, nil
}

func demoUsers(n int) []entities.User {
	users := make([]entities.User, 0, n)
	for i := 0; i < n; i++ {
		name := demoNames[i%len(demoNames)]
		user := entities.User{
			ID:    uuid.NewString(),
			Name:  name,
			Email: demoEmail(name),
		}
		// Every fourth customer registered without a phone number.
		if i%4 != 3 {
			user.Phone = demoPhone(i)
		}
		users = append(users, user)
	}
	return users
}

func demoOrders(n int, users []entities.User) []entities.Order {
	now := time.Now().UTC()
	statuses := []entities.OrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusConfirmed,
		entities.OrderStatusDelivered,
	}

	orders := make([]entities.Order, 0, n)
	for i := 0; i < n; i++ {
		item := demoCatalog[i%len(demoCatalog)]
		item.Quantity = 1 + i%3
		items := []entities.OrderItem{item}
		if i%2 == 0 {
			second := demoCatalog[(i+3)%len(demoCatalog)]
			second.Quantity = 1
			items = append(items, second)
		}

		ship := demoShipping[i%len(demoShipping)]
		order := entities.Order{
			ID:            uuid.NewString(),
			Address:       ship.address,
			City:          ship.city,
			Pincode:       ship.pincode,
			PaymentMethod: demoPayments[i%len(demoPayments)],
			Status:        statuses[i%len(statuses)],
			CreatedAt:     now.Add(-time.Duration(2+11*i) * time.Hour).Format(time.RFC3339),
			Items:         items,
		}
		if len(users) > 0 {
			user := users[i%len(users)]
			order.UserID = user.ID
			order.CustomerName = user.Name
			order.Phone = user.Phone
		}
		for _, line := range order.Items {
			order.Total += line.LineTotal()
		}
		orders = append(orders, order)
	}
	return orders
}

func demoContacts(n int) []entities.Contact {
	now := time.Now().UTC()
	contacts := make([]entities.Contact, 0, n)
	for i := 0; i < n; i++ {
		name := demoNames[(i+4)%len(demoNames)]
		contact := entities.Contact{
			ID:        uuid.NewString(),
			Name:      name,
			Message:   demoMessages[i%len(demoMessages)],
			Status:    entities.EnquiryStatusPending,
			CreatedAt: now.Add(-time.Duration(12+26*i) * time.Hour).Format(time.RFC3339),
		}
		if i%2 == 0 {
			contact.Email = demoEmail(name)
		}
		if i%3 == 0 {
			contact.Phone = demoPhone(i + 5)
		}
		if i%3 == 2 {
			contact.Status = entities.EnquiryStatusDone
		}
		contacts = append(contacts, contact)
	}
	return contacts
}

func demoEmail(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
}

func demoPhone(i int) string {
	return fmt.Sprintf("98%08d", (20011223+i*7919)%100000000)
}
