package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navyajewels/backoffice/internal/adapters/repository"
	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

func newSeedService(stack testStack) *SeedService {
	return NewSeedService(stack.dir, stack.userRepo, stack.orderRepo, stack.enquiryRepo, logger.NewNop())
}

func defaultSeedRequest() ports.SeedRequest {
	return ports.SeedRequest{Users: 4, Orders: 5, Enquiries: 3}
}

func TestSeedWritesAllCollections(t *testing.T) {
	stack := newTestStack(t)
	svc := newSeedService(stack)

	report, err := svc.Seed(context.Background(), defaultSeedRequest())
	require.NoError(t, err)

	assert.Equal(t, stack.dir, report.DataDir)
	assert.Equal(t, 4, report.Users)
	assert.Equal(t, 5, report.Orders)
	assert.Equal(t, 3, report.Enquiries)

	for _, name := range []string{"users.json", "orders.json", "contacts.json"} {
		_, err := os.Stat(filepath.Join(stack.dir, name))
		assert.NoError(t, err, name)
	}

	assert.Equal(t, report.Users, stack.userRepo.Count(context.Background()))
	assert.Equal(t, report.Orders, stack.orderRepo.Count(context.Background()))
	assert.Equal(t, report.Enquiries, stack.enquiryRepo.Count(context.Background()))
}

func TestSeedCustomCounts(t *testing.T) {
	stack := newTestStack(t)
	svc := newSeedService(stack)

	report, err := svc.Seed(context.Background(), ports.SeedRequest{Users: 9, Orders: 12, Enquiries: 7})
	require.NoError(t, err)

	assert.Equal(t, 9, report.Users)
	assert.Equal(t, 12, report.Orders)
	assert.Equal(t, 7, report.Enquiries)

	// Generated ids stay unique past one lap around the name pool.
	seen := make(map[string]bool)
	for _, user := range stack.userRepo.List(context.Background()) {
		assert.False(t, seen[user.ID])
		seen[user.ID] = true
	}
}

func TestSeedZeroCountsWriteEmptyCollections(t *testing.T) {
	stack := newTestStack(t)
	svc := newSeedService(stack)

	report, err := svc.Seed(context.Background(), ports.SeedRequest{})
	require.NoError(t, err)
	assert.Zero(t, report.Users)
	assert.Zero(t, report.Orders)
	assert.Zero(t, report.Enquiries)

	data, err := os.ReadFile(filepath.Join(stack.dir, "orders.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSeedRejectsNegativeCounts(t *testing.T) {
	stack := newTestStack(t)
	svc := newSeedService(stack)

	_, err := svc.Seed(context.Background(), ports.SeedRequest{Users: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestSeedCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	log := logger.NewNop()
	stack := testStack{
		dir:         dir,
		userRepo:    repository.NewUserRepository(filepath.Join(dir, "users.json"), log),
		orderRepo:   repository.NewOrderRepository(filepath.Join(dir, "orders.json"), log),
		enquiryRepo: repository.NewEnquiryRepository(filepath.Join(dir, "contacts.json"), log),
	}

	svc := newSeedService(stack)
	_, err := svc.Seed(context.Background(), defaultSeedRequest())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSeedRefusesExistingData(t *testing.T) {
	stack := newTestStack(t)
	stack.write(t, "orders.json", testOrders)
	svc := newSeedService(stack)

	_, err := svc.Seed(context.Background(), defaultSeedRequest())
	assert.ErrorIs(t, err, entities.ErrDataNotEmpty)

	// Existing data untouched.
	assert.Equal(t, 3, stack.orderRepo.Count(context.Background()))
}

func TestSeedForceOverwrites(t *testing.T) {
	stack := newTestStack(t)
	stack.write(t, "orders.json", testOrders)
	svc := newSeedService(stack)

	req := defaultSeedRequest()
	req.Force = true
	report, err := svc.Seed(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, report.Orders, stack.orderRepo.Count(context.Background()))
}

func TestSeededDataPassesVerification(t *testing.T) {
	stack := newTestStack(t)
	_, err := newSeedService(stack).Seed(context.Background(), defaultSeedRequest())
	require.NoError(t, err)

	verify := NewVerifyService(stack.userRepo, stack.orderRepo, stack.enquiryRepo, logger.NewNop())
	report := verify.Verify(context.Background())

	assert.True(t, report.OK())
	assert.Empty(t, report.Issues)
}

func TestSeededOrdersReferenceSeededUsers(t *testing.T) {
	stack := newTestStack(t)
	_, err := newSeedService(stack).Seed(context.Background(), defaultSeedRequest())
	require.NoError(t, err)

	users := stack.userRepo.List(context.Background())
	known := make(map[string]bool, len(users))
	for _, user := range users {
		known[user.ID] = true
	}

	for _, order := range stack.orderRepo.List(context.Background(), ports.OrderFilter{}) {
		assert.True(t, known[order.UserID], "order %s references unknown user", order.ID)
		assert.True(t, order.Status.IsValid())

		var sum float64
		for _, item := range order.Items {
			sum += item.LineTotal()
		}
		assert.InDelta(t, sum, order.Total, 0.001)
	}
}
