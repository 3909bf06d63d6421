package repository

import (
	"context"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// UserRepositoryImpl implements the UserRepository interface over the
// users collection file
type UserRepositoryImpl struct {
	coll *Collection[entities.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(path string, log *logger.Logger) ports.UserRepository {
	return &UserRepositoryImpl{
		coll: NewCollection[entities.User](path, "users", nil, log),
	}
}

func (r *UserRepositoryImpl) List(ctx context.Context) []entities.User {
	return r.coll.Load(ctx)
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id string) (entities.User, error) {
	user, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return entities.User{}, entities.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context) int {
	return r.coll.Count(ctx)
}

func (r *UserRepositoryImpl) Replace(ctx context.Context, users []entities.User) error {
	return r.coll.Replace(ctx, users)
}

func (r *UserRepositoryImpl) Stat(ctx context.Context) ports.CollectionStat {
	return r.coll.Stat(ctx)
}
