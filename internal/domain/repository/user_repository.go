package repository

import (
	"context"

	"github.com/jayvico/ams-api/internal/domain/entity"
)

// UserRepository is the persistence port for User.
// Lookups return (nil, nil) when no row matches; uniqueness violations on
// insert/update surface as domain.ErrEmailAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateLastLogin(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.User, error)
}
