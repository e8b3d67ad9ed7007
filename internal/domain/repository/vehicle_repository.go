package repository

import (
	"context"

	"github.com/jayvico/ams-api/internal/domain/entity"
)

// VehicleRepository is the persistence port for Vehicle.
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	List(ctx context.Context, status string) ([]*entity.Vehicle, error)
	Update(ctx context.Context, v *entity.Vehicle) error
	Delete(ctx context.Context, id string) error
}
