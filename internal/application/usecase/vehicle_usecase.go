package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jayvico/ams-api/internal/application/dto"
	"github.com/jayvico/ams-api/internal/domain"
	"github.com/jayvico/ams-api/internal/domain/entity"
	"github.com/jayvico/ams-api/internal/domain/repository"
)

// VehicleUseCase CRUD over imported vehicles.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase builds the use case.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create registers a vehicle. Status must belong to the import state enum.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if in.VIN == "" || in.Make == "" || in.Model == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidVehicleStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	v := &entity.Vehicle{
		ID:            uuid.New().String(),
		VIN:           in.VIN,
		Make:          in.Make,
		Model:         in.Model,
		Year:          in.Year,
		Color:         in.Color,
		Status:        in.Status,
		CustomerID:    in.CustomerID,
		DeclaredValue: in.DeclaredValue,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := dto.ToVehicleResponse(v)
	return &out, nil
}

// List returns vehicles newest first, optionally filtered by status.
func (uc *VehicleUseCase) List(ctx context.Context, status string) ([]dto.VehicleResponse, error) {
	if status != "" && !entity.ValidVehicleStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	vehicles, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, dto.ToVehicleResponse(v))
	}
	return out, nil
}

// GetByID returns one vehicle or ErrNotFound.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToVehicleResponse(v)
	return &out, nil
}

// Update applies a partial update; nil fields keep their value.
func (uc *VehicleUseCase) Update(ctx context.Context, id string, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if in.VIN != nil {
		v.VIN = *in.VIN
	}
	if in.Make != nil {
		v.Make = *in.Make
	}
	if in.Model != nil {
		v.Model = *in.Model
	}
	if in.Year != nil {
		v.Year = *in.Year
	}
	if in.Color != nil {
		v.Color = *in.Color
	}
	if in.Status != nil {
		if !entity.ValidVehicleStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		v.Status = *in.Status
	}
	if in.CustomerID != nil {
		v.CustomerID = *in.CustomerID
	}
	if in.DeclaredValue != nil {
		v.DeclaredValue = *in.DeclaredValue
	}
	v.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	out := dto.ToVehicleResponse(v)
	return &out, nil
}

// Delete removes a vehicle or returns ErrNotFound.
func (uc *VehicleUseCase) Delete(ctx context.Context, id string) error {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
