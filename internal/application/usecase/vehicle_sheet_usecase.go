package usecase

import (
	"context"

	"github.com/jayvico/ams-api/internal/domain"
	"github.com/jayvico/ams-api/internal/domain/entity"
	"github.com/jayvico/ams-api/internal/domain/repository"
)

// VehicleSheetGenerator renders the printable record sheet for a vehicle.
// Implemented by pdf.VehicleSheetGenerator.
type VehicleSheetGenerator interface {
	GenerateVehicleSheet(ctx context.Context, v *entity.Vehicle, c *entity.Customer) ([]byte, error)
}

// VehicleSheetUseCase assembles vehicle + customer and renders the PDF.
type VehicleSheetUseCase struct {
	vehicles  repository.VehicleRepository
	customers repository.CustomerRepository
	generator VehicleSheetGenerator
}

// NewVehicleSheetUseCase builds the use case.
func NewVehicleSheetUseCase(vehicles repository.VehicleRepository, customers repository.CustomerRepository, generator VehicleSheetGenerator) *VehicleSheetUseCase {
	return &VehicleSheetUseCase{vehicles: vehicles, customers: customers, generator: generator}
}

// Generate renders the record sheet for one vehicle. A dangling customer
// reference degrades to an empty customer panel rather than failing the export.
func (uc *VehicleSheetUseCase) Generate(ctx context.Context, vehicleID string) ([]byte, string, error) {
	v, err := uc.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, "", err
	}
	if v == nil {
		return nil, "", domain.ErrNotFound
	}
	c, err := uc.customers.GetByID(ctx, v.CustomerID)
	if err != nil {
		return nil, "", err
	}
	if c == nil {
		c = &entity.Customer{}
	}
	pdfBytes, err := uc.generator.GenerateVehicleSheet(ctx, v, c)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, v.VIN, nil
}
