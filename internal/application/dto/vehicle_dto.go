package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayvico/ams-api/internal/domain/entity"
)

// CreateVehicleRequest input for POST /api/vehicles.
type CreateVehicleRequest struct {
	VIN           string          `json:"vin" validate:"required"`
	Make          string          `json:"make" validate:"required"`
	Model         string          `json:"model" validate:"required"`
	Year          int             `json:"year" validate:"required"`
	Color         string          `json:"color" validate:"required"`
	Status        string          `json:"status" validate:"required"`
	CustomerID    string          `json:"customerId" validate:"required"`
	DeclaredValue decimal.Decimal `json:"declaredValue"`
}

// UpdateVehicleRequest input for PUT /api/vehicles/:id. Nil fields are untouched.
type UpdateVehicleRequest struct {
	VIN           *string          `json:"vin"`
	Make          *string          `json:"make"`
	Model         *string          `json:"model"`
	Year          *int             `json:"year"`
	Color         *string          `json:"color"`
	Status        *string          `json:"status"`
	CustomerID    *string          `json:"customerId"`
	DeclaredValue *decimal.Decimal `json:"declaredValue"`
}

// VehicleResponse output shape for vehicles.
type VehicleResponse struct {
	ID            string          `json:"id"`
	VIN           string          `json:"vin"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	Color         string          `json:"color"`
	Status        string          `json:"status"`
	CustomerID    string          `json:"customerId"`
	DeclaredValue decimal.Decimal `json:"declaredValue"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToVehicleResponse maps a vehicle entity to its response shape.
func ToVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		VIN:           v.VIN,
		Make:          v.Make,
		Model:         v.Model,
		Year:          v.Year,
		Color:         v.Color,
		Status:        v.Status,
		CustomerID:    v.CustomerID,
		DeclaredValue: v.DeclaredValue,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
