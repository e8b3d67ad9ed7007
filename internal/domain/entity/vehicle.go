package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle import statuses.
const (
	VehicleStatusPending   = "pending"
	VehicleStatusInTransit = "in-transit"
	VehicleStatusDelivered = "delivered"
	VehicleStatusCancelled = "cancelled"
)

// ValidVehicleStatus reports whether status is one of the known import states.
func ValidVehicleStatus(status string) bool {
	switch status {
	case VehicleStatusPending, VehicleStatusInTransit, VehicleStatusDelivered, VehicleStatusCancelled:
		return true
	}
	return false
}

// Vehicle is an imported unit tracked from order to delivery.
type Vehicle struct {
	ID            string
	VIN           string
	Make          string
	Model         string
	Year          int
	Color         string
	Status        string
	CustomerID    string
	DeclaredValue decimal.Decimal // declared customs value
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
