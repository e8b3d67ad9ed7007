package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayvico/ams-api/internal/domain"
	"github.com/jayvico/ams-api/internal/domain/entity"
)

type fakeSheetGenerator struct {
	lastVehicle  *entity.Vehicle
	lastCustomer *entity.Customer
}

func (g *fakeSheetGenerator) GenerateVehicleSheet(_ context.Context, v *entity.Vehicle, c *entity.Customer) ([]byte, error) {
	g.lastVehicle = v
	g.lastCustomer = c
	return []byte("%PDF-stub"), nil
}

func TestVehicleSheetGenerate(t *testing.T) {
	vehicles := newFakeVehicleRepo()
	customers := newFakeCustomerRepo()
	gen := &fakeSheetGenerator{}
	uc := NewVehicleSheetUseCase(vehicles, customers, gen)

	customer := &entity.Customer{ID: "cust-1", Name: "Carlos Mena", Email: "carlos@example.com"}
	require.NoError(t, customers.Create(context.Background(), customer))

	vehicle := &entity.Vehicle{
		ID:         "veh-1",
		VIN:        "1HGBH41JXMN109186",
		Make:       "Toyota",
		Model:      "Land Cruiser",
		Status:     entity.VehicleStatusInTransit,
		CustomerID: "cust-1",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, vehicles.Create(context.Background(), vehicle))

	pdf, vin, err := uc.Generate(context.Background(), "veh-1")
	require.NoError(t, err)
	assert.Equal(t, "1HGBH41JXMN109186", vin)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Carlos Mena", gen.lastCustomer.Name)
}

func TestVehicleSheetUnknownVehicle(t *testing.T) {
	uc := NewVehicleSheetUseCase(newFakeVehicleRepo(), newFakeCustomerRepo(), &fakeSheetGenerator{})

	_, _, err := uc.Generate(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleSheetDanglingCustomer(t *testing.T) {
	vehicles := newFakeVehicleRepo()
	gen := &fakeSheetGenerator{}
	uc := NewVehicleSheetUseCase(vehicles, newFakeCustomerRepo(), gen)

	vehicle := &entity.Vehicle{
		ID:         "veh-1",
		VIN:        "1HGBH41JXMN109186",
		Status:     entity.VehicleStatusPending,
		CustomerID: "gone",
	}
	require.NoError(t, vehicles.Create(context.Background(), vehicle))

	// The export still renders; the customer panel is just empty.
	pdf, _, err := uc.Generate(context.Background(), "veh-1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, gen.lastCustomer)
	assert.Empty(t, gen.lastCustomer.Name)
}
