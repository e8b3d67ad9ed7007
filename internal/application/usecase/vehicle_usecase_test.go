package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayvico/ams-api/internal/application/dto"
	"github.com/jayvico/ams-api/internal/domain"
	"github.com/jayvico/ams-api/internal/domain/entity"
)

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[string]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[string]*entity.Vehicle{}}
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.vehicles[v.ID] = &cp
	return nil
}

func (r *fakeVehicleRepo) GetByID(_ context.Context, id string) (*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVehicleRepo) List(_ context.Context, status string) ([]*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		if status != "" && v.Status != status {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.vehicles[v.ID] = &cp
	return nil
}

func (r *fakeVehicleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vehicles, id)
	return nil
}

func validCreateRequest() dto.CreateVehicleRequest {
	return dto.CreateVehicleRequest{
		VIN:           "1HGBH41JXMN109186",
		Make:          "Toyota",
		Model:         "Land Cruiser",
		Year:          2023,
		Color:         "white",
		Status:        entity.VehicleStatusPending,
		CustomerID:    "cust-1",
		DeclaredValue: decimal.NewFromInt(45000),
	}
}

func TestVehicleCreate(t *testing.T) {
	uc := NewVehicleUseCase(newFakeVehicleRepo())

	out, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "1HGBH41JXMN109186", out.VIN)
	assert.True(t, out.DeclaredValue.Equal(decimal.NewFromInt(45000)))
}

func TestVehicleCreateValidation(t *testing.T) {
	uc := NewVehicleUseCase(newFakeVehicleRepo())

	missingVIN := validCreateRequest()
	missingVIN.VIN = ""
	_, err := uc.Create(context.Background(), missingVIN)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badStatus := validCreateRequest()
	badStatus.Status = "parked"
	_, err = uc.Create(context.Background(), badStatus)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVehicleListFiltersByStatus(t *testing.T) {
	repo := newFakeVehicleRepo()
	uc := NewVehicleUseCase(repo)

	pending := validCreateRequest()
	delivered := validCreateRequest()
	delivered.VIN = "2HGBH41JXMN109187"
	delivered.Status = entity.VehicleStatusDelivered

	_, err := uc.Create(context.Background(), pending)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), delivered)
	require.NoError(t, err)

	out, err := uc.List(context.Background(), entity.VehicleStatusDelivered)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2HGBH41JXMN109187", out[0].VIN)

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.List(context.Background(), "parked")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVehicleGetByIDNotFound(t *testing.T) {
	uc := NewVehicleUseCase(newFakeVehicleRepo())

	_, err := uc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehiclePartialUpdate(t *testing.T) {
	uc := NewVehicleUseCase(newFakeVehicleRepo())

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	status := entity.VehicleStatusInTransit
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateVehicleRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entity.VehicleStatusInTransit, out.Status)
	assert.Equal(t, created.VIN, out.VIN)
	assert.Equal(t, created.Year, out.Year)

	bogus := "parked"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateVehicleRequest{Status: &bogus})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVehicleDelete(t *testing.T) {
	uc := NewVehicleUseCase(newFakeVehicleRepo())

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}
