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

// CustomerUseCase CRUD over customers.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registers a customer.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	c := &entity.Customer{
		ID:    uuid.New().String(),
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Address: entity.Address{
			Street:  in.Address.Street,
			City:    in.Address.City,
			State:   in.Address.State,
			ZipCode: in.Address.ZipCode,
			Country: in.Address.Country,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// List returns customers newest first.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.ToCustomerResponse(c))
	}
	return out, nil
}

// GetByID returns one customer or ErrNotFound.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// Update applies a partial update; nil fields keep their value.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = entity.Address{
			Street:  in.Address.Street,
			City:    in.Address.City,
			State:   in.Address.State,
			ZipCode: in.Address.ZipCode,
			Country: in.Address.Country,
		}
	}
	c.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// Delete removes a customer or returns ErrNotFound.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
