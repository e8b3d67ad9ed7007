package dto

import (
	"time"

	"github.com/jayvico/ams-api/internal/domain/entity"
)

// AddressDTO postal address payload.
type AddressDTO struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// CreateCustomerRequest input for POST /api/customers.
type CreateCustomerRequest struct {
	Name    string     `json:"name" validate:"required"`
	Email   string     `json:"email" validate:"required,email"`
	Phone   string     `json:"phone" validate:"required"`
	Address AddressDTO `json:"address" validate:"required"`
}

// UpdateCustomerRequest input for PUT /api/customers/:id. Nil fields are untouched.
type UpdateCustomerRequest struct {
	Name    *string     `json:"name"`
	Email   *string     `json:"email"`
	Phone   *string     `json:"phone"`
	Address *AddressDTO `json:"address"`
}

// CustomerResponse output shape for customers.
type CustomerResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   AddressDTO `json:"address"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ToCustomerResponse maps a customer entity to its response shape.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Address: AddressDTO{
			Street:  c.Address.Street,
			City:    c.Address.City,
			State:   c.Address.State,
			ZipCode: c.Address.ZipCode,
			Country: c.Address.Country,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
