package dto

// CreateUserRequest admin input for POST /api/users. Password may be empty;
// the orchestrator then generates a temporary one and forces a change on
// first login.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"required"`
	IsActive  *bool  `json:"isActive"`
}

// CreateUserResponse echoes the new user; TemporaryPassword is set only when
// the server generated one, and is never persisted or shown again.
type CreateUserResponse struct {
	User              UserResponse `json:"user"`
	TemporaryPassword string       `json:"temporaryPassword,omitempty"`
}

// UpdateUserRequest admin input for PUT /api/users/:id. Nil fields are untouched.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
}
