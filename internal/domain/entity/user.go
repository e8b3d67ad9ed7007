package entity

import "time"

// Valid roles. The set is closed; anything else is rejected at the boundary.
const (
	RoleAdmin             = "Admin"
	RoleOperationsManager = "OperationsManager"
	RoleCustomerService   = "CustomerService"
	RoleFinance           = "Finance"
	RoleFieldStaff        = "FieldStaff"
)

// ValidRole reports whether role belongs to the closed enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOperationsManager, RoleCustomerService, RoleFinance, RoleFieldStaff:
		return true
	}
	return false
}

// User is the identity and authorization unit.
type User struct {
	ID                 string
	Email              string // globally unique, enforced by the store's unique index
	PasswordHash       string // bcrypt hash, never plaintext, never returned to clients
	FirstName          string
	LastName           string
	Role               string
	IsActive           bool
	MustChangePassword bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	LastLoginAt        *time.Time
}
