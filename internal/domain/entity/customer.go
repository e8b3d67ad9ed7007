package entity

import "time"

// Address is a customer's postal address.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Customer is a buyer importing vehicles through the business.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}
