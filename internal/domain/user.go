package domain

import "time"

type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleHost     UserRole = "HOST"
)

type User struct {
	ID        string
	Name      string
	Email     string
	Role      UserRole
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
