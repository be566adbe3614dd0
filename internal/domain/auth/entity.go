package auth

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
	string(RoleEmployee),
}

type User struct {
	ID         string
	Email      string
	Password   string // bcrypt hash
	Role       Role
	EmployeeID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
