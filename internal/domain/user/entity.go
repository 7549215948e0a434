package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can approve leave/WFH and see pending requests
	RoleEmployee Role = "employee" // Regular employee
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID           string
	EmployeeID   string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can act on other employees' requests
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
