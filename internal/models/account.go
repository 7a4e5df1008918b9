package models

// Role is the access tier of an account.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleStaff       Role = "staff"
	RoleSiteManager Role = "site-manager"
)

// Valid reports whether the role is one of the known tiers.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleSiteManager
}

// Account is the sign-in record backing an employee, a location or an
// administrator. Every employee and location has exactly one account with
// a matching email; admin accounts stand alone.
type Account struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
