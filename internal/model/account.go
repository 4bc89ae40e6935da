package model

// Role identifies which dashboard an account may access.  The set is
// closed: every access-control check switches over these three values
// and rejects anything else.
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleManager:
		return true
	}
	return false
}

// Account is a known user of the facility.  Accounts are seeded from a
// fixed list at process start; there is no self-service sign-up.
// PasswordHash holds a bcrypt hash and is never serialized.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}
