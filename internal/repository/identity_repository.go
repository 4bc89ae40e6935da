package repository

import (
	"strconv"
	"strings"
	"sync"

	"github.com/laqshya/sports-facility-booking/internal/model"
	"github.com/laqshya/sports-facility-booking/internal/utils"
)

// IdentityRepo holds the known accounts.  The store is seeded from the
// fixed demo credential list at construction time; administrators may
// append further accounts but those never gain a usable password of
// their own choosing.
type IdentityRepo struct {
	mu       sync.RWMutex
	accounts []model.Account
	nextID   int
}

// NewIdentityRepo builds the store and seeds the fixed account list.
// Passwords are bcrypt-hashed with the given cost before they are kept.
func NewIdentityRepo(bcryptCost int) (*IdentityRepo, error) {
	r := &IdentityRepo{}
	for _, s := range defaultAccounts() {
		hash, err := utils.HashPassword(s.Password, bcryptCost)
		if err != nil {
			return nil, err
		}
		r.accounts = append(r.accounts, model.Account{
			ID:           s.ID,
			Email:        s.Email,
			Name:         s.Name,
			Role:         s.Role,
			PasswordHash: hash,
		})
	}
	r.nextID = len(r.accounts) + 1
	return r, nil
}

// Authenticate matches email and password against the account list.
// Email comparison is exact and case-sensitive.  On success the account
// is returned by value, hash stripped; otherwise ErrInvalidCredentials.
// There is no lockout and no attempt counting.
func (r *IdentityRepo) Authenticate(email, password string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Email == email && utils.VerifyPassword(a.PasswordHash, password) {
			a.PasswordHash = ""
			return a, nil
		}
	}
	return model.Account{}, ErrInvalidCredentials
}

// GetByID returns the account with the given id, hash stripped.
func (r *IdentityRepo) GetByID(id string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.ID == id {
			a.PasswordHash = ""
			return a, nil
		}
	}
	return model.Account{}, ErrNotFound
}

// All returns a snapshot of every account in insertion order with
// password hashes stripped.
func (r *IdentityRepo) All() []model.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Account, len(r.accounts))
	for i, a := range r.accounts {
		a.PasswordHash = ""
		out[i] = a
	}
	return out
}

// Add appends an account with role user and a random throwaway
// password.  Name and email must be non-empty and the email must be
// unused, else ErrValidation.
func (r *IdentityRepo) Add(name, email string, bcryptCost int) (model.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return model.Account{}, ErrValidation
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return model.Account{}, ErrValidation
		}
	}
	secret, err := utils.RandomSecret()
	if err != nil {
		return model.Account{}, err
	}
	hash, err := utils.HashPassword(secret, bcryptCost)
	if err != nil {
		return model.Account{}, err
	}
	acc := model.Account{
		ID:           strconv.Itoa(r.nextID),
		Email:        email,
		Name:         name,
		Role:         model.RoleUser,
		PasswordHash: hash,
	}
	r.nextID++
	r.accounts = append(r.accounts, acc)
	acc.PasswordHash = ""
	return acc, nil
}

// Remove deletes the account with the given id.  Unknown ids are a
// silent no-op.
func (r *IdentityRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return
		}
	}
}
