package repository

import (
	"fmt"
	"sync"

	"live-auction/internal/biddingerrors"
	model "live-auction/internal/models"
)

// DefaultAdminUser is the reserved admin identifier used when none is configured
const DefaultAdminUser = "Ocean"

// IdentityStore defines the user registry used to authenticate bidders and admins
type IdentityStore interface {
	Authenticate(userID, password string) (model.AuthResult, error)
	IsAdmin(userID string) bool
	Count() int
}

// MemoryUserRepo is a concurrency-safe in-memory implementation of IdentityStore.
// The first password seen for an identifier is bound to it for the life of the process.
type MemoryUserRepo struct {
	mu        sync.RWMutex
	users     map[string]model.User // key: userID -> value: user
	adminUser string
}

// NewMemoryUserRepo creates a new in-memory identity store with the given admin identifier
func NewMemoryUserRepo(adminUser string) *MemoryUserRepo {
	if adminUser == "" {
		adminUser = DefaultAdminUser
	}
	return &MemoryUserRepo{
		users:     make(map[string]model.User),
		adminUser: adminUser,
	}
}

// Authenticate registers unknown identifiers and checks known ones against their stored password
func (r *MemoryUserRepo) Authenticate(userID, password string) (model.AuthResult, error) {
	if userID == "" {
		return model.AuthResult{}, fmt.Errorf("authenticate: %w", biddingerrors.ErrInvalidIdentity)
	}

	r.mu.RLock()
	user, ok := r.users[userID]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		// re-check: another caller may have registered the identifier in between
		user, ok = r.users[userID]
		if !ok {
			user = model.User{UserID: userID, Password: password}
			r.users[userID] = user
		}
		r.mu.Unlock()
	}

	if user.Password != password {
		return model.AuthResult{}, fmt.Errorf("authenticate user %s: %w", userID, biddingerrors.ErrWrongPassword)
	}

	return model.AuthResult{Accepted: true, IsAdmin: r.IsAdmin(userID)}, nil
}

// IsAdmin reports whether the identifier is the reserved admin name
func (r *MemoryUserRepo) IsAdmin(userID string) bool {
	return userID != "" && userID == r.adminUser
}

// Count returns the number of registered users
func (r *MemoryUserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
