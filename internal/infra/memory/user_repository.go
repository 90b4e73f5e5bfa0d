package memory

import (
	"context"
	"sync"

	"github.com/builduhq/tenant-api/pkg/domain/shared"
	"github.com/builduhq/tenant-api/pkg/domain/user"
)

// UserRepository is an in-memory implementation of user.Repository.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*user.User
	order []string
}

// Ensure UserRepository implements user.Repository.
var _ user.Repository = (*UserRepository)(nil)

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID: make(map[string]*user.User),
	}
}

// Create inserts a new user.
func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := u.ID().String()
	r.byID[id] = cloneUser(u)
	r.order = append(r.order, id)
	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(_ context.Context, id shared.ID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id.String()]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// List returns users in insertion order, optionally filtered by a
// case-insensitive substring match on name or email.
func (r *UserRepository) List(_ context.Context, query string) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*user.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.byID[id]
		if u.MatchesQuery(query) {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := u.ID().String()
	if _, ok := r.byID[id]; !ok {
		return user.ErrUserNotFound
	}
	r.byID[id] = cloneUser(u)
	return nil
}

// CountByRole returns how many users reference a role, regardless of
// status.
func (r *UserRepository) CountByRole(_ context.Context, roleID shared.ID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, u := range r.byID {
		if u.RoleID().Equals(roleID) {
			count++
		}
	}
	return count, nil
}

// AnyWithRole reports whether at least one user references a role.
func (r *UserRepository) AnyWithRole(_ context.Context, roleID shared.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.RoleID().Equals(roleID) {
			return true, nil
		}
	}
	return false, nil
}

func cloneUser(u *user.User) *user.User {
	return user.Reconstitute(
		u.ID(),
		u.Name(),
		u.Email(),
		u.RoleID(),
		u.Status(),
		u.AvatarURL(),
		u.JoinedAt(),
		u.UpdatedAt(),
	)
}
