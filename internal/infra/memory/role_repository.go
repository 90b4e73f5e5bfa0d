// Package memory provides in-memory repository implementations.
// This is the store's only backend: the platform keeps tenant
// access-control state strictly in process memory. Repositories hand
// out defensive copies so callers can never mutate stored state
// without going back through Update.
package memory

import (
	"context"
	"sync"

	"github.com/builduhq/tenant-api/pkg/domain/role"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
)

// RoleRepository is an in-memory implementation of role.Repository.
type RoleRepository struct {
	mu    sync.RWMutex
	byID  map[string]*role.Role
	order []string
}

// Ensure RoleRepository implements role.Repository.
var _ role.Repository = (*RoleRepository)(nil)

// NewRoleRepository creates an empty in-memory role repository.
func NewRoleRepository() *RoleRepository {
	return &RoleRepository{
		byID: make(map[string]*role.Role),
	}
}

// Create inserts a new role.
func (r *RoleRepository) Create(_ context.Context, ro *role.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := ro.ID().String()
	r.byID[id] = cloneRole(ro)
	r.order = append(r.order, id)
	return nil
}

// GetByID retrieves a role by its ID.
func (r *RoleRepository) GetByID(_ context.Context, id shared.ID) (*role.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ro, ok := r.byID[id.String()]
	if !ok {
		return nil, role.ErrRoleNotFound
	}
	return cloneRole(ro), nil
}

// List returns all roles in insertion order.
func (r *RoleRepository) List(_ context.Context) ([]*role.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*role.Role, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneRole(r.byID[id]))
	}
	return out, nil
}

// Update persists changes to an existing role.
func (r *RoleRepository) Update(_ context.Context, ro *role.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := ro.ID().String()
	if _, ok := r.byID[id]; !ok {
		return role.ErrRoleNotFound
	}
	r.byID[id] = cloneRole(ro)
	return nil
}

// Delete removes a role.
func (r *RoleRepository) Delete(_ context.Context, id shared.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.byID[key]; !ok {
		return role.ErrRoleNotFound
	}
	delete(r.byID, key)
	for i, oid := range r.order {
		if oid == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindDefault returns the role currently flagged as default.
func (r *RoleRepository) FindDefault(_ context.Context) (*role.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if ro := r.byID[id]; ro.IsDefault() {
			return cloneRole(ro), nil
		}
	}
	return nil, role.ErrRoleNotFound
}

// cloneRole deep-copies a role so stored state and returned state
// never share mutable slices.
func cloneRole(ro *role.Role) *role.Role {
	return role.Reconstitute(
		ro.ID(),
		ro.Name(),
		ro.Description(),
		ro.Permissions(),
		ro.IsDefault(),
		ro.CreatedAt(),
		ro.UpdatedAt(),
	)
}
