// Package app contains the application services for the tenant
// access-control store. All mutations of the role registry and the
// user directory flow through AccessControl, which serializes them
// under one tenant-wide lock so cross-entity invariants (the role
// delete guard, atomic category toggles, derived user counts) can
// never observe partial effects.
package app

import (
	"context"
	"sync"

	"github.com/builduhq/tenant-api/internal/metrics"
	"github.com/builduhq/tenant-api/pkg/domain/permission"
	"github.com/builduhq/tenant-api/pkg/domain/role"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
	"github.com/builduhq/tenant-api/pkg/domain/user"
	"github.com/builduhq/tenant-api/pkg/logger"
)

// AccessControl coordinates the role registry and the user directory.
// It is the only component permitted to mutate both stores in
// sequence.
type AccessControl struct {
	// mu is the single logical lock for this tenant: every mutation
	// of roles or users serializes against it.
	mu sync.Mutex

	roleRepo role.Repository
	userRepo user.Repository
	logger   *logger.Logger
}

// NewAccessControl creates the access-control coordinator.
func NewAccessControl(roleRepo role.Repository, userRepo user.Repository, log *logger.Logger) *AccessControl {
	return &AccessControl{
		roleRepo: roleRepo,
		userRepo: userRepo,
		logger:   log.With("component", "access_control"),
	}
}

// withTenantLock runs fn while holding the tenant mutation lock.
func (ac *AccessControl) withTenantLock(fn func() error) error {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return fn()
}

// UserCount returns the number of users currently referencing a role,
// regardless of status. Always derived from the directory, never
// cached, so it cannot drift.
func (ac *AccessControl) UserCount(ctx context.Context, roleID shared.ID) (int, error) {
	return ac.userRepo.CountByRole(ctx, roleID)
}

// RoleInUse reports whether any user references the role.
func (ac *AccessControl) RoleInUse(ctx context.Context, roleID shared.ID) (bool, error) {
	return ac.userRepo.AnyWithRole(ctx, roleID)
}

// UserHasPermission resolves user -> role -> permission set. It fails
// only when the user does not exist; an unknown permission key simply
// yields false since the catalog is closed.
func (ac *AccessControl) UserHasPermission(ctx context.Context, userID shared.ID, key permission.Key) (bool, error) {
	u, err := ac.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	r, err := ac.roleRepo.GetByID(ctx, u.RoleID())
	if err != nil {
		// A dangling role reference would be an invariant breach; it
		// cannot happen through this coordinator.
		return false, err
	}

	granted := r.HasPermission(key)
	result := "denied"
	if granted {
		result = "granted"
	}
	metrics.PermissionChecksTotal.WithLabelValues(result).Inc()
	return granted, nil
}

// CheckPermission is UserHasPermission for callers holding string ids.
func (ac *AccessControl) CheckPermission(ctx context.Context, userID, key string) (bool, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return false, err
	}
	return ac.UserHasPermission(ctx, id, permission.Key(key))
}
