package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/builduhq/tenant-api/internal/metrics"
	"github.com/builduhq/tenant-api/pkg/domain/permission"
	"github.com/builduhq/tenant-api/pkg/domain/role"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
	"github.com/builduhq/tenant-api/pkg/logger"
)

// RoleService handles role-related business operations.
type RoleService struct {
	ac     *AccessControl
	logger *logger.Logger
}

// NewRoleService creates a new RoleService.
func NewRoleService(ac *AccessControl, log *logger.Logger) *RoleService {
	return &RoleService{
		ac:     ac,
		logger: log.With("service", "role"),
	}
}

// RoleWithCount pairs a role with its derived user count. The count
// reflects the user directory at the moment of the call, never a
// stored value.
type RoleWithCount struct {
	Role      *role.Role
	UserCount int
}

// CreateRoleInput represents the input for creating a role.
type CreateRoleInput struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"max=500"`
	Permissions []string `json:"permissions" validate:"dive,permission_key"`
	IsDefault   bool     `json:"is_default"`
}

// CreateRole creates a new role. When the new role is flagged as
// default, the flag is cleared on the previous default so the invite
// flow always has exactly one candidate.
func (s *RoleService) CreateRole(ctx context.Context, input CreateRoleInput) (*RoleWithCount, error) {
	var out *RoleWithCount
	err := s.ac.withTenantLock(func() error {
		r, err := role.New(input.Name, input.Description, toKeys(input.Permissions), input.IsDefault)
		if err != nil {
			return err
		}

		if input.IsDefault {
			if err := s.clearDefaultLocked(ctx, r.ID()); err != nil {
				return err
			}
		}

		if err := s.ac.roleRepo.Create(ctx, r); err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}

		out = &RoleWithCount{Role: r, UserCount: 0}
		return nil
	})
	s.count("create", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("role created", "id", out.Role.ID().String(), "name", out.Role.Name())
	return out, nil
}

// GetRole retrieves a role by ID with its derived user count.
func (s *RoleService) GetRole(ctx context.Context, roleID string) (*RoleWithCount, error) {
	id, err := parseRoleID(roleID)
	if err != nil {
		return nil, err
	}

	r, err := s.ac.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withCount(ctx, r)
}

// ListRoles returns all roles in insertion order, each with its
// derived user count.
func (s *RoleService) ListRoles(ctx context.Context) ([]*RoleWithCount, error) {
	roles, err := s.ac.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*RoleWithCount, 0, len(roles))
	for _, r := range roles {
		rc, err := s.withCount(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, nil
}

// UpdateRoleInput represents the input for updating a role. Only
// supplied fields are overwritten; the user count is derived and not
// settable.
type UpdateRoleInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Permissions []string `json:"permissions,omitempty" validate:"omitempty,dive,permission_key"`
	IsDefault   *bool    `json:"is_default"`
}

// UpdateRole applies a partial update to a role.
func (s *RoleService) UpdateRole(ctx context.Context, roleID string, input UpdateRoleInput) (*RoleWithCount, error) {
	id, err := parseRoleID(roleID)
	if err != nil {
		s.count("update", err)
		return nil, err
	}

	var updated *role.Role
	err = s.ac.withTenantLock(func() error {
		r, err := s.ac.roleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			if err := r.Rename(*input.Name); err != nil {
				return err
			}
		}
		if input.Description != nil {
			r.SetDescription(*input.Description)
		}
		if input.Permissions != nil {
			if err := r.SetPermissions(toKeys(input.Permissions)); err != nil {
				return err
			}
		}
		if input.IsDefault != nil {
			if *input.IsDefault {
				if err := s.clearDefaultLocked(ctx, r.ID()); err != nil {
					return err
				}
			}
			r.SetDefault(*input.IsDefault)
		}

		if err := s.ac.roleRepo.Update(ctx, r); err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}
		updated = r
		return nil
	})
	s.count("update", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("role updated", "id", roleID)
	return s.withCount(ctx, updated)
}

// DeleteRole deletes a role. Deletion is refused while any user still
// references the role, regardless of that user's status, so the
// directory can never hold a dangling role reference.
func (s *RoleService) DeleteRole(ctx context.Context, roleID string) error {
	id, err := parseRoleID(roleID)
	if err != nil {
		s.count("delete", err)
		return err
	}

	err = s.ac.withTenantLock(func() error {
		if _, err := s.ac.roleRepo.GetByID(ctx, id); err != nil {
			return err
		}

		inUse, err := s.ac.RoleInUse(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check role usage: %w", err)
		}
		if inUse {
			return role.ErrRoleInUse
		}

		return s.ac.roleRepo.Delete(ctx, id)
	})
	s.count("delete", err)
	if err != nil {
		return err
	}

	s.logger.Info("role deleted", "id", roleID)
	return nil
}

// ToggleCategoryPermissions bulk-toggles all permission keys of one
// category on a role as a single atomic step: fully granted goes to
// none, anything else goes to fully granted.
func (s *RoleService) ToggleCategoryPermissions(ctx context.Context, roleID, category string) (*RoleWithCount, error) {
	id, err := parseRoleID(roleID)
	if err != nil {
		s.count("toggle_category", err)
		return nil, err
	}

	var updated *role.Role
	err = s.ac.withTenantLock(func() error {
		r, err := s.ac.roleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := r.ToggleCategory(category); err != nil {
			return err
		}
		if err := s.ac.roleRepo.Update(ctx, r); err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}
		updated = r
		return nil
	})
	s.count("toggle_category", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("category toggled", "id", roleID, "category", category)
	return s.withCount(ctx, updated)
}

// ListPermissions returns the full permission catalog.
func (s *RoleService) ListPermissions(_ context.Context) []permission.Permission {
	return permission.All()
}

// ListPermissionGroups returns the catalog grouped by category.
func (s *RoleService) ListPermissionGroups(_ context.Context) []permission.Group {
	return permission.GroupByCategory()
}

// clearDefaultLocked clears the default flag on whichever role
// currently holds it, excluding exceptID. Caller must hold the tenant
// lock.
func (s *RoleService) clearDefaultLocked(ctx context.Context, exceptID shared.ID) error {
	current, err := s.ac.roleRepo.FindDefault(ctx)
	if errors.Is(err, role.ErrRoleNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if current.ID().Equals(exceptID) {
		return nil
	}
	current.SetDefault(false)
	return s.ac.roleRepo.Update(ctx, current)
}

func (s *RoleService) withCount(ctx context.Context, r *role.Role) (*RoleWithCount, error) {
	count, err := s.ac.UserCount(ctx, r.ID())
	if err != nil {
		return nil, err
	}
	return &RoleWithCount{Role: r, UserCount: count}, nil
}

func (s *RoleService) count(operation string, err error) {
	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
	}
	metrics.RoleMutationsTotal.WithLabelValues(operation, status).Inc()
}

// parseRoleID parses an opaque role identifier. Identifiers are opaque
// to callers, so a malformed id is indistinguishable from an unknown
// one and maps to not-found rather than a validation error.
func parseRoleID(s string) (shared.ID, error) {
	id, err := shared.IDFromString(s)
	if err != nil {
		return shared.ID{}, role.ErrRoleNotFound
	}
	return id, nil
}

func toKeys(keys []string) []permission.Key {
	out := make([]permission.Key, len(keys))
	for i, k := range keys {
		out[i] = permission.Key(k)
	}
	return out
}
