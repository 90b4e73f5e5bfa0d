// Package role provides the role entity for tenant access control.
// A role is a named, reusable bundle of permission keys assignable to
// tenant users. Roles are mutable; the permission catalog they draw
// from is not.
package role

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/builduhq/tenant-api/pkg/domain/permission"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
)

// Errors. Each wraps the matching shared sentinel so callers can match
// at either granularity with errors.Is.
var (
	ErrRoleNotFound = fmt.Errorf("%w: role not found", shared.ErrNotFound)
	ErrRoleInUse    = fmt.Errorf("%w: role is assigned to users and cannot be deleted", shared.ErrConflict)
	ErrEmptyName    = fmt.Errorf("%w: role name is required", shared.ErrValidation)
	ErrUnknownKey   = fmt.Errorf("%w: permission key not in catalog", shared.ErrValidation)
	ErrBadCategory  = fmt.Errorf("%w: unknown permission category", shared.ErrValidation)
)

// Role represents a named bundle of permissions within a tenant.
type Role struct {
	id          shared.ID
	name        string
	description string
	permissions []permission.Key
	isDefault   bool
	createdAt   time.Time
	updatedAt   time.Time
}

// New creates a new role. The name must be non-blank and every
// permission key must exist in the catalog. Duplicate keys are
// collapsed, preserving first occurrence order.
func New(name, description string, permissions []permission.Key, isDefault bool) (*Role, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	perms, err := normalizeKeys(permissions)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Role{
		id:          shared.NewID(),
		name:        name,
		description: description,
		permissions: perms,
		isDefault:   isDefault,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstitute recreates a role from stored data. It bypasses
// validation; stored roles are assumed to have been validated at write
// time.
func Reconstitute(
	id shared.ID,
	name string,
	description string,
	permissions []permission.Key,
	isDefault bool,
	createdAt time.Time,
	updatedAt time.Time,
) *Role {
	return &Role{
		id:          id,
		name:        name,
		description: description,
		permissions: permissions,
		isDefault:   isDefault,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the role ID.
func (r *Role) ID() shared.ID { return r.id }

// Name returns the role name.
func (r *Role) Name() string { return r.name }

// Description returns the role description.
func (r *Role) Description() string { return r.description }

// Permissions returns a copy of the role's permission keys in grant
// order.
func (r *Role) Permissions() []permission.Key {
	out := make([]permission.Key, len(r.permissions))
	copy(out, r.permissions)
	return out
}

// IsDefault reports whether new users get this role when none is
// chosen. At most one role per tenant should carry the flag; the
// service keeps it that way.
func (r *Role) IsDefault() bool { return r.isDefault }

// CreatedAt returns when the role was created.
func (r *Role) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns when the role was last updated.
func (r *Role) UpdatedAt() time.Time { return r.updatedAt }

// HasPermission checks if the role grants a specific permission.
func (r *Role) HasPermission(key permission.Key) bool {
	return slices.Contains(r.permissions, key)
}

// PermissionCount returns the number of granted permissions.
func (r *Role) PermissionCount() int {
	return len(r.permissions)
}

// Rename updates the role name. Blank names are rejected.
func (r *Role) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	r.name = name
	r.touch()
	return nil
}

// SetDescription replaces the role description.
func (r *Role) SetDescription(description string) {
	r.description = description
	r.touch()
}

// SetDefault sets or clears the default flag.
func (r *Role) SetDefault(isDefault bool) {
	r.isDefault = isDefault
	r.touch()
}

// SetPermissions replaces the role's permission set. Every key must be
// a catalog key; duplicates are collapsed.
func (r *Role) SetPermissions(keys []permission.Key) error {
	perms, err := normalizeKeys(keys)
	if err != nil {
		return err
	}
	r.permissions = perms
	r.touch()
	return nil
}

// ToggleCategory bulk-toggles all catalog keys of one category in a
// single step. If every key of the category is already granted, all of
// them are removed; otherwise the missing ones are added. This is the
// tri-state checkbox contract of the role editor: off or partial goes
// to fully on, fully on goes to off.
func (r *Role) ToggleCategory(category string) error {
	catKeys, ok := permission.CategoryKeys(category)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadCategory, category)
	}

	allOn := true
	for _, k := range catKeys {
		if !r.HasPermission(k) {
			allOn = false
			break
		}
	}

	if allOn {
		kept := make([]permission.Key, 0, len(r.permissions))
		for _, p := range r.permissions {
			if !slices.Contains(catKeys, p) {
				kept = append(kept, p)
			}
		}
		r.permissions = kept
	} else {
		for _, k := range catKeys {
			if !r.HasPermission(k) {
				r.permissions = append(r.permissions, k)
			}
		}
	}
	r.touch()
	return nil
}

func (r *Role) touch() {
	r.updatedAt = time.Now().UTC()
}

// normalizeKeys validates keys against the catalog and collapses
// duplicates, preserving first occurrence order.
func normalizeKeys(keys []permission.Key) ([]permission.Key, error) {
	seen := make(map[permission.Key]struct{}, len(keys))
	out := make([]permission.Key, 0, len(keys))
	for _, k := range keys {
		if !permission.IsValid(k) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, k)
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out, nil
}
