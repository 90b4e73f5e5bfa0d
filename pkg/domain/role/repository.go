package role

import (
	"context"

	"github.com/builduhq/tenant-api/pkg/domain/shared"
)

// Repository defines the interface for role storage.
// Implementations return ErrRoleNotFound for unknown IDs and preserve
// insertion order in List.
type Repository interface {
	// Create inserts a new role.
	Create(ctx context.Context, r *Role) error

	// GetByID retrieves a role by its ID.
	GetByID(ctx context.Context, id shared.ID) (*Role, error)

	// List returns all roles in insertion order.
	List(ctx context.Context) ([]*Role, error)

	// Update persists changes to an existing role.
	Update(ctx context.Context, r *Role) error

	// Delete removes a role. It does not check for referencing users;
	// that guard belongs to the access-control service.
	Delete(ctx context.Context, id shared.ID) error

	// FindDefault returns the role currently flagged as default, or
	// ErrRoleNotFound when none is.
	FindDefault(ctx context.Context) (*Role, error)
}
