package user

import (
	"context"

	"github.com/builduhq/tenant-api/pkg/domain/shared"
)

// Repository defines the interface for user storage.
// Implementations return ErrUserNotFound for unknown IDs and preserve
// insertion order in List.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id shared.ID) (*User, error)

	// List returns users in insertion order. A non-empty query filters
	// by case-insensitive substring match on name or email.
	List(ctx context.Context, query string) ([]*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// CountByRole returns how many users reference a role, regardless
	// of status.
	CountByRole(ctx context.Context, roleID shared.ID) (int, error)

	// AnyWithRole reports whether at least one user references a role.
	AnyWithRole(ctx context.Context, roleID shared.ID) (bool, error)
}
