package app

import (
	"context"
	"fmt"

	"github.com/builduhq/tenant-api/internal/metrics"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
	"github.com/builduhq/tenant-api/pkg/domain/user"
	"github.com/builduhq/tenant-api/pkg/logger"
)

// UserService handles tenant user operations.
type UserService struct {
	ac     *AccessControl
	logger *logger.Logger
}

// NewUserService creates a new UserService.
func NewUserService(ac *AccessControl, log *logger.Logger) *UserService {
	return &UserService{
		ac:     ac,
		logger: log.With("service", "user"),
	}
}

// InviteUserInput represents the input for inviting a user.
type InviteUserInput struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	RoleID    string `json:"role_id" validate:"required"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// InviteUser creates a user in invited status. The role must exist;
// an invite never creates a dangling role reference.
func (s *UserService) InviteUser(ctx context.Context, input InviteUserInput) (*user.User, error) {
	var created *user.User
	err := s.ac.withTenantLock(func() error {
		roleID, err := parseRoleID(input.RoleID)
		if err != nil {
			return err
		}
		if _, err := s.ac.roleRepo.GetByID(ctx, roleID); err != nil {
			return err
		}

		u, err := user.Invite(input.Name, input.Email, roleID)
		if err != nil {
			return err
		}
		if input.AvatarURL != "" {
			u.SetAvatarURL(input.AvatarURL)
		}

		if err := s.ac.userRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		created = u
		return nil
	})
	s.count("invite", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user invited", "id", created.ID().String(), "email", created.Email())
	return created, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*user.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.ac.userRepo.GetByID(ctx, id)
}

// ListUsers returns users in insertion order. A non-empty query
// filters by case-insensitive substring on name or email (a match on
// either field includes the user).
func (s *UserService) ListUsers(ctx context.Context, query string) ([]*user.User, error) {
	return s.ac.userRepo.List(ctx, query)
}

// ActivateUser transitions an invited user to active. Already-active
// users pass through unchanged; deactivated users cannot come back.
func (s *UserService) ActivateUser(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.mutateUser(ctx, "activate", userID, func(u *user.User) error {
		return u.Activate()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user activated", "id", userID)
	return u, nil
}

// DeactivateUser moves a user to the terminal deactivated status.
// Idempotent: deactivating an already-deactivated user is a no-op.
func (s *UserService) DeactivateUser(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.mutateUser(ctx, "deactivate", userID, func(u *user.User) error {
		u.Deactivate()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user deactivated", "id", userID)
	return u, nil
}

// ReassignRole points a user at a different role. The store permits
// this regardless of the user's status; the UI restricts deactivated
// users on its own.
func (s *UserService) ReassignRole(ctx context.Context, userID, roleID string) (*user.User, error) {
	rid, err := parseRoleID(roleID)
	if err != nil {
		s.count("reassign_role", err)
		return nil, err
	}

	u, err := s.mutateUser(ctx, "reassign_role", userID, func(u *user.User) error {
		if _, err := s.ac.roleRepo.GetByID(ctx, rid); err != nil {
			return err
		}
		u.AssignRole(rid)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user role reassigned", "id", userID, "role_id", roleID)
	return u, nil
}

// mutateUser loads a user, applies fn, and persists the result under
// the tenant lock.
func (s *UserService) mutateUser(ctx context.Context, operation, userID string, fn func(*user.User) error) (*user.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		s.count(operation, err)
		return nil, err
	}

	var updated *user.User
	err = s.ac.withTenantLock(func() error {
		u, err := s.ac.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(u); err != nil {
			return err
		}
		if err := s.ac.userRepo.Update(ctx, u); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		updated = u
		return nil
	})
	s.count(operation, err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *UserService) count(operation string, err error) {
	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
	}
	metrics.UserMutationsTotal.WithLabelValues(operation, status).Inc()
}

// parseUserID parses an opaque user identifier. Like role ids, a
// malformed id maps to not-found.
func parseUserID(s string) (shared.ID, error) {
	id, err := shared.IDFromString(s)
	if err != nil {
		return shared.ID{}, user.ErrUserNotFound
	}
	return id, nil
}
