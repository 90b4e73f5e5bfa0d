// Package user provides the tenant user domain model.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/builduhq/tenant-api/pkg/domain/shared"
)

// Errors. Each wraps the matching shared sentinel so callers can match
// at either granularity with errors.Is.
var (
	ErrUserNotFound    = fmt.Errorf("%w: user not found", shared.ErrNotFound)
	ErrNameRequired    = fmt.Errorf("%w: name is required", shared.ErrValidation)
	ErrEmailRequired   = fmt.Errorf("%w: email is required", shared.ErrValidation)
	ErrUserDeactivated = fmt.Errorf("%w: user is deactivated", shared.ErrValidation)
)

// Status represents the user lifecycle status.
type Status string

const (
	// StatusInvited is the initial status after an invite.
	StatusInvited Status = "invited"
	// StatusActive means the user accepted the invite.
	StatusActive Status = "active"
	// StatusDeactivated is terminal; there is no reactivation path.
	StatusDeactivated Status = "deactivated"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusInvited, StatusActive, StatusDeactivated:
		return true
	}
	return false
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// User represents one tenant user. Every user references exactly one
// role; the access-control service guarantees the reference never
// dangles.
type User struct {
	id        shared.ID
	name      string
	email     string
	roleID    shared.ID
	status    Status
	avatarURL string
	joinedAt  time.Time
	updatedAt time.Time
}

// Invite creates a new user in invited status. Role existence is
// checked by the service, not here.
func Invite(name, email string, roleID shared.ID) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if roleID.IsZero() {
		return nil, fmt.Errorf("%w: roleID is required", shared.ErrValidation)
	}

	now := time.Now().UTC()
	return &User{
		id:        shared.NewID(),
		name:      name,
		email:     email,
		roleID:    roleID,
		status:    StatusInvited,
		joinedAt:  now,
		updatedAt: now,
	}, nil
}

// Reconstitute recreates a user from stored data.
func Reconstitute(
	id shared.ID,
	name string,
	email string,
	roleID shared.ID,
	status Status,
	avatarURL string,
	joinedAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		roleID:    roleID,
		status:    status,
		avatarURL: avatarURL,
		joinedAt:  joinedAt,
		updatedAt: updatedAt,
	}
}

// ID returns the user ID.
func (u *User) ID() shared.ID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// RoleID returns the ID of the user's assigned role.
func (u *User) RoleID() shared.ID { return u.roleID }

// Status returns the lifecycle status.
func (u *User) Status() Status { return u.status }

// AvatarURL returns the avatar URL, empty when unset.
func (u *User) AvatarURL() string { return u.avatarURL }

// JoinedAt returns when the user was invited.
func (u *User) JoinedAt() time.Time { return u.joinedAt }

// UpdatedAt returns when the user was last modified.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// IsDeactivated reports whether the user is in the terminal status.
func (u *User) IsDeactivated() bool {
	return u.status == StatusDeactivated
}

// Activate transitions an invited user to active. Activating an
// already-active user is a no-op; a deactivated user cannot come back.
func (u *User) Activate() error {
	switch u.status {
	case StatusActive:
		return nil
	case StatusDeactivated:
		return ErrUserDeactivated
	}
	u.status = StatusActive
	u.touch()
	return nil
}

// Deactivate moves the user to the terminal deactivated status.
// Idempotent: deactivating twice is a no-op, not an error.
func (u *User) Deactivate() {
	if u.status == StatusDeactivated {
		return
	}
	u.status = StatusDeactivated
	u.touch()
}

// AssignRole points the user at a different role. The store permits
// this regardless of status; restricting deactivated users is a UI
// concern.
func (u *User) AssignRole(roleID shared.ID) {
	u.roleID = roleID
	u.touch()
}

// SetAvatarURL replaces the avatar URL.
func (u *User) SetAvatarURL(url string) {
	u.avatarURL = url
	u.touch()
}

// MatchesQuery reports whether the user matches a case-insensitive
// substring search over name or email. An empty query matches
// everyone. Mirrors the user management screen's single search box.
func (u *User) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(u.name), q) ||
		strings.Contains(strings.ToLower(u.email), q)
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}
