package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builduhq/tenant-api/pkg/domain/shared"
	"github.com/builduhq/tenant-api/pkg/domain/user"
)

func TestInvite(t *testing.T) {
	roleID := shared.NewID()

	t.Run("valid invite", func(t *testing.T) {
		u, err := user.Invite("Jane Smith", "jane@oaktreefunding.com", roleID)
		require.NoError(t, err)

		assert.False(t, u.ID().IsZero())
		assert.Equal(t, "Jane Smith", u.Name())
		assert.Equal(t, "jane@oaktreefunding.com", u.Email())
		assert.True(t, u.RoleID().Equals(roleID))
		assert.Equal(t, user.StatusInvited, u.Status())
		assert.False(t, u.JoinedAt().IsZero())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := user.Invite("  ", "jane@example.com", roleID)
		assert.ErrorIs(t, err, user.ErrNameRequired)
	})

	t.Run("blank email rejected", func(t *testing.T) {
		_, err := user.Invite("Jane", "", roleID)
		assert.ErrorIs(t, err, user.ErrEmailRequired)
	})

	t.Run("zero role ID rejected", func(t *testing.T) {
		_, err := user.Invite("Jane", "jane@example.com", shared.ID{})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestUser_Lifecycle(t *testing.T) {
	roleID := shared.NewID()

	t.Run("invited to active", func(t *testing.T) {
		u, err := user.Invite("A", "a@x.com", roleID)
		require.NoError(t, err)

		require.NoError(t, u.Activate())
		assert.Equal(t, user.StatusActive, u.Status())
	})

	t.Run("activating active is a no-op", func(t *testing.T) {
		u, err := user.Invite("A", "a@x.com", roleID)
		require.NoError(t, err)

		require.NoError(t, u.Activate())
		require.NoError(t, u.Activate())
		assert.Equal(t, user.StatusActive, u.Status())
	})

	t.Run("deactivation is terminal", func(t *testing.T) {
		u, err := user.Invite("A", "a@x.com", roleID)
		require.NoError(t, err)
		require.NoError(t, u.Activate())

		u.Deactivate()
		assert.Equal(t, user.StatusDeactivated, u.Status())
		assert.True(t, u.IsDeactivated())

		err = u.Activate()
		assert.ErrorIs(t, err, user.ErrUserDeactivated)
		assert.Equal(t, user.StatusDeactivated, u.Status())
	})

	t.Run("deactivate is idempotent", func(t *testing.T) {
		u, err := user.Invite("A", "a@x.com", roleID)
		require.NoError(t, err)

		u.Deactivate()
		u.Deactivate()
		assert.Equal(t, user.StatusDeactivated, u.Status())
	})

	t.Run("invited user can be deactivated directly", func(t *testing.T) {
		u, err := user.Invite("A", "a@x.com", roleID)
		require.NoError(t, err)

		u.Deactivate()
		assert.True(t, u.IsDeactivated())
	})
}

func TestUser_AssignRole(t *testing.T) {
	oldRole := shared.NewID()
	newRole := shared.NewID()

	u, err := user.Invite("A", "a@x.com", oldRole)
	require.NoError(t, err)

	u.AssignRole(newRole)
	assert.True(t, u.RoleID().Equals(newRole))

	// Role changes stay possible after deactivation; the UI hides the
	// control but the store does not care.
	u.Deactivate()
	u.AssignRole(oldRole)
	assert.True(t, u.RoleID().Equals(oldRole))
}

func TestUser_MatchesQuery(t *testing.T) {
	u, err := user.Invite("Sarah Chen", "sarah.chen@oaktreefunding.com", shared.NewID())
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty matches all", "", true},
		{"name substring", "arah", true},
		{"name case insensitive", "SARAH", true},
		{"email substring", "oaktree", true},
		{"email case insensitive", "Sarah.CHEN@", true},
		{"no match", "bob", false},
		{"whitespace is literal", " sarah", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.MatchesQuery(tt.query))
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, user.StatusInvited.IsValid())
	assert.True(t, user.StatusActive.IsValid())
	assert.True(t, user.StatusDeactivated.IsValid())
	assert.False(t, user.Status("suspended").IsValid())
	assert.False(t, user.Status("").IsValid())
}
