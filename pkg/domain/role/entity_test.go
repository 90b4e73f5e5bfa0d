package role_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builduhq/tenant-api/pkg/domain/permission"
	"github.com/builduhq/tenant-api/pkg/domain/role"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
)

func TestNew(t *testing.T) {
	t.Run("valid role", func(t *testing.T) {
		r, err := role.New("Loan Officer", "Standard access", []permission.Key{
			permission.ViewDashboard,
			permission.EditDeals,
		}, true)
		require.NoError(t, err)

		assert.False(t, r.ID().IsZero())
		assert.Equal(t, "Loan Officer", r.Name())
		assert.Equal(t, "Standard access", r.Description())
		assert.True(t, r.IsDefault())
		assert.Equal(t, 2, r.PermissionCount())
		assert.False(t, r.CreatedAt().IsZero())
	})

	t.Run("empty permissions allowed", func(t *testing.T) {
		r, err := role.New("Viewer", "", nil, false)
		require.NoError(t, err)
		assert.Equal(t, 0, r.PermissionCount())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := role.New("   ", "", nil, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, role.ErrEmptyName)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		_, err := role.New("Bad", "", []permission.Key{"launch_rockets"}, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, role.ErrUnknownKey)
		assert.Contains(t, err.Error(), "launch_rockets")
	})

	t.Run("duplicate keys collapsed in order", func(t *testing.T) {
		r, err := role.New("Dup", "", []permission.Key{
			permission.ViewFeed,
			permission.ViewDashboard,
			permission.ViewFeed,
		}, false)
		require.NoError(t, err)
		assert.Equal(t, []permission.Key{
			permission.ViewFeed,
			permission.ViewDashboard,
		}, r.Permissions())
	})
}

func TestRole_HasPermission(t *testing.T) {
	r, err := role.New("Test", "", []permission.Key{permission.ViewOrg}, false)
	require.NoError(t, err)

	assert.True(t, r.HasPermission(permission.ViewOrg))
	assert.False(t, r.HasPermission(permission.ManageUsers))
	assert.False(t, r.HasPermission("not_a_key"))
}

func TestRole_Rename(t *testing.T) {
	r, err := role.New("Old", "", nil, false)
	require.NoError(t, err)

	require.NoError(t, r.Rename("New"))
	assert.Equal(t, "New", r.Name())

	err = r.Rename("  ")
	assert.ErrorIs(t, err, role.ErrEmptyName)
	assert.Equal(t, "New", r.Name())
}

func TestRole_SetPermissions(t *testing.T) {
	r, err := role.New("Test", "", []permission.Key{permission.ViewDashboard}, false)
	require.NoError(t, err)

	t.Run("replaces the set", func(t *testing.T) {
		err := r.SetPermissions([]permission.Key{permission.ManageRoles})
		require.NoError(t, err)
		assert.Equal(t, []permission.Key{permission.ManageRoles}, r.Permissions())
	})

	t.Run("invalid key leaves set untouched", func(t *testing.T) {
		err := r.SetPermissions([]permission.Key{"bogus"})
		require.ErrorIs(t, err, role.ErrUnknownKey)
		assert.Equal(t, []permission.Key{permission.ManageRoles}, r.Permissions())
	})

	t.Run("clear with empty slice", func(t *testing.T) {
		require.NoError(t, r.SetPermissions(nil))
		assert.Equal(t, 0, r.PermissionCount())
	})
}

func TestRole_ToggleCategory(t *testing.T) {
	dashboard, ok := permission.CategoryKeys("Dashboard")
	require.True(t, ok)

	t.Run("none granted adds all", func(t *testing.T) {
		r, err := role.New("T", "", nil, false)
		require.NoError(t, err)

		require.NoError(t, r.ToggleCategory("Dashboard"))
		for _, k := range dashboard {
			assert.True(t, r.HasPermission(k))
		}
		assert.Equal(t, len(dashboard), r.PermissionCount())
	})

	t.Run("partially granted fills the gaps", func(t *testing.T) {
		r, err := role.New("T", "", []permission.Key{permission.ViewEarnings}, false)
		require.NoError(t, err)

		require.NoError(t, r.ToggleCategory("Dashboard"))
		for _, k := range dashboard {
			assert.True(t, r.HasPermission(k))
		}
		assert.Equal(t, len(dashboard), r.PermissionCount())
	})

	t.Run("fully granted removes all", func(t *testing.T) {
		r, err := role.New("T", "", dashboard, false)
		require.NoError(t, err)

		require.NoError(t, r.ToggleCategory("Dashboard"))
		for _, k := range dashboard {
			assert.False(t, r.HasPermission(k))
		}
		assert.Equal(t, 0, r.PermissionCount())
	})

	t.Run("other categories untouched", func(t *testing.T) {
		r, err := role.New("T", "", []permission.Key{permission.ManageUsers}, false)
		require.NoError(t, err)

		require.NoError(t, r.ToggleCategory("Dashboard"))
		assert.True(t, r.HasPermission(permission.ManageUsers))

		require.NoError(t, r.ToggleCategory("Dashboard"))
		assert.True(t, r.HasPermission(permission.ManageUsers))
		assert.Equal(t, 1, r.PermissionCount())
	})

	t.Run("double toggle round-trips", func(t *testing.T) {
		r, err := role.New("T", "", nil, false)
		require.NoError(t, err)

		require.NoError(t, r.ToggleCategory("Admin"))
		require.NoError(t, r.ToggleCategory("Admin"))
		assert.Equal(t, 0, r.PermissionCount())
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		r, err := role.New("T", "", nil, false)
		require.NoError(t, err)

		err = r.ToggleCategory("Gibberish")
		require.ErrorIs(t, err, role.ErrBadCategory)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestReconstitute(t *testing.T) {
	id := shared.NewID()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	r := role.Reconstitute(id, "Stored", "desc", []permission.Key{permission.ViewFeed}, true, created, updated)

	assert.True(t, r.ID().Equals(id))
	assert.Equal(t, "Stored", r.Name())
	assert.True(t, r.IsDefault())
	assert.Equal(t, created, r.CreatedAt())
	assert.Equal(t, updated, r.UpdatedAt())
}

func TestRole_ErrorSentinels(t *testing.T) {
	assert.ErrorIs(t, role.ErrRoleNotFound, shared.ErrNotFound)
	assert.ErrorIs(t, role.ErrRoleInUse, shared.ErrConflict)
	assert.ErrorIs(t, role.ErrEmptyName, shared.ErrValidation)
}
