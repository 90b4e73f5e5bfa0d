package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builduhq/tenant-api/internal/app"
	"github.com/builduhq/tenant-api/pkg/domain/permission"
	"github.com/builduhq/tenant-api/pkg/domain/role"
)

func TestCreateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with zero user count", func(t *testing.T) {
		f := newFixture()
		rc, err := f.roles.CreateRole(ctx, app.CreateRoleInput{
			Name:        "Team Leader",
			Description: "Leads a team",
			Permissions: []string{"view_dashboard", "view_all_deals"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Team Leader", rc.Role.Name())
		assert.Equal(t, 2, rc.Role.PermissionCount())
		assert.Equal(t, 0, rc.UserCount)
	})

	t.Run("rejects unknown permission key", func(t *testing.T) {
		f := newFixture()
		_, err := f.roles.CreateRole(ctx, app.CreateRoleInput{
			Name:        "Bad",
			Permissions: []string{"view_dashboard", "bogus_key"},
		})
		assert.ErrorIs(t, err, role.ErrUnknownKey)
	})

	t.Run("new default clears the previous one", func(t *testing.T) {
		f := newFixture()
		first, err := f.roles.CreateRole(ctx, app.CreateRoleInput{Name: "A", IsDefault: true})
		require.NoError(t, err)

		second, err := f.roles.CreateRole(ctx, app.CreateRoleInput{Name: "B", IsDefault: true})
		require.NoError(t, err)
		assert.True(t, second.Role.IsDefault())

		reloaded, err := f.roles.GetRole(ctx, first.Role.ID().String())
		require.NoError(t, err)
		assert.False(t, reloaded.Role.IsDefault())
	})
}

func TestListRoles(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.createRole(t, "First")
	f.createRole(t, "Second")
	f.createRole(t, "Third")

	roles, err := f.roles.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 3)

	// Insertion order, not alphabetical.
	assert.Equal(t, "First", roles[0].Role.Name())
	assert.Equal(t, "Second", roles[1].Role.Name())
	assert.Equal(t, "Third", roles[2].Role.Name())
}

func TestGetRole_OpaqueID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("malformed id maps to not found", func(t *testing.T) {
		_, err := f.roles.GetRole(ctx, "###")
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})

	t.Run("well-formed unknown id maps to not found", func(t *testing.T) {
		_, err := f.roles.GetRole(ctx, "11111111-2222-3333-4444-555555555555")
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		f := newFixture()
		rc := f.createRole(t, "Viewer", "view_dashboard")

		name := "Read Only"
		updated, err := f.roles.UpdateRole(ctx, rc.Role.ID().String(), app.UpdateRoleInput{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "Read Only", updated.Role.Name())
		assert.Equal(t, []permission.Key{permission.ViewDashboard}, updated.Role.Permissions())
	})

	t.Run("permission replacement", func(t *testing.T) {
		f := newFixture()
		rc := f.createRole(t, "Viewer", "view_dashboard")

		updated, err := f.roles.UpdateRole(ctx, rc.Role.ID().String(), app.UpdateRoleInput{
			Permissions: []string{"manage_users", "manage_roles"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Role.PermissionCount())
		assert.False(t, updated.Role.HasPermission(permission.ViewDashboard))
	})

	t.Run("invalid key rolls back nothing", func(t *testing.T) {
		f := newFixture()
		rc := f.createRole(t, "Viewer", "view_dashboard")

		_, err := f.roles.UpdateRole(ctx, rc.Role.ID().String(), app.UpdateRoleInput{
			Permissions: []string{"nope"},
		})
		require.ErrorIs(t, err, role.ErrUnknownKey)

		reloaded, err := f.roles.GetRole(ctx, rc.Role.ID().String())
		require.NoError(t, err)
		assert.True(t, reloaded.Role.HasPermission(permission.ViewDashboard))
	})

	t.Run("promoting to default demotes the old one", func(t *testing.T) {
		f := newFixture()
		a, err := f.roles.CreateRole(ctx, app.CreateRoleInput{Name: "A", IsDefault: true})
		require.NoError(t, err)
		b := f.createRole(t, "B")

		isDefault := true
		_, err = f.roles.UpdateRole(ctx, b.Role.ID().String(), app.UpdateRoleInput{IsDefault: &isDefault})
		require.NoError(t, err)

		reloaded, err := f.roles.GetRole(ctx, a.Role.ID().String())
		require.NoError(t, err)
		assert.False(t, reloaded.Role.IsDefault())
	})
}

func TestToggleCategoryPermissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	rc := f.createRole(t, "Officer", "view_dashboard")

	t.Run("partial to full", func(t *testing.T) {
		updated, err := f.roles.ToggleCategoryPermissions(ctx, rc.Role.ID().String(), "Dashboard")
		require.NoError(t, err)
		assert.True(t, updated.Role.HasPermission(permission.ViewDashboard))
		assert.True(t, updated.Role.HasPermission(permission.ViewEarnings))
		assert.True(t, updated.Role.HasPermission(permission.ViewPipeline))
	})

	t.Run("full to none", func(t *testing.T) {
		updated, err := f.roles.ToggleCategoryPermissions(ctx, rc.Role.ID().String(), "Dashboard")
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Role.PermissionCount())
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := f.roles.ToggleCategoryPermissions(ctx, rc.Role.ID().String(), "Nope")
		assert.ErrorIs(t, err, role.ErrBadCategory)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := f.roles.ToggleCategoryPermissions(ctx, "garbage", "Dashboard")
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
}

func TestListPermissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	perms := f.roles.ListPermissions(ctx)
	assert.Len(t, perms, 21)

	groups := f.roles.ListPermissionGroups(ctx)
	assert.Len(t, groups, 9)
}
