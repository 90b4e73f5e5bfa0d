package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builduhq/tenant-api/internal/infra/memory"
	"github.com/builduhq/tenant-api/pkg/domain/permission"
	"github.com/builduhq/tenant-api/pkg/domain/role"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
)

func newRole(t *testing.T, name string, isDefault bool, perms ...permission.Key) *role.Role {
	t.Helper()
	r, err := role.New(name, "", perms, isDefault)
	require.NoError(t, err)
	return r
}

func TestRoleRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRoleRepository()

	r := newRole(t, "Viewer", false, permission.ViewDashboard)
	require.NoError(t, repo.Create(ctx, r))

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, "Viewer", got.Name())
		assert.True(t, got.ID().Equals(r.ID()))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, shared.NewID())
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})

	t.Run("update", func(t *testing.T) {
		got, err := repo.GetByID(ctx, r.ID())
		require.NoError(t, err)
		require.NoError(t, got.Rename("Read Only"))
		require.NoError(t, repo.Update(ctx, got))

		reloaded, err := repo.GetByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, "Read Only", reloaded.Name())
	})

	t.Run("update unknown role", func(t *testing.T) {
		ghost := newRole(t, "Ghost", false)
		assert.ErrorIs(t, repo.Update(ctx, ghost), role.ErrRoleNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, r.ID()))
		_, err := repo.GetByID(ctx, r.ID())
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, r.ID()), role.ErrRoleNotFound)
	})
}

func TestRoleRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRoleRepository()

	a := newRole(t, "A", false)
	b := newRole(t, "B", false)
	c := newRole(t, "C", false)
	for _, r := range []*role.Role{a, b, c} {
		require.NoError(t, repo.Create(ctx, r))
	}

	t.Run("insertion order", func(t *testing.T) {
		roles, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, roles, 3)
		assert.Equal(t, "A", roles[0].Name())
		assert.Equal(t, "B", roles[1].Name())
		assert.Equal(t, "C", roles[2].Name())
	})

	t.Run("order survives deletion", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, b.ID()))
		roles, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, roles, 2)
		assert.Equal(t, "A", roles[0].Name())
		assert.Equal(t, "C", roles[1].Name())
	})
}

func TestRoleRepository_FindDefault(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRoleRepository()

	t.Run("none flagged", func(t *testing.T) {
		_, err := repo.FindDefault(ctx)
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})

	t.Run("returns the flagged role", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newRole(t, "Plain", false)))
		def := newRole(t, "Default", true)
		require.NoError(t, repo.Create(ctx, def))

		got, err := repo.FindDefault(ctx)
		require.NoError(t, err)
		assert.True(t, got.ID().Equals(def.ID()))
	})
}

func TestRoleRepository_DefensiveCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRoleRepository()

	r := newRole(t, "Viewer", false, permission.ViewDashboard)
	require.NoError(t, repo.Create(ctx, r))

	// Mutating the original after Create must not leak into the store.
	require.NoError(t, r.Rename("Mutated"))
	got, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, "Viewer", got.Name())

	// Mutating a returned copy must not change stored state either.
	require.NoError(t, got.SetPermissions(nil))
	again, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, again.PermissionCount())
}
