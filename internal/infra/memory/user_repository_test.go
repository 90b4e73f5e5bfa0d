package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builduhq/tenant-api/internal/infra/memory"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
	"github.com/builduhq/tenant-api/pkg/domain/user"
)

func newUser(t *testing.T, name, email string, roleID shared.ID) *user.User {
	t.Helper()
	u, err := user.Invite(name, email, roleID)
	require.NoError(t, err)
	return u
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	roleID := shared.NewID()

	u := newUser(t, "Jane", "jane@x.com", roleID)
	require.NoError(t, repo.Create(ctx, u))

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "jane@x.com", got.Email())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, shared.NewID())
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("update", func(t *testing.T) {
		got, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		got.Deactivate()
		require.NoError(t, repo.Update(ctx, got))

		reloaded, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, user.StatusDeactivated, reloaded.Status())
	})

	t.Run("update unknown user", func(t *testing.T) {
		ghost := newUser(t, "Ghost", "ghost@x.com", roleID)
		assert.ErrorIs(t, repo.Update(ctx, ghost), user.ErrUserNotFound)
	})
}

func TestUserRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	roleID := shared.NewID()

	require.NoError(t, repo.Create(ctx, newUser(t, "Sarah Chen", "sarah@oaktree.com", roleID)))
	require.NoError(t, repo.Create(ctx, newUser(t, "Mike Torres", "mike@oaktree.com", roleID)))
	require.NoError(t, repo.Create(ctx, newUser(t, "Lisa Park", "lisa@other.com", roleID)))

	t.Run("empty query returns all in order", func(t *testing.T) {
		users, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "Sarah Chen", users[0].Name())
		assert.Equal(t, "Lisa Park", users[2].Name())
	})

	t.Run("query filters by name or email", func(t *testing.T) {
		users, err := repo.List(ctx, "OAKTREE")
		require.NoError(t, err)
		assert.Len(t, users, 2)

		users, err = repo.List(ctx, "park")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Lisa Park", users[0].Name())
	})
}

func TestUserRepository_RoleCounts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	roleA := shared.NewID()
	roleB := shared.NewID()

	require.NoError(t, repo.Create(ctx, newUser(t, "A1", "a1@x.com", roleA)))
	require.NoError(t, repo.Create(ctx, newUser(t, "A2", "a2@x.com", roleA)))
	deactivated := newUser(t, "A3", "a3@x.com", roleA)
	deactivated.Deactivate()
	require.NoError(t, repo.Create(ctx, deactivated))

	t.Run("counts all statuses", func(t *testing.T) {
		n, err := repo.CountByRole(ctx, roleA)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("zero for unreferenced role", func(t *testing.T) {
		n, err := repo.CountByRole(ctx, roleB)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("AnyWithRole", func(t *testing.T) {
		ok, err := repo.AnyWithRole(ctx, roleA)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.AnyWithRole(ctx, roleB)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
