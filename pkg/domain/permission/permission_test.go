package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builduhq/tenant-api/pkg/domain/permission"
)

func TestCatalog(t *testing.T) {
	t.Run("has 21 entries", func(t *testing.T) {
		assert.Len(t, permission.All(), 21)
		assert.Len(t, permission.AllKeys(), 21)
	})

	t.Run("keys are unique", func(t *testing.T) {
		seen := make(map[permission.Key]bool)
		for _, k := range permission.AllKeys() {
			assert.False(t, seen[k], "duplicate key %s", k)
			seen[k] = true
		}
	})

	t.Run("declaration order is stable", func(t *testing.T) {
		keys := permission.AllKeys()
		assert.Equal(t, permission.ViewDashboard, keys[0])
		assert.Equal(t, permission.ViewAdminDashboard, keys[len(keys)-1])
	})

	t.Run("every entry has label and category", func(t *testing.T) {
		for _, p := range permission.All() {
			assert.NotEmpty(t, p.Label, "key %s", p.Key)
			assert.NotEmpty(t, p.Category, "key %s", p.Key)
		}
	})

	t.Run("All returns a copy", func(t *testing.T) {
		first := permission.All()
		first[0].Label = "mutated"
		assert.Equal(t, "View Dashboard", permission.All()[0].Label)
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, permission.IsValid(permission.ManageRoles))
	assert.True(t, permission.IsValid(permission.ViewFeed))
	assert.False(t, permission.IsValid("delete_everything"))
	assert.False(t, permission.IsValid(""))
}

func TestLookup(t *testing.T) {
	p, ok := permission.Lookup(permission.ViewRevShareDetail)
	require.True(t, ok)
	assert.Equal(t, "View RevShare Detail", p.Label)
	assert.Equal(t, "Revenue Share", p.Category)

	_, ok = permission.Lookup("nope")
	assert.False(t, ok)
}

func TestGroupByCategory(t *testing.T) {
	groups := permission.GroupByCategory()
	require.Len(t, groups, 9)

	t.Run("categories in first-seen order", func(t *testing.T) {
		want := []string{
			"Dashboard", "Production", "Organization", "Revenue Share",
			"Recruiting", "Growth Hub", "Community", "Leaderboard", "Admin",
		}
		assert.Equal(t, want, permission.Categories())
	})

	t.Run("groups cover the whole catalog", func(t *testing.T) {
		total := 0
		for _, g := range groups {
			total += len(g.Permissions)
			for _, p := range g.Permissions {
				assert.Equal(t, g.Category, p.Category)
			}
		}
		assert.Equal(t, 21, total)
	})

	t.Run("admin group holds the management keys", func(t *testing.T) {
		last := groups[len(groups)-1]
		assert.Equal(t, "Admin", last.Category)
		require.Len(t, last.Permissions, 4)
		assert.Equal(t, permission.ManageUsers, last.Permissions[0].Key)
	})
}

func TestCategoryKeys(t *testing.T) {
	t.Run("known category", func(t *testing.T) {
		keys, ok := permission.CategoryKeys("Dashboard")
		require.True(t, ok)
		assert.Equal(t, []permission.Key{
			permission.ViewDashboard,
			permission.ViewEarnings,
			permission.ViewPipeline,
		}, keys)
	})

	t.Run("single-entry category", func(t *testing.T) {
		keys, ok := permission.CategoryKeys("Leaderboard")
		require.True(t, ok)
		assert.Equal(t, []permission.Key{permission.ViewLeaderboard}, keys)
	})

	t.Run("unknown category", func(t *testing.T) {
		keys, ok := permission.CategoryKeys("Nonsense")
		assert.False(t, ok)
		assert.Empty(t, keys)
	})

	t.Run("category match is case sensitive", func(t *testing.T) {
		_, ok := permission.CategoryKeys("dashboard")
		assert.False(t, ok)
	})
}
