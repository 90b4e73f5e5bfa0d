// Package permission defines the catalog of grantable capabilities.
//
// The catalog is fixed at compile time: every permission the platform
// understands is declared here with a stable symbolic key, a display
// label, and a category used to group checkboxes in the role editor.
// It is read-only after process start and never mutated at runtime.
package permission

// Key is the stable symbolic identifier for one grantable capability.
type Key string

// String returns the string representation of the key.
func (k Key) String() string {
	return string(k)
}

// Dashboard permissions.
const (
	ViewDashboard Key = "view_dashboard"
	ViewEarnings  Key = "view_earnings"
	ViewPipeline  Key = "view_pipeline"
)

// Production permissions.
const (
	ViewProduction Key = "view_production"
	EditDeals      Key = "edit_deals"
	ViewAllDeals   Key = "view_all_deals"
)

// Organization permissions.
const (
	ViewOrg          Key = "view_org"
	ViewTeamProfiles Key = "view_team_profiles"
)

// Revenue share permissions.
const (
	ViewRevShare       Key = "view_revshare"
	ViewRevShareDetail Key = "view_revshare_detail"
)

// Recruiting permissions.
const (
	SendReferral        Key = "send_referral"
	ViewRecruitPipeline Key = "view_recruit_pipeline"
)

// Growth hub permissions.
const (
	ViewResources   Key = "view_resources"
	UploadResources Key = "upload_resources"
)

// Community permissions.
const (
	ViewFeed   Key = "view_feed"
	PostToFeed Key = "post_to_feed"
)

// Leaderboard permissions.
const (
	ViewLeaderboard Key = "view_leaderboard"
)

// Admin permissions.
const (
	ManageUsers         Key = "manage_users"
	ManageRoles         Key = "manage_roles"
	EditCompanySettings Key = "edit_company_settings"
	ViewAdminDashboard  Key = "view_admin_dashboard"
)

// Permission is one catalog entry: a key plus its display metadata.
type Permission struct {
	Key      Key    `json:"key" yaml:"key"`
	Label    string `json:"label" yaml:"label"`
	Category string `json:"category" yaml:"category"`
}

// catalog is the full, ordered permission catalog. Order matters: the
// role editor renders permissions in declaration order.
var catalog = []Permission{
	{Key: ViewDashboard, Label: "View Dashboard", Category: "Dashboard"},
	{Key: ViewEarnings, Label: "View Earnings", Category: "Dashboard"},
	{Key: ViewPipeline, Label: "View Pipeline", Category: "Dashboard"},
	{Key: ViewProduction, Label: "View Production Stats", Category: "Production"},
	{Key: EditDeals, Label: "Edit Own Deals", Category: "Production"},
	{Key: ViewAllDeals, Label: "View All Deals (Team)", Category: "Production"},
	{Key: ViewOrg, Label: "View Org Chart", Category: "Organization"},
	{Key: ViewTeamProfiles, Label: "View Team Profiles", Category: "Organization"},
	{Key: ViewRevShare, Label: "View RevShare", Category: "Revenue Share"},
	{Key: ViewRevShareDetail, Label: "View RevShare Detail", Category: "Revenue Share"},
	{Key: SendReferral, Label: "Send Referral", Category: "Recruiting"},
	{Key: ViewRecruitPipeline, Label: "View Recruit Pipeline", Category: "Recruiting"},
	{Key: ViewResources, Label: "View Resources", Category: "Growth Hub"},
	{Key: UploadResources, Label: "Upload Resources", Category: "Growth Hub"},
	{Key: ViewFeed, Label: "View Feed", Category: "Community"},
	{Key: PostToFeed, Label: "Post to Feed", Category: "Community"},
	{Key: ViewLeaderboard, Label: "View Leaderboard", Category: "Leaderboard"},
	{Key: ManageUsers, Label: "Manage Users", Category: "Admin"},
	{Key: ManageRoles, Label: "Manage Roles", Category: "Admin"},
	{Key: EditCompanySettings, Label: "Edit Company Settings", Category: "Admin"},
	{Key: ViewAdminDashboard, Label: "View Admin Dashboard", Category: "Admin"},
}

// byKey indexes the catalog for O(1) validity checks.
var byKey = func() map[Key]Permission {
	m := make(map[Key]Permission, len(catalog))
	for _, p := range catalog {
		m[p.Key] = p
	}
	return m
}()

// All returns the full catalog in declaration order.
// The returned slice is a copy; callers may not mutate the catalog.
func All() []Permission {
	out := make([]Permission, len(catalog))
	copy(out, catalog)
	return out
}

// AllKeys returns every catalog key in declaration order.
func AllKeys() []Key {
	keys := make([]Key, len(catalog))
	for i, p := range catalog {
		keys[i] = p.Key
	}
	return keys
}

// IsValid reports whether key exists in the catalog.
func IsValid(key Key) bool {
	_, ok := byKey[key]
	return ok
}

// Lookup returns the catalog entry for key.
func Lookup(key Key) (Permission, bool) {
	p, ok := byKey[key]
	return p, ok
}

// Group is one category with its permissions in catalog order.
type Group struct {
	Category    string       `json:"category"`
	Permissions []Permission `json:"permissions"`
}

// GroupByCategory returns the catalog grouped by category. Categories
// appear in first-seen order and permissions keep catalog order within
// each group.
func GroupByCategory() []Group {
	idx := make(map[string]int)
	var groups []Group
	for _, p := range catalog {
		i, ok := idx[p.Category]
		if !ok {
			i = len(groups)
			idx[p.Category] = i
			groups = append(groups, Group{Category: p.Category})
		}
		groups[i].Permissions = append(groups[i].Permissions, p)
	}
	return groups
}

// Categories returns the category names in first-seen order.
func Categories() []string {
	groups := GroupByCategory()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Category
	}
	return names
}

// CategoryKeys returns the keys belonging to one category in catalog
// order. The second return is false for an unknown category.
func CategoryKeys(category string) ([]Key, bool) {
	var keys []Key
	for _, p := range catalog {
		if p.Category == category {
			keys = append(keys, p.Key)
		}
	}
	return keys, len(keys) > 0
}
