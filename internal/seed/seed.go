// Package seed loads demo tenant fixtures into the in-memory store.
// The default fixture is the Oaktree Funding demo tenant the dashboard
// ships with; an alternative fixture file can be supplied through
// configuration.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/builduhq/tenant-api/pkg/domain/permission"
	"github.com/builduhq/tenant-api/pkg/domain/role"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
	"github.com/builduhq/tenant-api/pkg/domain/tenant"
	"github.com/builduhq/tenant-api/pkg/domain/user"
	"github.com/builduhq/tenant-api/pkg/logger"
)

//go:embed demo_tenant.yaml
var demoFixture []byte

// Fixture is the YAML shape of a demo tenant.
type Fixture struct {
	Company CompanyFixture `yaml:"company"`
	Roles   []RoleFixture  `yaml:"roles"`
	Users   []UserFixture  `yaml:"users"`
}

// CompanyFixture describes the tenant company record.
type CompanyFixture struct {
	Name           string `yaml:"name"`
	Slug           string `yaml:"slug"`
	LogoURL        string `yaml:"logo_url"`
	PrimaryColor   string `yaml:"primary_color"`
	SecondaryColor string `yaml:"secondary_color"`
	Domain         string `yaml:"domain"`
	Plan           string `yaml:"plan"`
}

// RoleFixture describes one role. Permissions may contain "*" to grant
// the full catalog, or "!key" entries to exclude keys from a preceding
// "*".
type RoleFixture struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Permissions []string `yaml:"permissions"`
	IsDefault   bool     `yaml:"is_default"`
}

// UserFixture describes one user. Role refers to a role by name.
type UserFixture struct {
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	Role      string `yaml:"role"`
	Status    string `yaml:"status"`
	AvatarURL string `yaml:"avatar_url"`
}

// Stores groups the repositories the seeder writes to.
type Stores struct {
	Roles  role.Repository
	Users  user.Repository
	Tenant tenant.Repository
}

// Load parses a fixture from YAML bytes.
func Load(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &f, nil
}

// LoadFile parses a fixture from a file path, falling back to the
// embedded demo tenant when path is empty.
func LoadFile(path string) (*Fixture, error) {
	if path == "" {
		return Load(demoFixture)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Load(data)
}

// Apply writes the fixture into the stores. It goes through the domain
// constructors and state machine, so a fixture that violates catalog
// or lifecycle rules is rejected rather than silently stored.
func Apply(ctx context.Context, f *Fixture, stores Stores, log *logger.Logger) error {
	if f.Company.Name != "" {
		c, err := tenant.New(
			f.Company.Name,
			f.Company.Slug,
			f.Company.LogoURL,
			f.Company.PrimaryColor,
			f.Company.SecondaryColor,
			f.Company.Domain,
			tenant.Plan(f.Company.Plan),
		)
		if err != nil {
			return fmt.Errorf("seed company %q: %w", f.Company.Name, err)
		}
		if err := stores.Tenant.Save(ctx, c); err != nil {
			return err
		}
	}

	roleIDs := make(map[string]shared.ID, len(f.Roles))
	for _, rf := range f.Roles {
		keys, err := expandPermissions(rf.Permissions)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", rf.Name, err)
		}
		r, err := role.New(rf.Name, rf.Description, keys, rf.IsDefault)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", rf.Name, err)
		}
		if err := stores.Roles.Create(ctx, r); err != nil {
			return err
		}
		roleIDs[rf.Name] = r.ID()
	}

	for _, uf := range f.Users {
		roleID, ok := roleIDs[uf.Role]
		if !ok {
			return fmt.Errorf("seed user %q: unknown role %q", uf.Email, uf.Role)
		}
		u, err := user.Invite(uf.Name, uf.Email, roleID)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", uf.Email, err)
		}
		if uf.AvatarURL != "" {
			u.SetAvatarURL(uf.AvatarURL)
		}
		switch user.Status(uf.Status) {
		case user.StatusActive:
			if err := u.Activate(); err != nil {
				return fmt.Errorf("seed user %q: %w", uf.Email, err)
			}
		case user.StatusDeactivated:
			u.Deactivate()
		case user.StatusInvited, "":
			// Stays invited.
		default:
			return fmt.Errorf("seed user %q: invalid status %q", uf.Email, uf.Status)
		}
		if err := stores.Users.Create(ctx, u); err != nil {
			return err
		}
	}

	log.Info("demo tenant seeded",
		"company", f.Company.Name,
		"roles", len(f.Roles),
		"users", len(f.Users),
	)
	return nil
}

// expandPermissions resolves fixture permission lists: "*" grants the
// full catalog, "!key" removes a key granted by "*".
func expandPermissions(entries []string) ([]permission.Key, error) {
	var keys []permission.Key
	excluded := make(map[permission.Key]struct{})

	for _, e := range entries {
		switch {
		case e == "*":
			keys = permission.AllKeys()
		case len(e) > 1 && e[0] == '!':
			excluded[permission.Key(e[1:])] = struct{}{}
		default:
			keys = append(keys, permission.Key(e))
		}
	}

	if len(excluded) == 0 {
		return keys, nil
	}
	out := make([]permission.Key, 0, len(keys))
	for _, k := range keys {
		if _, skip := excluded[k]; !skip {
			out = append(out, k)
		}
	}
	return out, nil
}
