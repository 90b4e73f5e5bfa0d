// Package tenant provides the company entity for the white-label
// platform. One process serves one tenant; the company record carries
// the branding and plan the dashboard shell renders.
package tenant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/builduhq/tenant-api/pkg/domain/shared"
)

// Errors.
var (
	ErrCompanyNotFound = fmt.Errorf("%w: company not found", shared.ErrNotFound)
	ErrInvalidPlan     = fmt.Errorf("%w: invalid plan", shared.ErrValidation)
	ErrInvalidColor    = fmt.Errorf("%w: invalid hex color", shared.ErrValidation)
)

// Plan represents the subscription plan of a tenant.
type Plan string

const (
	PlanStarter    Plan = "starter"
	PlanGrowth     Plan = "growth"
	PlanEnterprise Plan = "enterprise"
)

// IsValid checks if the plan is valid.
func (p Plan) IsValid() bool {
	switch p {
	case PlanStarter, PlanGrowth, PlanEnterprise:
		return true
	}
	return false
}

// String returns the string representation of the plan.
func (p Plan) String() string {
	return string(p)
}

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Company represents one customer organization using the platform.
type Company struct {
	id             shared.ID
	name           string
	slug           string
	logoURL        string
	primaryColor   string
	secondaryColor string
	domain         string
	plan           Plan
	createdAt      time.Time
	updatedAt      time.Time
}

// New creates a new company.
func New(name, slug, logoURL, primaryColor, secondaryColor, domain string, plan Plan) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: company name is required", shared.ErrValidation)
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlan, plan)
	}
	for _, c := range []string{primaryColor, secondaryColor} {
		if c != "" && !hexColorRegex.MatchString(c) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
	}

	now := time.Now().UTC()
	return &Company{
		id:             shared.NewID(),
		name:           name,
		slug:           slug,
		logoURL:        logoURL,
		primaryColor:   primaryColor,
		secondaryColor: secondaryColor,
		domain:         domain,
		plan:           plan,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Reconstitute recreates a company from stored data.
func Reconstitute(
	id shared.ID,
	name string,
	slug string,
	logoURL string,
	primaryColor string,
	secondaryColor string,
	domain string,
	plan Plan,
	createdAt time.Time,
	updatedAt time.Time,
) *Company {
	return &Company{
		id:             id,
		name:           name,
		slug:           slug,
		logoURL:        logoURL,
		primaryColor:   primaryColor,
		secondaryColor: secondaryColor,
		domain:         domain,
		plan:           plan,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ID returns the company ID.
func (c *Company) ID() shared.ID { return c.id }

// Name returns the company name.
func (c *Company) Name() string { return c.name }

// Slug returns the URL slug.
func (c *Company) Slug() string { return c.slug }

// LogoURL returns the logo URL.
func (c *Company) LogoURL() string { return c.logoURL }

// PrimaryColor returns the primary brand color.
func (c *Company) PrimaryColor() string { return c.primaryColor }

// SecondaryColor returns the secondary brand color.
func (c *Company) SecondaryColor() string { return c.secondaryColor }

// Domain returns the custom domain, empty when unset.
func (c *Company) Domain() string { return c.domain }

// Plan returns the subscription plan.
func (c *Company) Plan() Plan { return c.plan }

// CreatedAt returns when the company was created.
func (c *Company) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the company was last updated.
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }

// Rename updates the company name. Blank names are rejected.
func (c *Company) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: company name is required", shared.ErrValidation)
	}
	c.name = name
	c.touch()
	return nil
}

// SetBranding updates logo and brand colors. Empty values keep the
// current ones.
func (c *Company) SetBranding(logoURL, primaryColor, secondaryColor string) error {
	for _, col := range []string{primaryColor, secondaryColor} {
		if col != "" && !hexColorRegex.MatchString(col) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, col)
		}
	}
	if logoURL != "" {
		c.logoURL = logoURL
	}
	if primaryColor != "" {
		c.primaryColor = primaryColor
	}
	if secondaryColor != "" {
		c.secondaryColor = secondaryColor
	}
	c.touch()
	return nil
}

// SetDomain updates the custom domain.
func (c *Company) SetDomain(domain string) {
	c.domain = domain
	c.touch()
}

// ChangePlan moves the company to a different plan.
func (c *Company) ChangePlan(plan Plan) error {
	if !plan.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlan, plan)
	}
	c.plan = plan
	c.touch()
	return nil
}

func (c *Company) touch() {
	c.updatedAt = time.Now().UTC()
}
