package app

import (
	"context"
	"fmt"

	"github.com/builduhq/tenant-api/pkg/domain/tenant"
	"github.com/builduhq/tenant-api/pkg/logger"
)

// TenantService handles company settings operations.
type TenantService struct {
	repo   tenant.Repository
	logger *logger.Logger
}

// NewTenantService creates a new TenantService.
func NewTenantService(repo tenant.Repository, log *logger.Logger) *TenantService {
	return &TenantService{
		repo:   repo,
		logger: log.With("service", "tenant"),
	}
}

// GetCompany returns the tenant's company record.
func (s *TenantService) GetCompany(ctx context.Context) (*tenant.Company, error) {
	return s.repo.Get(ctx)
}

// UpdateCompanyInput represents a partial company settings update.
type UpdateCompanyInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	LogoURL        *string `json:"logo_url" validate:"omitempty,url"`
	PrimaryColor   *string `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondary_color" validate:"omitempty,hexcolor"`
	Domain         *string `json:"domain" validate:"omitempty,max=255"`
	Plan           *string `json:"plan" validate:"omitempty,plan"`
}

// UpdateCompany applies a partial update to the company settings.
// Unspecified fields keep their current values.
func (s *TenantService) UpdateCompany(ctx context.Context, input UpdateCompanyInput) (*tenant.Company, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := c.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	logo, primary, secondary := "", "", ""
	if input.LogoURL != nil {
		logo = *input.LogoURL
	}
	if input.PrimaryColor != nil {
		primary = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		secondary = *input.SecondaryColor
	}
	if logo != "" || primary != "" || secondary != "" {
		if err := c.SetBranding(logo, primary, secondary); err != nil {
			return nil, err
		}
	}
	if input.Domain != nil {
		c.SetDomain(*input.Domain)
	}
	if input.Plan != nil {
		if err := c.ChangePlan(tenant.Plan(*input.Plan)); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	s.logger.Info("company settings updated", "id", c.ID().String())
	return c, nil
}
