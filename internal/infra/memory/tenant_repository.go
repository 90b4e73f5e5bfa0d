package memory

import (
	"context"
	"sync"

	"github.com/builduhq/tenant-api/pkg/domain/tenant"
)

// TenantRepository is an in-memory implementation of tenant.Repository.
type TenantRepository struct {
	mu      sync.RWMutex
	company *tenant.Company
}

// Ensure TenantRepository implements tenant.Repository.
var _ tenant.Repository = (*TenantRepository)(nil)

// NewTenantRepository creates an empty in-memory tenant repository.
func NewTenantRepository() *TenantRepository {
	return &TenantRepository{}
}

// Get returns the company record.
func (r *TenantRepository) Get(_ context.Context) (*tenant.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.company == nil {
		return nil, tenant.ErrCompanyNotFound
	}
	return cloneCompany(r.company), nil
}

// Save stores the company record, replacing any previous one.
func (r *TenantRepository) Save(_ context.Context, c *tenant.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.company = cloneCompany(c)
	return nil
}

func cloneCompany(c *tenant.Company) *tenant.Company {
	return tenant.Reconstitute(
		c.ID(),
		c.Name(),
		c.Slug(),
		c.LogoURL(),
		c.PrimaryColor(),
		c.SecondaryColor(),
		c.Domain(),
		c.Plan(),
		c.CreatedAt(),
		c.UpdatedAt(),
	)
}
