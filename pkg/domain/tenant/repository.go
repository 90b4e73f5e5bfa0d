package tenant

import "context"

// Repository defines the interface for company storage. A process
// serves a single tenant, so there is exactly one company record.
type Repository interface {
	// Get returns the company, or ErrCompanyNotFound before Save has
	// ever been called.
	Get(ctx context.Context) (*Company, error)

	// Save stores the company record, replacing any previous one.
	Save(ctx context.Context, c *Company) error
}
