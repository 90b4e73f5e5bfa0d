package handler

import (
	"net/http"
	"time"

	"github.com/builduhq/tenant-api/internal/app"
	"github.com/builduhq/tenant-api/pkg/domain/tenant"
	"github.com/builduhq/tenant-api/pkg/logger"
	"github.com/builduhq/tenant-api/pkg/validator"
)

// TenantHandler handles company settings HTTP requests.
type TenantHandler struct {
	service   *app.TenantService
	validator *validator.Validator
	logger    *logger.Logger
}

// NewTenantHandler creates a new tenant handler.
func NewTenantHandler(svc *app.TenantService, v *validator.Validator, log *logger.Logger) *TenantHandler {
	return &TenantHandler{
		service:   svc,
		validator: v,
		logger:    log,
	}
}

// CompanyResponse represents the company in API responses.
type CompanyResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	LogoURL        string    `json:"logo_url,omitempty"`
	PrimaryColor   string    `json:"primary_color,omitempty"`
	SecondaryColor string    `json:"secondary_color,omitempty"`
	Domain         string    `json:"domain,omitempty"`
	Plan           string    `json:"plan"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCompanyResponse(c *tenant.Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID().String(),
		Name:           c.Name(),
		Slug:           c.Slug(),
		LogoURL:        c.LogoURL(),
		PrimaryColor:   c.PrimaryColor(),
		SecondaryColor: c.SecondaryColor(),
		Domain:         c.Domain(),
		Plan:           c.Plan().String(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

// GetCompany handles GET /api/v1/company
func (h *TenantHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCompany(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompanyResponse(c))
}

// UpdateCompany handles PATCH /api/v1/company
func (h *TenantHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req app.UpdateCompanyInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	c, err := h.service.UpdateCompany(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompanyResponse(c))
}
