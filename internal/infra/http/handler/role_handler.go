package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/builduhq/tenant-api/internal/app"
	"github.com/builduhq/tenant-api/pkg/logger"
	"github.com/builduhq/tenant-api/pkg/validator"
)

// RoleHandler handles role-related HTTP requests.
type RoleHandler struct {
	service   *app.RoleService
	validator *validator.Validator
	logger    *logger.Logger
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(svc *app.RoleService, v *validator.Validator, log *logger.Logger) *RoleHandler {
	return &RoleHandler{
		service:   svc,
		validator: v,
		logger:    log,
	}
}

// RoleResponse represents a role in API responses. UserCount is
// derived from the user directory at response time.
type RoleResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Permissions     []string  `json:"permissions"`
	PermissionCount int       `json:"permission_count"`
	IsDefault       bool      `json:"is_default"`
	UserCount       int       `json:"user_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RoleListResponse represents a list of roles.
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
	Total int            `json:"total"`
}

// ToggleCategoryRequest represents the request to toggle a permission
// category on a role.
type ToggleCategoryRequest struct {
	Category string `json:"category" validate:"required,permission_category"`
}

func toRoleResponse(rc *app.RoleWithCount) RoleResponse {
	perms := rc.Role.Permissions()
	keys := make([]string, len(perms))
	for i, p := range perms {
		keys[i] = p.String()
	}
	return RoleResponse{
		ID:              rc.Role.ID().String(),
		Name:            rc.Role.Name(),
		Description:     rc.Role.Description(),
		Permissions:     keys,
		PermissionCount: rc.Role.PermissionCount(),
		IsDefault:       rc.Role.IsDefault(),
		UserCount:       rc.UserCount,
		CreatedAt:       rc.Role.CreatedAt(),
		UpdatedAt:       rc.Role.UpdatedAt(),
	}
}

// ListRoles handles GET /api/v1/roles
func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.ListRoles(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := RoleListResponse{
		Roles: make([]RoleResponse, len(roles)),
		Total: len(roles),
	}
	for i, rc := range roles {
		resp.Roles[i] = toRoleResponse(rc)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetRole handles GET /api/v1/roles/{roleID}
func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	rc, err := h.service.GetRole(r.Context(), chi.URLParam(r, "roleID"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoleResponse(rc))
}

// CreateRole handles POST /api/v1/roles
func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req app.CreateRoleInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	rc, err := h.service.CreateRole(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoleResponse(rc))
}

// UpdateRole handles PATCH /api/v1/roles/{roleID}
func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req app.UpdateRoleInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	rc, err := h.service.UpdateRole(r.Context(), chi.URLParam(r, "roleID"), req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoleResponse(rc))
}

// DeleteRole handles DELETE /api/v1/roles/{roleID}
func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRole(r.Context(), chi.URLParam(r, "roleID")); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleCategory handles POST /api/v1/roles/{roleID}/toggle-category
func (h *RoleHandler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	var req ToggleCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	rc, err := h.service.ToggleCategoryPermissions(r.Context(), chi.URLParam(r, "roleID"), req.Category)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoleResponse(rc))
}
