package handler

import (
	"net/http"

	"github.com/builduhq/tenant-api/internal/app"
	"github.com/builduhq/tenant-api/pkg/domain/permission"
)

// PermissionHandler serves the read-only permission catalog.
type PermissionHandler struct {
	service *app.RoleService
}

// NewPermissionHandler creates a new permission handler.
func NewPermissionHandler(svc *app.RoleService) *PermissionHandler {
	return &PermissionHandler{service: svc}
}

// PermissionResponse represents one catalog entry.
type PermissionResponse struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// PermissionListResponse represents the flat catalog.
type PermissionListResponse struct {
	Permissions []PermissionResponse `json:"permissions"`
	Total       int                  `json:"total"`
}

// CategoryResponse represents one category group.
type CategoryResponse struct {
	Category    string               `json:"category"`
	Permissions []PermissionResponse `json:"permissions"`
}

func toPermissionResponse(p permission.Permission) PermissionResponse {
	return PermissionResponse{
		Key:      p.Key.String(),
		Label:    p.Label,
		Category: p.Category,
	}
}

// ListPermissions handles GET /api/v1/permissions
func (h *PermissionHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	perms := h.service.ListPermissions(r.Context())

	resp := PermissionListResponse{
		Permissions: make([]PermissionResponse, len(perms)),
		Total:       len(perms),
	}
	for i, p := range perms {
		resp.Permissions[i] = toPermissionResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListCategories handles GET /api/v1/permissions/categories
func (h *PermissionHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	groups := h.service.ListPermissionGroups(r.Context())

	resp := make([]CategoryResponse, len(groups))
	for i, g := range groups {
		cr := CategoryResponse{
			Category:    g.Category,
			Permissions: make([]PermissionResponse, len(g.Permissions)),
		}
		for j, p := range g.Permissions {
			cr.Permissions[j] = toPermissionResponse(p)
		}
		resp[i] = cr
	}
	writeJSON(w, http.StatusOK, resp)
}
