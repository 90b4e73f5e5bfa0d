package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/builduhq/tenant-api/internal/app"
	"github.com/builduhq/tenant-api/pkg/domain/user"
	"github.com/builduhq/tenant-api/pkg/logger"
	"github.com/builduhq/tenant-api/pkg/validator"
)

// UserHandler handles tenant user HTTP requests.
type UserHandler struct {
	userService *app.UserService
	ac          *app.AccessControl
	validator   *validator.Validator
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *app.UserService, ac *app.AccessControl, v *validator.Validator, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: svc,
		ac:          ac,
		validator:   v,
		logger:      log,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RoleID    string    `json:"role_id"`
	Status    string    `json:"status"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse represents a list of users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// ReassignRoleRequest represents the request to change a user's role.
type ReassignRoleRequest struct {
	RoleID string `json:"role_id" validate:"required"`
}

// PermissionCheckResponse represents the result of a permission check.
type PermissionCheckResponse struct {
	UserID  string `json:"user_id"`
	Key     string `json:"key"`
	Granted bool   `json:"granted"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		RoleID:    u.RoleID().String(),
		Status:    u.Status().String(),
		AvatarURL: u.AvatarURL(),
		JoinedAt:  u.JoinedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// ListUsers handles GET /api/v1/users?q=
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := UserListResponse{
		Users: make([]UserResponse, len(users)),
		Total: len(users),
	}
	for i, u := range users {
		resp.Users[i] = toUserResponse(u)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetUser handles GET /api/v1/users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// InviteUser handles POST /api/v1/users
func (h *UserHandler) InviteUser(w http.ResponseWriter, r *http.Request) {
	var req app.InviteUserInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	u, err := h.userService.InviteUser(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// ActivateUser handles POST /api/v1/users/{userID}/activate
func (h *UserHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.ActivateUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// DeactivateUser handles POST /api/v1/users/{userID}/deactivate
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.DeactivateUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ReassignRole handles PUT /api/v1/users/{userID}/role
func (h *UserHandler) ReassignRole(w http.ResponseWriter, r *http.Request) {
	var req ReassignRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	u, err := h.userService.ReassignRole(r.Context(), chi.URLParam(r, "userID"), req.RoleID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// CheckPermission handles GET /api/v1/users/{userID}/permissions/{key}
func (h *UserHandler) CheckPermission(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	key := chi.URLParam(r, "key")

	granted, err := h.ac.CheckPermission(r.Context(), userID, key)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, PermissionCheckResponse{
		UserID:  userID,
		Key:     key,
		Granted: granted,
	})
}
