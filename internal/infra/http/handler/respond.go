// Package handler contains the HTTP handlers for the tenant API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/builduhq/tenant-api/pkg/apierror"
	"github.com/builduhq/tenant-api/pkg/domain/shared"
	"github.com/builduhq/tenant-api/pkg/logger"
	"github.com/builduhq/tenant-api/pkg/validator"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes a request body, responding with 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		apierror.BadRequest("Invalid request body").WriteJSON(w)
		return false
	}
	return true
}

// handleValidationError converts validator errors to a 422 response.
func handleValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		apiErrors := make([]apierror.ValidationError, len(validationErrors))
		for i, ve := range validationErrors {
			apiErrors[i] = apierror.ValidationError{
				Field:   ve.Field,
				Message: ve.Message,
			}
		}
		apierror.ValidationFailed("Validation failed", apiErrors).WriteJSON(w)
		return
	}
	apierror.BadRequest("Validation error").WriteJSON(w)
}

// handleServiceError maps domain errors to API error responses.
func handleServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		apierror.NotFound(resourceName(err)).WriteJSON(w)
	case errors.Is(err, shared.ErrConflict):
		apierror.Conflict(trimSentinel(err)).WriteJSON(w)
	case errors.Is(err, shared.ErrValidation):
		apierror.BadRequest(trimSentinel(err)).WriteJSON(w)
	default:
		log.Error("service error", "error", err)
		apierror.InternalError(err).WriteJSON(w)
	}
}

// resourceName derives a display name from a not-found error message
// like "not found: role not found".
func resourceName(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "role not found") {
		return "Role"
	}
	if strings.Contains(msg, "user not found") {
		return "User"
	}
	if strings.Contains(msg, "company not found") {
		return "Company"
	}
	return ""
}

// trimSentinel strips the leading sentinel prefix from a wrapped
// domain error so clients see only the descriptive part.
func trimSentinel(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
