// Package validator provides struct validation utilities with custom
// validators for the tenant access-control domain.
package validator

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/builduhq/tenant-api/pkg/domain/permission"
	"github.com/builduhq/tenant-api/pkg/domain/tenant"
	"github.com/builduhq/tenant-api/pkg/domain/user"
)

// Validator wraps the go-playground validator with custom validations.
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single field validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, e := range v {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return sb.String()
}

// New creates a new Validator with custom validators registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("permission_key", validatePermissionKey)
	_ = v.RegisterValidation("permission_category", validatePermissionCategory)
	_ = v.RegisterValidation("user_status", validateUserStatus)
	_ = v.RegisterValidation("plan", validatePlan)

	return &Validator{validate: v}
}

// Validate validates a struct and returns ValidationErrors if
// validation fails.
func (v *Validator) Validate(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return err
	}

	result := make(ValidationErrors, 0, len(validationErrors))
	for _, e := range validationErrors {
		result = append(result, ValidationError{
			Field:   toSnakeCase(e.Field()),
			Message: formatErrorMessage(e),
		})
	}

	return result
}

// validatePermissionKey validates that a string is a catalog key.
func validatePermissionKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	return permission.IsValid(permission.Key(value))
}

// validatePermissionCategory validates that a string is a catalog
// category.
func validatePermissionCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	_, ok := permission.CategoryKeys(value)
	return ok
}

// validateUserStatus validates that a string is a valid user status.
func validateUserStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	return user.Status(value).IsValid()
}

// validatePlan validates that a string is a valid subscription plan.
func validatePlan(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	return tenant.Plan(value).IsValid()
}

// formatErrorMessage converts a validator error to a human-readable
// message.
func formatErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "permission_key":
		return "must be a permission key from the catalog"
	case "permission_category":
		return fmt.Sprintf("must be one of: %s", strings.Join(permission.Categories(), ", "))
	case "user_status":
		return "must be one of: invited, active, deactivated"
	case "plan":
		return "must be one of: starter, growth, enterprise"
	case "hexcolor":
		return "must be a hex color"
	default:
		return fmt.Sprintf("failed validation: %s", e.Tag())
	}
}

// toSnakeCase converts a Go field name to snake_case for API errors.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
