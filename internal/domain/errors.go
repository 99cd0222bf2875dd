package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrValidation          = errors.New("validation error")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrSeedConfiguration   = errors.New("seed configuration error")
)

// Inventory gateway failures. Callers match them with errors.Is.
var (
	ErrInventoryUnavailable = errors.New("inventory unavailable")
	ErrInventoryTimeout     = errors.New("inventory timeout")
	ErrInventoryNotFound    = errors.New("inventory record not found")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ConstraintError reports products whose category does not exist.
type ConstraintError struct {
	MissingCategoryIDs []uuid.UUID
}

func (e *ConstraintError) Error() string {
	ids := make([]string, len(e.MissingCategoryIDs))
	for i, id := range e.MissingCategoryIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("constraint violation: unknown category %s", strings.Join(ids, ", "))
}

func (e *ConstraintError) Unwrap() error { return ErrConstraintViolation }

// GatewayErrorKind classifies inventory gateway failures.
type GatewayErrorKind string

const (
	GatewayUnavailable GatewayErrorKind = "UNAVAILABLE"
	GatewayTimeout     GatewayErrorKind = "TIMEOUT"
	GatewayNotFound    GatewayErrorKind = "NOT_FOUND"
)

// GatewayError is returned by the inventory gateway. It never reaches clients.
type GatewayError struct {
	Kind      GatewayErrorKind
	ProductID uuid.UUID
	Err       error
}

// NewGatewayError creates a GatewayError of the given kind.
func NewGatewayError(kind GatewayErrorKind, productID uuid.UUID, cause error) *GatewayError {
	return &GatewayError{Kind: kind, ProductID: productID, Err: cause}
}

func (e *GatewayError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("inventory %s: %s", e.ProductID, e.sentinel())
	}
	return fmt.Sprintf("inventory %s: %s: %v", e.ProductID, e.sentinel(), e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *GatewayError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Err}
}

func (e *GatewayError) sentinel() error {
	switch e.Kind {
	case GatewayTimeout:
		return ErrInventoryTimeout
	case GatewayNotFound:
		return ErrInventoryNotFound
	default:
		return ErrInventoryUnavailable
	}
}
