package coordinator

import (
	"errors"
	"fmt"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/taskstore"
)

var (
	// ErrTaskNotFound is returned when no live record exists for the id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskActive is returned when a duplicate execute loop is requested.
	ErrTaskActive = errors.New("task already active")
)

// ValidationError wraps field-specific validation errors on task creation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Classify maps a coordinator error to the platform error taxonomy. The API
// layer translates kinds into HTTP statuses.
func Classify(err error) models.ErrorKind {
	switch {
	case err == nil:
		return ""
	case IsValidationError(err):
		return models.ErrKindInvalidInput
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, taskstore.ErrNotFound):
		return models.ErrKindNotFound
	case errors.Is(err, taskstore.ErrConflict), errors.Is(err, taskstore.ErrAlreadyExists), errors.Is(err, ErrTaskActive):
		return models.ErrKindConflict
	case errors.Is(err, broker.ErrUnavailable):
		return models.ErrKindBrokerUnavailable
	case errors.Is(err, taskstore.ErrUnavailable):
		return models.ErrKindStoreUnavailable
	default:
		return models.ErrKindInternal
	}
}
