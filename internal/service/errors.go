package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/store"
)

// Sentinel errors returned by DeckService. Callers use errors.Is.
var (
	// ErrDeckNotFound indicates that no deck has the requested name.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrDeckNameInUse indicates that a deck with the name already exists.
	ErrDeckNameInUse = errors.New("deck name already in use")

	// ErrInvalidInput wraps domain validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationUnavailable indicates that no generator is configured.
	ErrGenerationUnavailable = errors.New("deck generation is not configured")

	// ErrGenerationFailed indicates that the generator could not produce cards.
	ErrGenerationFailed = errors.New("deck generation failed")
)

// ServiceError wraps unexpected errors from DeckService with context.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deck service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("deck service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError maps err to a service sentinel when one applies, and
// wraps it in a ServiceError otherwise.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrDeckNotFound), errors.Is(err, store.ErrDeckNotFound):
		return ErrDeckNotFound
	case errors.Is(err, ErrDeckNameInUse), errors.Is(err, store.ErrDeckNameInUse):
		return ErrDeckNameInUse
	case errors.Is(err, store.ErrInvalidEntity):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, generation.ErrEmptyText):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrTransientFailure):
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
