package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/service"
)

// Client-facing messages for service errors.
const (
	MsgDeckNotFound          = "no file by that name was found"
	MsgDeckNameInUse         = "name already in use"
	MsgInvalidInput          = "invalid request"
	MsgGenerationUnavailable = "deck generation is not configured"
	MsgGenerationFailed      = "deck generation failed"
	MsgInternal              = "internal server error"
)

// MapErrorToStatusCode maps service errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrDeckNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDeckNameInUse),
		errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrGenerationUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message sent to clients for err. It never
// includes err's own text.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrDeckNotFound):
		return MsgDeckNotFound
	case errors.Is(err, service.ErrDeckNameInUse):
		return MsgDeckNameInUse
	case errors.Is(err, service.ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, service.ErrGenerationUnavailable):
		return MsgGenerationUnavailable
	case errors.Is(err, service.ErrGenerationFailed):
		return MsgGenerationFailed
	default:
		return MsgInternal
	}
}
