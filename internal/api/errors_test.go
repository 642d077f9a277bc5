package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/flashdeck/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"deck not found", service.ErrDeckNotFound, http.StatusNotFound, MsgDeckNotFound},
		{"name in use", service.ErrDeckNameInUse, http.StatusBadRequest, MsgDeckNameInUse},
		{"wrapped invalid input", fmt.Errorf("%w: deck name cannot be empty", service.ErrInvalidInput), http.StatusBadRequest, MsgInvalidInput},
		{"generation unavailable", service.ErrGenerationUnavailable, http.StatusServiceUnavailable, MsgGenerationUnavailable},
		{"generation failed", fmt.Errorf("%w: blocked", service.ErrGenerationFailed), http.StatusBadGateway, MsgGenerationFailed},
		{"unknown", errors.New("postgres://user:secret@db/flashdeck refused"), http.StatusInternalServerError, MsgInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.message, GetSafeErrorMessage(tc.err))
		})
	}
}
