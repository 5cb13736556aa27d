package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		details    []any
		wantCode   int
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "defaults to bad request",
			code:       ErrRoomNameRequired,
			wantCode:   ErrRoomNameRequired,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "roomName is required.",
		},
		{
			name:       "formats template",
			code:       ErrFieldTooLong,
			details:    []any{"userEmail"},
			wantCode:   ErrFieldTooLong,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "userEmail is too long.",
		},
		{
			name:       "internal cause is not exposed",
			code:       ErrTokenSigningFailed,
			details:    []any{errors.New("crypto/rsa: verification error")},
			wantCode:   ErrTokenSigningFailed,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to generate meeting token.",
		},
		{
			name:       "explicit status",
			code:       ErrRateLimitExceeded,
			wantCode:   ErrRateLimitExceeded,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "Too many requests. Please try again later.",
		},
		{
			name:       "unknown code",
			code:       4242,
			wantCode:   ErrUnknown,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewError(tt.code, tt.details...)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestNewError_DoesNotMutateTemplate(t *testing.T) {
	_ = NewError(ErrConflictingFields, "roomName")
	again := NewError(ErrConflictingFields, "userName")
	assert.Equal(t, "Conflicting values supplied for userName.", again.Message)
}
