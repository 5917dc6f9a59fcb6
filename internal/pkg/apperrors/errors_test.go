package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindAuthError, "invalid credentials")

	assert.Equal(t, KindAuthError, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOf_WrappedChain(t *testing.T) {
	inner := New(KindProfileNotFound, "profile not found")
	outer := fmt.Errorf("loading operative: %w", inner)

	assert.Equal(t, KindProfileNotFound, KindOf(outer))
	assert.Equal(t, "profile not found", MessageOf(outer))
}

func TestMessageOf_Unclassified(t *testing.T) {
	assert.Equal(t, "internal error", MessageOf(errors.New("pq: connection refused")))
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindFetchFailed, "failed to load samples", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to load samples")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindAuthError, http.StatusUnauthorized},
		{KindPermissionDenied, http.StatusForbidden},
		{KindProfileNotFound, http.StatusNotFound},
		{KindNotFound, http.StatusNotFound},
		{KindFetchFailed, http.StatusBadGateway},
		{KindWriteFailed, http.StatusBadGateway},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(New(tt.kind, "x")))
	}
}
