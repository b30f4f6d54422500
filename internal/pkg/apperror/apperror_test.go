package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSetsStatusFromKind(t *testing.T) {
	tests := []struct {
		kind Kind
		code int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindConnectivity, http.StatusServiceUnavailable},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := New(tt.kind, "boom")
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.kind, err.Kind)
		})
	}
}

func TestWithCauseKeepsSentinelIdentity(t *testing.T) {
	sentinel := New(KindConflict, "slot already booked")
	cause := errors.New("duplicate key value violates unique constraint")

	err := fmt.Errorf("create booking: %w", sentinel.WithCause(cause))

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Nil(t, sentinel.Err, "sentinel must not be mutated")
}

func TestIsDoesNotMatchOtherMessages(t *testing.T) {
	a := New(KindNotFound, "booking not found")
	b := New(KindNotFound, "user not found")

	assert.False(t, errors.Is(a, b))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, KindInternal))
	assert.True(t, IsKind(Wrap(errors.New("x"), KindConnectivity, "db down"), KindConnectivity))
}
