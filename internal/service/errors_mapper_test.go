package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galley-app/galley-client/internal/adapter"
)

func Test_normalizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "nil error",
			err:      nil,
			fallback: msgLoginFailed,
			want:     "",
		},
		{
			name:     "server message inside mapped status error",
			err:      fmt.Errorf("%w: invalid credentials", adapter.ErrUnauthorized),
			fallback: msgLoginFailed,
			want:     "invalid credentials",
		},
		{
			name:     "conflict with server message",
			err:      fmt.Errorf("%w: email already registered", adapter.ErrConflict),
			fallback: msgRegisterFailed,
			want:     "email already registered",
		},
		{
			name:     "bare sentinel falls through to its own text",
			err:      adapter.ErrBadGateway,
			fallback: msgSearchFailed,
			want:     adapter.ErrBadGateway.Error(),
		},
		{
			name:     "invalid response keeps its generic message",
			err:      adapter.ErrInvalidResponse,
			fallback: msgLoginFailed,
			want:     "invalid response from server",
		},
		{
			name:     "plain transport error uses its message",
			err:      errors.New("dial tcp: connection refused"),
			fallback: msgLoginFailed,
			want:     "dial tcp: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeError(tt.err, tt.fallback))
		})
	}
}
