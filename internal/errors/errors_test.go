package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := Validation("email is required")
	assert.Equal(t, "email is required", plain.Error())

	cause := errors.New("connection refused")
	wrapped := Wrap(cause, ErrCodeUpstream, "login request failed")
	assert.Equal(t, "login request failed: connection refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, ErrCodeInternal, "something broke")

	require.ErrorIs(t, wrapped, cause)

	var appErr *AppError
	require.ErrorAs(t, fmt.Errorf("outer: %w", wrapped), &appErr)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", NotFound("no such user"), IsNotFound, true},
		{"validation", ValidationField("email", "invalid"), IsValidation, true},
		{"unauthorized", Unauthorized("token expired"), IsUnauthorized, true},
		{"forbidden", Forbidden("users tab denied"), IsForbidden, true},
		{"upstream", Upstreamf("status %d", 502), IsUpstream, true},
		{"internal", Internal("oops"), IsInternal, true},
		{"wrapped keeps code", fmt.Errorf("ctx: %w", Upstream("bad gateway")), IsUpstream, true},
		{"mismatch", NotFound("x"), IsForbidden, false},
		{"non-app error", errors.New("plain"), IsUpstream, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestWrap_NilCause(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeUpstream, "ignored %d", 1))
}

func TestGetCodeAndField(t *testing.T) {
	err := ValidationField("password", "too short")
	assert.Equal(t, ErrCodeValidation, GetCode(err))
	assert.Equal(t, "password", GetField(err))

	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, "", GetField(errors.New("plain")))
}
