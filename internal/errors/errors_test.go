package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NotFound("case not found")
		assert.Equal(t, "case not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("no rows")
		err := Wrap(cause, ErrCodeNotFound, "case not found")
		assert.Equal(t, "case not found: no rows", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "lookup failed")
	require.ErrorIs(t, err, cause)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"not found", NotFound("x"), ErrCodeNotFound},
		{"not foundf", NotFoundf("case %s", "abc"), ErrCodeNotFound},
		{"conflict", Conflict("x"), ErrCodeConflict},
		{"conflictf", Conflictf("case %s", "abc"), ErrCodeConflict},
		{"validation", Validation("x"), ErrCodeValidation},
		{"validationf", Validationf("bad %s", "status"), ErrCodeValidation},
		{"foreign key", ForeignKey("x"), ErrCodeForeignKey},
		{"internal", Internal("x"), ErrCodeInternal},
		{"internalf", Internalf("db %s", "down"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "is required")
	assert.Equal(t, ErrCodeValidation, err.Code)
	assert.Equal(t, "email", err.Field)
	assert.Equal(t, "email", GetField(err))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "x"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "x %d", 1))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsValidation(Validation("x")))
	assert.True(t, IsForeignKey(ForeignKey("x")))
	assert.True(t, IsInternal(Internal("x")))
	assert.True(t, IsTimeout(&AppError{Code: ErrCodeTimeout}))
	assert.True(t, IsCanceled(&AppError{Code: ErrCodeCanceled}))

	assert.False(t, IsNotFound(Conflict("x")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestIsHelpers_WrappedChain(t *testing.T) {
	inner := NotFound("case not found")
	wrapped := fmt.Errorf("service: %w", inner)
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, ErrCodeNotFound, GetCode(wrapped))
}

func TestGetCode_NonAppError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, "", GetField(errors.New("plain")))
}
