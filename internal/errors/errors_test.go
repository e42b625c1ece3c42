package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_MessagePreferredOverCause(t *testing.T) {
	appErr := NewAppError(ErrStorage, "could not save submission", CodeStorageError)

	assert.Equal(t, "could not save submission", appErr.Error())
	assert.ErrorIs(t, appErr, ErrStorage)
}

func TestAppError_FallsBackToCause(t *testing.T) {
	appErr := &AppError{Err: ErrTransport, Code: CodeTransportError}

	assert.Equal(t, ErrTransport.Error(), appErr.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	wrapped := Wrap(ErrStorage, "saving submission")
	assert.EqualError(t, wrapped, "saving submission: storage failure")
	assert.ErrorIs(t, wrapped, ErrStorage)
}

func TestClassificationHelpers(t *testing.T) {
	assert.True(t, IsValidation(fmt.Errorf("bad input: %w", ErrValidation)))
	assert.True(t, IsStorage(fmt.Errorf("insert failed: %w", ErrStorage)))
	assert.True(t, IsTransport(fmt.Errorf("smtp down: %w", ErrTransport)))

	other := stderrors.New("something else")
	assert.False(t, IsValidation(other))
	assert.False(t, IsStorage(other))
	assert.False(t, IsTransport(other))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", ErrValidation, CodeInvalidInput},
		{"storage", fmt.Errorf("wrapped: %w", ErrStorage), CodeStorageError},
		{"transport", ErrTransport, CodeTransportError},
		{"not found", ErrNotFound, CodeNotFound},
		{"unknown", stderrors.New("boom"), CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorCode(tt.err))
		})
	}
}
