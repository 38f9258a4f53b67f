package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/currency_admin/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	remote := &apperrors.RemoteError{StatusCode: 409, Message: "currency with this code already exists."}

	assert.Equal(t, "currency with this code already exists.", apperrors.UserMessage(remote, "Failed to save currency"))
	assert.Equal(t, "currency with this code already exists.", apperrors.UserMessage(fmt.Errorf("create: %w", remote), "Failed to save currency"))
	assert.Equal(t, "Failed to save currency", apperrors.UserMessage(&apperrors.RemoteError{StatusCode: 500}, "Failed to save currency"))
	assert.Equal(t, "Failed to save currency", apperrors.UserMessage(errors.New("dial tcp: refused"), "Failed to save currency"))
}

func TestRemoteErrorMatchesSentinels(t *testing.T) {
	assert.ErrorIs(t, &apperrors.RemoteError{StatusCode: 404}, apperrors.ErrNotFound)
	assert.ErrorIs(t, &apperrors.RemoteError{StatusCode: 400}, apperrors.ErrValidation)
	assert.ErrorIs(t, &apperrors.RemoteError{StatusCode: 409}, apperrors.ErrDuplicate)
	assert.NotErrorIs(t, &apperrors.RemoteError{StatusCode: 500}, apperrors.ErrNotFound)
}

func TestAppErrorUnwrap(t *testing.T) {
	assert.ErrorIs(t, apperrors.NewValidationError("bad rate"), apperrors.ErrValidation)
	assert.ErrorIs(t, apperrors.NewNotFoundError("currency 7 not found"), apperrors.ErrNotFound)
	assert.ErrorIs(t, apperrors.NewDuplicateError("dup"), apperrors.ErrDuplicate)
	assert.Equal(t, "bad rate", apperrors.NewValidationError("bad rate").Message)
}
