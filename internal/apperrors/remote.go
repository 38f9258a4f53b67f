package apperrors

import (
	"errors"
	"fmt"
)

// RemoteError is a non-2xx answer from the currency store.
// Message holds the human-readable text the store sent back, if any.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote store returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote store returned %d", e.StatusCode)
}

// Is lets callers test remote rejections against the local sentinels.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrValidation:
		return e.StatusCode == 400
	case ErrDuplicate:
		return e.StatusCode == 409
	}
	return false
}

// UserMessage returns the store-supplied message carried by err, or fallback.
func UserMessage(err error, fallback string) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Message != "" {
		return remoteErr.Message
	}
	return fallback
}
