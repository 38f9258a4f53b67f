package restclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// decodeList is the one place that knows list responses come in two shapes:
// a bare JSON array, or a paginated object whose "results" holds the array.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty list response")
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	case '{':
		var envelope struct {
			Results *[]T `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode paginated list: %w", err)
		}
		if envelope.Results == nil {
			return nil, errors.New("paginated list response has no results")
		}
		return *envelope.Results, nil
	default:
		return nil, fmt.Errorf("unexpected list response starting with %q", trimmed[0])
	}
}

// errorMessage extracts the human-readable message of an error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Error != "":
		return payload.Error
	default:
		return payload.Detail
	}
}
