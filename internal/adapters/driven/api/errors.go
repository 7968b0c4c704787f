package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// StatusError represents a non-2xx response from the API.
type StatusError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
	}
	return fmt.Sprintf("api: status %d (URL: %s)", e.StatusCode, e.URL)
}

// newStatusError builds a StatusError from a response, pulling the
// detail message out of the body when the server sent one.
func newStatusError(resp *http.Response, reqURL string) *StatusError {
	e := &StatusError{
		StatusCode: resp.StatusCode,
		URL:        reqURL,
	}

	// The backend reports errors as {"detail": "..."}.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return e
	}
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		e.Message = detail.Detail
	}
	return e
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsServerError checks if the error indicates a 5xx response.
func IsServerError(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return false
}
