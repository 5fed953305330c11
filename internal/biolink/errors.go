package biolink

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the BioLink client.
var (
	// ErrNotFound indicates the entity or endpoint was not found.
	ErrNotFound = errors.New("not found in BioLink")

	// ErrNetworkError indicates a transport failure (connection, DNS, timeout).
	ErrNetworkError = errors.New("network error communicating with BioLink")

	// ErrInvalidResponse indicates the body was not the structured JSON expected.
	ErrInvalidResponse = errors.New("invalid response from BioLink")
)

// APIError represents a non-success HTTP status from a Monarch service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("BioLink API error (status %d, code %s): %s (url: %s)", e.StatusCode, e.Code, e.Message, e.URL)
	}
	return fmt.Sprintf("BioLink API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrNotFound on 404 responses.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// IsNotFound returns true if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNetworkError returns true if the request never produced an HTTP response.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetworkError)
}

// IsDecodeError returns true if a response arrived but was not usable JSON.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}
