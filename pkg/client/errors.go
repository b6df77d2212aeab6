package client

import (
	"errors"
	"fmt"
)

// ErrNoToken is returned by Build when no API token was configured.
var ErrNoToken = errors.New("no API token configured")

// InvalidTokenError is returned by Build when the configured token contains
// bytes that cannot appear in an Authorization header.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return "API token contains invalid header bytes"
}

// APIError is a non-2xx response from the server. Body carries the response
// body when it could be read, for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lichess returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("lichess returned status %d: %s", e.StatusCode, e.Body)
}
