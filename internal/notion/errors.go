package notion

import (
	"errors"
	"fmt"
)

// ErrAuthentication indicates the integration token is invalid or expired
var ErrAuthentication = errors.New("invalid or expired Notion token")

// ErrPermission indicates the integration has not been shared with the database
var ErrPermission = errors.New("notion integration lacks access to this database")

// ErrNotFound indicates the database or page does not exist
var ErrNotFound = errors.New("notion object not found")

// ErrRateLimited indicates the API rate limit was exceeded
var ErrRateLimited = errors.New("notion API rate limit exceeded")

// RemoteError represents any other non-2xx response from the Notion API.
type RemoteError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Notion API error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("Notion API error: HTTP %d: %s", e.StatusCode, e.Message)
}

// ReferenceFormatError is returned when a database reference cannot be parsed.
type ReferenceFormatError struct {
	Reference string
}

func (e *ReferenceFormatError) Error() string {
	return fmt.Sprintf("unrecognized Notion database reference %q", e.Reference)
}
