package fmp

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the FMP API. Body holds the upstream
// payload verbatim so callers can surface FMP's own error message.
type APIError struct {
	Status   int
	Endpoint string
	Body     string
}

func (e *APIError) Error() string {
	excerpt := strings.TrimSpace(e.Body)
	if len(excerpt) > 200 {
		excerpt = excerpt[:200] + "..."
	}
	if excerpt == "" {
		return fmt.Sprintf("fmp: %s returned status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("fmp: %s returned status %d: %s", e.Endpoint, e.Status, excerpt)
}

// StatusOf returns the HTTP status of an APIError in err's chain, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsStatus(err error, status int) bool {
	return StatusOf(err) == status
}
