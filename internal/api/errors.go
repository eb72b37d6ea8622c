package api

import "fmt"

// HTTPError is the normalized failure for a non-2xx response from the
// task API. Body holds the response body when it was valid JSON (the
// server's structured error payload); otherwise Body is empty and the
// error message falls back to the status line.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d", e.StatusCode)
}
