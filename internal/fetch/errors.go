package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork marks transport-level failures (timeout, connection refused,
// DNS). These are retryable.
var ErrNetwork = errors.New("network error")

// ErrWrite marks local file-system failures. Not retryable.
var ErrWrite = errors.New("write error")

// HTTPError is returned when the server answers with a 4xx/5xx status.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
}

// IsRetryable reports whether another attempt could plausibly succeed.
// Network errors and 5xx responses are retryable; 4xx responses and local
// write failures are not.
func IsRetryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status >= 500
	}
	return errors.Is(err, ErrNetwork)
}
