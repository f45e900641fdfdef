// Package remote holds the error taxonomy shared by the outbound HTTP
// clients (NASA content endpoint, translation endpoint). Services and
// handlers match against these with errors.Is / errors.As.
package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited means every retry attempt got an HTTP 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrTransport means the network itself failed (timeout, DNS
	// failure) and retries, where applicable, were exhausted.
	ErrTransport = errors.New("transport error")

	// ErrEmptyResponse means the remote returned 2xx with no usable body.
	ErrEmptyResponse = errors.New("empty response")
)

// HTTPStatusError is a terminal non-2xx, non-429 response. It is not
// retried.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}
