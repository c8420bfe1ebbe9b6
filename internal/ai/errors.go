// Package ai holds the shared types and error taxonomy of the AI content
// pipeline: prompts go out through a model gateway, raw responses come back
// and are parsed into the structures defined here.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Gateway errors. Callers match with errors.Is to decide which message to
// surface; none of these is retried automatically.
var (
	// ErrAuth means the upstream rejected our credential.
	ErrAuth = errors.New("ai: invalid or missing api credential")
	// ErrQuota means the upstream rate limit or quota is exhausted.
	ErrQuota = errors.New("ai: quota exceeded")
	// ErrModelLoading means the hosted model is still starting up and the
	// request should be retried after a short delay.
	ErrModelLoading = errors.New("ai: model is loading, retry shortly")
	// ErrTimeout means the request hit the configured deadline.
	ErrTimeout = errors.New("ai: request timed out")
	// ErrConnection means the upstream could not be reached at all.
	ErrConnection = errors.New("ai: connection failed")
	// ErrUpstream covers any other non-2xx response.
	ErrUpstream = errors.New("ai: upstream error")
)

// ClassifyStatus maps a non-2xx upstream status code onto the gateway error
// taxonomy. The detail string is preserved for logs.
func ClassifyStatus(status int, detail string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrAuth, status)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d)", ErrQuota, status)
	case status == http.StatusServiceUnavailable:
		return fmt.Errorf("%w (status %d)", ErrModelLoading, status)
	default:
		if detail != "" {
			return fmt.Errorf("%w (status %d): %s", ErrUpstream, status, detail)
		}
		return fmt.Errorf("%w (status %d)", ErrUpstream, status)
	}
}

// ClassifyTransport maps a transport-level failure (no HTTP response) onto
// the gateway error taxonomy.
func ClassifyTransport(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}
