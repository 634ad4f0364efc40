package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/redtestlab/portal/internal/pkg/apperrors"
)

var (
	// ErrMissingToken is returned before any call is made when an
	// authenticated endpoint is requested without a lab API token
	ErrMissingToken = apperrors.New(apperrors.ErrUnauthorized, "Please log in again")
	// ErrUpstreamUnavailable covers network and decoding failures
	ErrUpstreamUnavailable = errors.New("unable to reach the lab server")
)

// UpstreamError is a non-2xx answer of the lab API
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("lab api responded %d: %s", e.StatusCode, e.Message)
}

// IsServerError reports whether the lab API itself failed
func (e *UpstreamError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// AsUpstreamError unwraps an UpstreamError from err
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}

// isUnavailable reports whether err means the lab API could not answer at all
func isUnavailable(err error) bool {
	if errors.Is(err, ErrUpstreamUnavailable) {
		return true
	}
	upstreamErr, ok := AsUpstreamError(err)
	return ok && upstreamErr.IsServerError()
}
