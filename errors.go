package veria

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stable machine-readable error codes carried by Error.Code.
const (
	CodeInvalidConfig     = "INVALID_CONFIG"
	CodeInvalidAPIKey     = "INVALID_API_KEY"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeTimeout           = "TIMEOUT"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeServiceError      = "SERVICE_ERROR"
	CodeClientClosed      = "CLIENT_CLOSED"
	CodeNetworkError      = "NETWORK_ERROR"
)

// Error is the typed error returned by every failing SDK operation. Code is
// stable and machine-readable; Message is human-readable and may come from
// the server. StatusCode is the HTTP status, or 0 for failures that never
// reached the server.
type Error struct {
	Code       string
	Message    string
	StatusCode int

	kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("veria: %s (%s)", e.Message, e.Code)
}

// Unwrap returns the per-kind sentinel (ErrAuthentication, ErrRateLimit, ...)
// so errors.Is works on SDK errors.
func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, code, message string) *Error {
	return &Error{Code: code, Message: message, kind: kind}
}

// errorEnvelope is the error body the API returns on non-2xx responses.
// Older endpoints put the message at the top level.
type errorEnvelope struct {
	Err struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

// errorFromResponse maps a non-2xx response onto the error taxonomy. The kind
// and code are fixed by status class so callers see a stable taxonomy even
// when the server omits a body; the server's message is passed through when
// present.
func errorFromResponse(status int, body []byte) *Error {
	message := fmt.Sprintf("request failed with status %d", status)
	if len(body) > 0 {
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil {
			if envelope.Err.Message != "" {
				message = envelope.Err.Message
			} else if envelope.Message != "" {
				message = envelope.Message
			}
		}
	}

	e := &Error{Message: message, StatusCode: status}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.Code, e.kind = CodeInvalidAPIKey, ErrAuthentication
	case http.StatusTooManyRequests:
		e.Code, e.kind = CodeRateLimitExceeded, ErrRateLimit
	case http.StatusBadRequest:
		e.Code, e.kind = CodeInvalidInput, ErrValidation
	default:
		e.Code, e.kind = CodeServiceError, ErrService
	}
	return e
}
