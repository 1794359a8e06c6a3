package dpapi

import (
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
)

// Static errors for err113 compliance.
var (
	ErrNoMoreItems           = errors.New("no more items")
	ErrBothCursors           = errors.New("after and before cursors are mutually exclusive")
	ErrBeforeCursorIteration = errors.New("before cursor cannot be used when iterating")
	ErrConfigRequired        = errors.New("config is required")
	ErrEndpointRequired      = errors.New("API endpoint is required")
)

// FieldError describes a single invalid field reported by the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError represents a non-2xx response from the DirectPay API. When
// the server returned a structured error body its fields are decoded;
// otherwise only StatusCode and RawBody are populated.
type APIError struct {
	StatusCode       int          `json:"code"`
	Type             string       `json:"type"`
	Message          string       `json:"message"`
	DocumentationURL string       `json:"documentation_url,omitempty"`
	Errors           []FieldError `json:"errors,omitempty"`
	RawBody          []byte       `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}

	if e.Type == "" {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s (status %d)", e.Type, e.Message, e.StatusCode)
}

// ParseAPIError builds an APIError from a non-2xx response. Structured
// error bodies of the form {"error": {...}} are decoded; anything else
// is carried verbatim in RawBody.
func ParseAPIError(statusCode int, body []byte) *APIError {
	var wire struct {
		Err APIError `json:"error"`
	}

	if err := json.Unmarshal(body, &wire); err == nil && (wire.Err.Message != "" || wire.Err.Type != "") {
		apiErr := wire.Err
		apiErr.StatusCode = statusCode
		apiErr.RawBody = body

		return &apiErr
	}

	return &APIError{StatusCode: statusCode, RawBody: body}
}

// TransportError wraps an I/O-level failure from the transport. The
// underlying error is preserved unchanged, so context cancellation and
// deadline errors remain visible through errors.Is.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

// Unwrap returns the underlying I/O error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// EnvelopeError reports a response body whose shape did not match the
// expected envelope.
type EnvelopeError struct {
	Envelope string
	Reason   string
}

// Error implements the error interface.
func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("malformed %q envelope: %s", e.Envelope, e.Reason)
}

// PathError reports a path template placeholder with no supplied
// value. It is a caller-side construction defect and is raised before
// any request is sent.
type PathError struct {
	Template string
	Param    string
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("missing path parameter %q for template %s", e.Param, e.Template)
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsValidationError checks if the error is a 422 from the API.
func IsValidationError(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity
}

// IsRateLimited checks if the error is a 429 from the API.
func IsRateLimited(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}
