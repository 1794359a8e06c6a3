package dpapi_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

func TestParseAPIError_StructuredBody(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"error": {
			"type": "validation_failed",
			"message": "Validation failed",
			"documentation_url": "https://developer.directpay.io/#validation_failed",
			"errors": [
				{"field": "country_code", "message": "is invalid"}
			]
		}
	}`)

	apiErr := dpapi.ParseAPIError(http.StatusUnprocessableEntity, body)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "validation_failed", apiErr.Type)
	assert.Equal(t, "Validation failed", apiErr.Message)
	assert.Equal(t, "https://developer.directpay.io/#validation_failed", apiErr.DocumentationURL)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "country_code", apiErr.Errors[0].Field)
	assert.Equal(t, "is invalid", apiErr.Errors[0].Message)
	assert.Equal(t, body, apiErr.RawBody)
	assert.Contains(t, apiErr.Error(), "validation_failed")
	assert.Contains(t, apiErr.Error(), "422")
}

func TestParseAPIError_UnstructuredBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "html error page", body: `<html>Bad Gateway</html>`},
		{name: "empty body", body: ``},
		{name: "json without error key", body: `{"message": "nope"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiErr := dpapi.ParseAPIError(http.StatusBadGateway, []byte(tt.body))
			assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
			assert.Empty(t, apiErr.Message)
			assert.Equal(t, []byte(tt.body), apiErr.RawBody)
			assert.Equal(t, "API error (status 502)", apiErr.Error())
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		matches func(error) bool
	}{
		{name: "not found", status: http.StatusNotFound, matches: dpapi.IsNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, matches: dpapi.IsUnauthorized},
		{name: "validation", status: http.StatusUnprocessableEntity, matches: dpapi.IsValidationError},
		{name: "rate limited", status: http.StatusTooManyRequests, matches: dpapi.IsRateLimited},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := error(&dpapi.APIError{StatusCode: tt.status})
			assert.True(t, tt.matches(err))
			assert.True(t, tt.matches(fmt.Errorf("getting creditor: %w", err)))
			assert.False(t, tt.matches(&dpapi.APIError{StatusCode: http.StatusInternalServerError}))
			assert.False(t, tt.matches(errors.New("not an API error")))
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := error(&dpapi.TransportError{Err: cause})

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "transport: connection refused", err.Error())
	assert.False(t, dpapi.IsNotFound(err))
}
