// Package dpclient provides the main entry point for creating
// DirectPay API clients.
package dpclient

import (
	"strings"

	"github.com/directpay-io/dpapi-client/internal/client"
	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

// Environment base URLs.
const (
	LiveEndpoint    = "https://api.directpay.io"
	SandboxEndpoint = "https://api-sandbox.directpay.io"
)

// New creates a new DirectPay API client. An empty Endpoint selects
// the live environment; a bare host is normalized to https.
func New(config *dpapi.Config) (dpapi.Client, error) {
	if config == nil {
		return nil, dpapi.ErrConfigRequired
	}

	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if endpoint == "" {
		endpoint = LiveEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return apiClient, nil
}
