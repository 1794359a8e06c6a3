// Package client implements dpapi.Client on top of the transport.
package client

import (
	"github.com/directpay-io/dpapi-client/internal/constants"
	"github.com/directpay-io/dpapi-client/internal/http"
	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

// Client implements the dpapi.Client interface.
type Client struct {
	httpClient *http.Client

	creditors dpapi.CreditorsService
	customers dpapi.CustomersService
	payments  dpapi.PaymentsService
}

// New creates a new DirectPay API client.
func New(config *dpapi.Config) (*Client, error) {
	if config == nil {
		return nil, dpapi.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, dpapi.ErrEndpointRequired
	}

	var tokens http.TokenProvider
	if config.AccessToken != "" {
		tokens = http.StaticToken(config.AccessToken)
	}

	httpClient := http.NewClient(config.Endpoint, tokens, buildHTTPOptions(config)...)

	client := &Client{httpClient: httpClient}
	client.initializeResourceServices()

	return client, nil
}

// buildHTTPOptions builds transport options from config.
func buildHTTPOptions(config *dpapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceServices initializes all resource-specific
// services.
func (c *Client) initializeResourceServices() {
	c.creditors = NewCreditorsService(c.httpClient)
	c.customers = NewCustomersService(c.httpClient)
	c.payments = NewPaymentsService(c.httpClient)
}

// Creditors implements dpapi.Client.Creditors.
func (c *Client) Creditors() dpapi.CreditorsService {
	return c.creditors
}

// Customers implements dpapi.Client.Customers.
func (c *Client) Customers() dpapi.CustomersService {
	return c.customers
}

// Payments implements dpapi.Client.Payments.
func (c *Client) Payments() dpapi.PaymentsService {
	return c.payments
}
