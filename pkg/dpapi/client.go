package dpapi

import (
	"context"
	"net/http"
	"time"
)

// Client provides access to the DirectPay resource services.
type Client interface {
	Creditors() CreditorsService
	Customers() CustomersService
	Payments() PaymentsService
}

// CreditorsService manages the creditors a payment can be paid out to.
type CreditorsService interface {
	// Create creates a new creditor.
	Create(ctx context.Context, req *CreditorCreateRequest) (*Creditor, error)
	// Get retrieves the details of an existing creditor.
	Get(ctx context.Context, identity string) (*Creditor, error)
	// Update updates a creditor. Supports all fields supported when
	// creating a creditor.
	Update(ctx context.Context, identity string, req *CreditorUpdateRequest) (*Creditor, error)
	// List fetches one page of creditors; the caller manages cursors.
	List(ctx context.Context, params *ListParams) (*Page[Creditor], error)
	// All lazily traverses every creditor across all pages.
	All(ctx context.Context, params *ListParams) *Iterator[Creditor]
}

// CustomersService manages the customers payments are collected from.
type CustomersService interface {
	Create(ctx context.Context, req *CustomerCreateRequest) (*Customer, error)
	Get(ctx context.Context, identity string) (*Customer, error)
	Update(ctx context.Context, identity string, req *CustomerUpdateRequest) (*Customer, error)
	List(ctx context.Context, params *ListParams) (*Page[Customer], error)
	All(ctx context.Context, params *ListParams) *Iterator[Customer]
}

// PaymentsService manages payments collected against a mandate.
type PaymentsService interface {
	Create(ctx context.Context, req *PaymentCreateRequest) (*Payment, error)
	Get(ctx context.Context, identity string) (*Payment, error)
	Update(ctx context.Context, identity string, req *PaymentUpdateRequest) (*Payment, error)
	List(ctx context.Context, params *ListParams) (*Page[Payment], error)
	All(ctx context.Context, params *ListParams) *Iterator[Payment]
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dpapi.Client.
type Config struct {
	// Endpoint is the API base URL. dpclient fills in the live
	// environment when empty.
	Endpoint string

	// AccessToken is the API token sent as a Bearer credential on
	// every request.
	AccessToken string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging through Logger.
	Debug  bool
	Logger Logger

	// Retry configuration for the transport. Retries happen at the
	// socket/status level inside the transport; the request and
	// pagination layers never retry.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// HTTPClient optionally overrides the underlying *http.Client,
	// e.g. for custom TLS configuration.
	HTTPClient *http.Client
}
