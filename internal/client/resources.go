package client

import (
	"context"

	"github.com/directpay-io/dpapi-client/internal/http"
	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

// Doer executes one resolved HTTP exchange. *http.Client satisfies it;
// tests substitute call-counting fakes.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// executeResource runs a Create, Get or Update exchange: resolve the
// path, wrap the body under the envelope key when the endpoint carries
// one, execute, and unwrap the single-object response into T. Path
// resolution failures surface before any request is sent.
func executeResource[T any](ctx context.Context, doer Doer, endpoint dpapi.Endpoint, pathParams map[string]string, body *dpapi.FieldSet) (*T, error) {
	path, err := dpapi.ResolvePath(endpoint.PathTemplate, pathParams)
	if err != nil {
		return nil, err
	}

	req := &http.Request{Method: endpoint.Method, Path: path}

	if endpoint.HasBody {
		fields := body
		if fields == nil {
			fields = dpapi.NewFieldSet()
		}

		req.Body = dpapi.EncodeEnvelope(endpoint.Envelope, fields.Encode())
	}

	resp, err := doer.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	return dpapi.DecodeResource[T](resp.Body, endpoint.Envelope)
}

// fetchPage runs a single List exchange with the caller's cursor
// controls and decodes the array-with-metadata response into one page.
// Invalid cursor combinations are rejected before any request is sent.
func fetchPage[T any](ctx context.Context, doer Doer, endpoint dpapi.Endpoint, params *dpapi.ListParams) (*dpapi.Page[T], error) {
	if params == nil {
		params = dpapi.NewListParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	path, err := dpapi.ResolvePath(endpoint.PathTemplate, nil)
	if err != nil {
		return nil, err
	}

	resp, err := doer.Do(ctx, &http.Request{
		Method: endpoint.Method,
		Path:   path,
		Query:  params.ToValues(),
	})
	if err != nil {
		return nil, err
	}

	return dpapi.DecodeList[T](resp.Body, endpoint.Envelope)
}
