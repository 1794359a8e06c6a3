//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
	"github.com/directpay-io/dpapi-client/pkg/dpclient"
)

// fakeDirectPay is an in-memory stand-in for the API: enough of the
// creditor and payment endpoints to drive a full client workflow.
type fakeDirectPay struct {
	creditors map[string]map[string]any
	payments  map[string]map[string]any
	nextID    int
}

func newFakeDirectPay() *fakeDirectPay {
	return &fakeDirectPay{
		creditors: map[string]map[string]any{},
		payments:  map[string]map[string]any{},
	}
}

func (f *fakeDirectPay) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/creditors", func(writer http.ResponseWriter, request *http.Request) {
		f.collection(writer, request, "creditors", f.creditors, "CR")
	})
	mux.HandleFunc("/creditors/", func(writer http.ResponseWriter, request *http.Request) {
		f.resource(writer, request, "creditors", f.creditors)
	})
	mux.HandleFunc("/payments", func(writer http.ResponseWriter, request *http.Request) {
		f.collection(writer, request, "payments", f.payments, "PM")
	})
	mux.HandleFunc("/payments/", func(writer http.ResponseWriter, request *http.Request) {
		f.resource(writer, request, "payments", f.payments)
	})

	return mux
}

func (f *fakeDirectPay) collection(writer http.ResponseWriter, request *http.Request, envelope string, store map[string]map[string]any, prefix string) {
	switch request.Method {
	case http.MethodPost:
		var body map[string]map[string]any
		_ = json.NewDecoder(request.Body).Decode(&body)

		f.nextID++
		id := fmt.Sprintf("%s%03d", prefix, f.nextID)
		resource := body[envelope]
		resource["id"] = id
		store[id] = resource

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(map[string]any{envelope: resource})
	case http.MethodGet:
		items := make([]map[string]any, 0, len(store))
		for _, resource := range store {
			items = append(items, resource)
		}

		_ = json.NewEncoder(writer).Encode(map[string]any{
			envelope: items,
			"meta": map[string]any{
				"cursors": map[string]any{"before": nil, "after": nil},
				"limit":   50,
			},
		})
	}
}

func (f *fakeDirectPay) resource(writer http.ResponseWriter, request *http.Request, envelope string, store map[string]map[string]any) {
	id := request.URL.Path[strings.LastIndex(request.URL.Path, "/")+1:]

	resource, ok := store[id]
	if !ok {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error": {"type": "invalid_api_usage", "message": "Resource not found"}}`))

		return
	}

	if request.Method == http.MethodPut {
		var body map[string]map[string]any
		_ = json.NewDecoder(request.Body).Decode(&body)

		for key, value := range body[envelope] {
			resource[key] = value
		}
	}

	_ = json.NewEncoder(writer).Encode(map[string]any{envelope: resource})
}

// TestWorkflow_CreditorLifecycle drives create, get, update and list
// through the public client against the fake API.
func TestWorkflow_CreditorLifecycle(t *testing.T) {
	server := httptest.NewServer(newFakeDirectPay().handler())
	defer server.Close()

	client, err := dpclient.New(&dpapi.Config{Endpoint: server.URL, AccessToken: "integration-token"})
	require.NoError(t, err)

	ctx := context.Background()

	creditor, err := client.Creditors().Create(ctx, dpapi.NewCreditorCreateRequest().
		WithName("Hooli Ltd").
		WithCountryCode("GB"))
	require.NoError(t, err)
	assert.NotEmpty(t, creditor.ID)

	fetched, err := client.Creditors().Get(ctx, creditor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hooli Ltd", fetched.Name)

	updated, err := client.Creditors().Update(ctx, creditor.ID, dpapi.NewCreditorUpdateRequest().
		WithCity("London"))
	require.NoError(t, err)
	assert.Equal(t, "London", updated.City)
	assert.Equal(t, "Hooli Ltd", updated.Name)

	page, err := client.Creditors().List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, creditor.ID, page.Items[0].ID)

	_, err = client.Creditors().Get(ctx, "CRmissing")
	assert.True(t, dpapi.IsNotFound(err))
}

// TestWorkflow_PaymentLifecycle exercises the payment endpoints and
// the iterator path end to end.
func TestWorkflow_PaymentLifecycle(t *testing.T) {
	server := httptest.NewServer(newFakeDirectPay().handler())
	defer server.Close()

	client, err := dpclient.New(&dpapi.Config{Endpoint: server.URL, AccessToken: "integration-token"})
	require.NoError(t, err)

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := client.Payments().Create(ctx, dpapi.NewPaymentCreateRequest().
			WithAmount(1000+i).
			WithCurrency("GBP").
			WithLinksMandate("MD123"))
		require.NoError(t, err)
	}

	payments, err := client.Payments().All(ctx, nil).All()
	require.NoError(t, err)
	assert.Len(t, payments, 3)

	for _, payment := range payments {
		assert.Equal(t, "GBP", payment.Currency)
		assert.Equal(t, "MD123", payment.Links.Mandate)
	}
}
