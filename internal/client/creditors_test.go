package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directpay-io/dpapi-client/internal/client"
	dphttp "github.com/directpay-io/dpapi-client/internal/http"
	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

// countingDoer tracks exchanges handed to the transport, so tests can
// assert that guard failures never reach the wire.
type countingDoer struct {
	calls int
	resp  *dphttp.Response
	err   error
}

func (d *countingDoer) Do(_ context.Context, _ *dphttp.Request) (*dphttp.Response, error) {
	d.calls++

	return d.resp, d.err
}

func newCreditorsService(t *testing.T, handler http.HandlerFunc) *client.CreditorsService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return client.NewCreditorsService(dphttp.NewClient(server.URL, dphttp.StaticToken("test-token")))
}

func TestCreditorsService_Create(t *testing.T) {
	t.Parallel()

	service := newCreditorsService(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/creditors", request.URL.Path)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var body map[string]map[string]any

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"name":         "Hooli Ltd",
			"country_code": "GB",
		}, body["creditors"])

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"creditors": {"id": "CR123", "name": "Hooli Ltd", "country_code": "GB"}}`))
	})

	req := dpapi.NewCreditorCreateRequest().
		WithName("Hooli Ltd").
		WithCountryCode("GB")

	creditor, err := service.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "CR123", creditor.ID)
	assert.Equal(t, "Hooli Ltd", creditor.Name)
	assert.Equal(t, "GB", creditor.CountryCode)
}

func TestCreditorsService_Get(t *testing.T) {
	t.Parallel()

	service := newCreditorsService(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/creditors/CR123", request.URL.Path)

		_, _ = writer.Write([]byte(`{"creditors": {"id": "CR123", "name": "Hooli Ltd"}}`))
	})

	creditor, err := service.Get(context.Background(), "CR123")
	require.NoError(t, err)
	assert.Equal(t, "CR123", creditor.ID)
}

func TestCreditorsService_Get_NotFound(t *testing.T) {
	t.Parallel()

	service := newCreditorsService(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error": {"type": "invalid_api_usage", "message": "Resource not found"}}`))
	})

	_, err := service.Get(context.Background(), "CRmissing")
	require.Error(t, err)
	assert.True(t, dpapi.IsNotFound(err))
	assert.Contains(t, err.Error(), "getting creditor")
}

func TestCreditorsService_Get_EmptyIdentity(t *testing.T) {
	t.Parallel()

	doer := &countingDoer{}
	service := client.NewCreditorsService(doer)

	_, err := service.Get(context.Background(), "")
	require.Error(t, err)

	var pathErr *dpapi.PathError

	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "identity", pathErr.Param)
	assert.Equal(t, 0, doer.calls)
}

func TestCreditorsService_Update(t *testing.T) {
	t.Parallel()

	service := newCreditorsService(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/creditors/CR123", request.URL.Path)

		var body map[string]map[string]any

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"name": "Hooli Ltd",
			"links": map[string]any{
				"default_gbp_payout_account": "BA123",
			},
		}, body["creditors"])

		_, _ = writer.Write([]byte(`{"creditors": {"id": "CR123", "name": "Hooli Ltd"}}`))
	})

	req := dpapi.NewCreditorUpdateRequest().
		WithName("Hooli Ltd").
		WithLinksDefaultGBPPayoutAccount("BA123")

	creditor, err := service.Update(context.Background(), "CR123", req)
	require.NoError(t, err)
	assert.Equal(t, "CR123", creditor.ID)
}

func TestCreditorsService_List(t *testing.T) {
	t.Parallel()

	service := newCreditorsService(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/creditors", request.URL.Path)
		assert.Equal(t, "25", request.URL.Query().Get("limit"))

		_, _ = writer.Write([]byte(`{
			"creditors": [
				{"id": "CR1"},
				{"id": "CR2"},
				{"id": "CR3"}
			],
			"meta": {"cursors": {"before": null, "after": "CR3"}, "limit": 25}
		}`))
	})

	page, err := service.List(context.Background(), dpapi.NewListParams().WithLimit(25))
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "CR1", page.Items[0].ID)
	assert.Equal(t, "CR2", page.Items[1].ID)
	assert.Equal(t, "CR3", page.Items[2].ID)
	require.NotNil(t, page.Meta.Cursors.After)
	assert.Equal(t, "CR3", *page.Meta.Cursors.After)
}

func TestCreditorsService_List_BothCursorsRejected(t *testing.T) {
	t.Parallel()

	doer := &countingDoer{}
	service := client.NewCreditorsService(doer)

	params := dpapi.NewListParams().WithAfter("c1").WithBefore("c2")

	_, err := service.List(context.Background(), params)
	require.ErrorIs(t, err, dpapi.ErrBothCursors)
	assert.Equal(t, 0, doer.calls)
}

func TestCreditorsService_All(t *testing.T) {
	t.Parallel()

	requests := 0

	service := newCreditorsService(t, func(writer http.ResponseWriter, request *http.Request) {
		requests++

		switch request.URL.Query().Get("after") {
		case "":
			_, _ = writer.Write([]byte(`{
				"creditors": [{"id": "CR1"}, {"id": "CR2"}],
				"meta": {"cursors": {"before": null, "after": "CR2"}, "limit": 2}
			}`))
		case "CR2":
			_, _ = writer.Write([]byte(`{
				"creditors": [{"id": "CR3"}],
				"meta": {"cursors": {"before": "CR3", "after": null}, "limit": 2}
			}`))
		default:
			writer.WriteHeader(http.StatusBadRequest)
		}
	})

	creditors, err := service.All(context.Background(), dpapi.NewListParams().WithLimit(2)).All()
	require.NoError(t, err)
	require.Len(t, creditors, 3)
	assert.Equal(t, "CR1", creditors[0].ID)
	assert.Equal(t, "CR2", creditors[1].ID)
	assert.Equal(t, "CR3", creditors[2].ID)
	assert.Equal(t, 2, requests)
}
