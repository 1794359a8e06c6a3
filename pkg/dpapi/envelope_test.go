package dpapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

func TestEncodeEnvelope_RoundTrip(t *testing.T) {
	t.Parallel()

	body := dpapi.NewFieldSet().
		Set("name", "Hooli Ltd").
		Set("country_code", "GB").
		Encode()

	wire, err := json.Marshal(dpapi.EncodeEnvelope("creditors", body))
	require.NoError(t, err)
	assert.JSONEq(t, `{"creditors": {"name": "Hooli Ltd", "country_code": "GB"}}`, string(wire))

	decoded, err := dpapi.DecodeResource[map[string]any](wire, "creditors")
	require.NoError(t, err)
	assert.Equal(t, body, map[string]any(*decoded))
}

func TestDecodeResource(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"creditors": {"id": "CR123", "name": "Hooli Ltd"}}`)

	creditor, err := dpapi.DecodeResource[dpapi.Creditor](raw, "creditors")
	require.NoError(t, err)
	assert.Equal(t, "CR123", creditor.ID)
	assert.Equal(t, "Hooli Ltd", creditor.Name)
}

func TestDecodeResource_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "not an object", raw: `[1, 2, 3]`},
		{name: "envelope key missing", raw: `{"customers": {"id": "CU123"}}`},
		{name: "wrapped value is an array", raw: `{"creditors": [{"id": "CR123"}]}`},
		{name: "wrapped value is a scalar", raw: `{"creditors": "CR123"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dpapi.DecodeResource[dpapi.Creditor]([]byte(tt.raw), "creditors")
			require.Error(t, err)

			var envErr *dpapi.EnvelopeError

			require.ErrorAs(t, err, &envErr)
			assert.Equal(t, "creditors", envErr.Envelope)
		})
	}
}

func TestDecodeList(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"creditors": [
			{"id": "CR1", "name": "First"},
			{"id": "CR2", "name": "Second"}
		],
		"meta": {
			"cursors": {"before": null, "after": "c1"},
			"limit": 50
		}
	}`)

	page, err := dpapi.DecodeList[dpapi.Creditor](raw, "creditors")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "CR1", page.Items[0].ID)
	assert.Equal(t, "CR2", page.Items[1].ID)
	assert.Equal(t, 50, page.Meta.Limit)
	assert.Nil(t, page.Meta.Cursors.Before)
	require.NotNil(t, page.Meta.Cursors.After)
	assert.Equal(t, "c1", *page.Meta.Cursors.After)
}

func TestDecodeList_EmptyPage(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"creditors": [], "meta": {"cursors": {"before": null, "after": null}, "limit": 50}}`)

	page, err := dpapi.DecodeList[dpapi.Creditor](raw, "creditors")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.Meta.Cursors.After)
}

func TestDecodeList_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "envelope key missing", raw: `{"meta": {}}`},
		{name: "wrapped value is an object", raw: `{"creditors": {"id": "CR123"}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dpapi.DecodeList[dpapi.Creditor]([]byte(tt.raw), "creditors")
			require.Error(t, err)

			var envErr *dpapi.EnvelopeError

			require.ErrorAs(t, err, &envErr)
		})
	}
}
