package dpapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *dpapi.ListParams
		expected string
	}{
		{
			name:     "empty params produce empty query",
			params:   dpapi.NewListParams(),
			expected: "",
		},
		{
			name:     "after cursor only",
			params:   dpapi.NewListParams().WithAfter("c1"),
			expected: "after=c1",
		},
		{
			name:     "before cursor only",
			params:   dpapi.NewListParams().WithBefore("c9"),
			expected: "before=c9",
		},
		{
			name:     "limit only",
			params:   dpapi.NewListParams().WithLimit(25),
			expected: "limit=25",
		},
		{
			name:     "zero limit omitted",
			params:   dpapi.NewListParams().WithLimit(0),
			expected: "",
		},
		{
			name:     "cursor with limit",
			params:   dpapi.NewListParams().WithAfter("c1").WithLimit(10),
			expected: "after=c1&limit=10",
		},
		{
			name:     "filter values comma joined",
			params:   dpapi.NewListParams().WithFilter("status", "pending_submission", "submitted"),
			expected: "status=pending_submission%2Csubmitted",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.params.ToValues().Encode())
		})
	}
}

func TestListParams_WithFilterAppends(t *testing.T) {
	t.Parallel()

	params := dpapi.NewListParams().
		WithFilter("status", "pending_submission").
		WithFilter("status", "submitted").
		WithFilter("currency", "GBP")

	assert.Equal(t, []string{"pending_submission", "submitted"}, params.Filters["status"])
	assert.Equal(t, []string{"GBP"}, params.Filters["currency"])
}

func TestListParams_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, dpapi.NewListParams().Validate())
	require.NoError(t, dpapi.NewListParams().WithAfter("c1").Validate())
	require.NoError(t, dpapi.NewListParams().WithBefore("c1").Validate())

	err := dpapi.NewListParams().WithAfter("c1").WithBefore("c2").Validate()
	require.ErrorIs(t, err, dpapi.ErrBothCursors)
}
