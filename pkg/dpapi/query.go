package dpapi

import (
	"net/url"
	"strconv"
	"strings"
)

// ListParams represents query parameters for list requests: the cursor
// controls plus resource-specific filters. Zero values are omitted
// from the query string.
type ListParams struct {
	// After is a cursor pointing to the start of the desired set.
	After string
	// Before is a cursor pointing to the end of the desired set.
	// Mutually exclusive with After.
	Before string
	// Limit is the number of records to return per call.
	Limit int
	// Filters holds resource-specific filter keys.
	Filters map[string][]string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{Filters: make(map[string][]string)}
}

// WithAfter sets the forward cursor.
func (p *ListParams) WithAfter(cursor string) *ListParams {
	p.After = cursor

	return p
}

// WithBefore sets the backward cursor.
func (p *ListParams) WithBefore(cursor string) *ListParams {
	p.Before = cursor

	return p
}

// WithLimit sets the per-call record limit.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithFilter appends values to a resource-specific filter key.
func (p *ListParams) WithFilter(key string, values ...string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[key] = append(p.Filters[key], values...)

	return p
}

// Validate rejects parameter combinations the server would refuse,
// before any request is sent.
func (p *ListParams) Validate() error {
	if p.After != "" && p.Before != "" {
		return ErrBothCursors
	}

	return nil
}

// ToValues converts the parameters to URL query values. Only
// explicitly-set parameters are included.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p.After != "" {
		values.Set("after", p.After)
	}

	if p.Before != "" {
		values.Set("before", p.Before)
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	for key, filterValues := range p.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}

// clone copies the params so an iterator can advance its own cursor
// without mutating the caller's value.
func (p *ListParams) clone() *ListParams {
	clone := &ListParams{
		After:  p.After,
		Before: p.Before,
		Limit:  p.Limit,
	}

	if len(p.Filters) > 0 {
		clone.Filters = make(map[string][]string, len(p.Filters))
		for key, filterValues := range p.Filters {
			clone.Filters[key] = append([]string(nil), filterValues...)
		}
	}

	return clone
}
