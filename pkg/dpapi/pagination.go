package dpapi

import (
	"context"
	"errors"
)

// Cursors holds the continuation tokens of a page. A nil cursor means
// there is nothing further in that direction.
type Cursors struct {
	Before *string `json:"before"`
	After  *string `json:"after"`
}

// ListMeta is the pagination metadata block of a list response.
type ListMeta struct {
	Cursors Cursors `json:"cursors"`
	Limit   int     `json:"limit"`
}

// Page is one page of list results in server order, plus the cursors
// to continue from. Pages are immutable once decoded.
type Page[T any] struct {
	Items []T
	Meta  ListMeta
}

// PageFunc fetches a single page of results for the given params.
type PageFunc[T any] func(ctx context.Context, params *ListParams) (*Page[T], error)

// Iterator is a lazy, forward-only traversal across every page of a
// list endpoint. Continuation pages are fetched transparently when the
// current page is exhausted, so Next may block on a network call. The
// Limit of the initial params applies per underlying call, not to the
// total sequence.
//
// An Iterator is not restartable and not safe for concurrent
// advancement. A fetch failure surfaces from the Next call that
// demanded it; items yielded earlier remain valid.
type Iterator[T any] struct {
	ctx     context.Context
	fetch   PageFunc[T]
	params  *ListParams
	buf     []T
	pos     int
	after   string
	started bool
	done    bool
	err     error
}

// NewIterator creates an iterator over fetch. Iteration only moves
// forward: params carrying a before cursor are rejected on the first
// Next call, before any fetch.
func NewIterator[T any](ctx context.Context, fetch PageFunc[T], params *ListParams) *Iterator[T] {
	if params == nil {
		params = NewListParams()
	}

	it := &Iterator[T]{
		ctx:    ctx,
		fetch:  fetch,
		params: params.clone(),
	}

	if params.Before != "" {
		it.err = ErrBeforeCursorIteration
	}

	return it
}

// HasNext reports whether another item may be available. It never
// performs a fetch, so it can report true for a sequence that turns
// out to be exhausted; in that case Next returns ErrNoMoreItems.
func (it *Iterator[T]) HasNext() bool {
	if it.err != nil || it.done {
		return false
	}

	if it.pos < len(it.buf) {
		return true
	}

	return !it.started || it.after != ""
}

// Next returns the next item in the sequence, fetching the next page
// when the current one is exhausted. It returns ErrNoMoreItems once
// the sequence terminates. After a fetch failure the same error is
// returned on every subsequent call.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	for it.pos >= len(it.buf) {
		if it.done {
			return zero, ErrNoMoreItems
		}

		if err := it.advance(); err != nil {
			it.err = err

			return zero, err
		}
	}

	item := it.buf[it.pos]
	it.pos++

	return item, nil
}

// All consumes the remainder of the sequence into a slice.
func (it *Iterator[T]) All() ([]T, error) {
	var items []T

	for {
		item, err := it.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return items, nil
		}

		if err != nil {
			return items, err
		}

		items = append(items, item)
	}
}

// ForEach calls fn for every remaining item, stopping at the first
// error returned by fn or by a page fetch.
func (it *Iterator[T]) ForEach(fn func(item T) error) error {
	for {
		item, err := it.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return nil
		}

		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}
}

// advance fetches the next page and replaces the buffered one. The
// first fetch uses the caller's params; continuations replace the
// after cursor with the one from the previous page.
func (it *Iterator[T]) advance() error {
	params := it.params.clone()
	if it.started {
		params.After = it.after
	}

	page, err := it.fetch(it.ctx, params)
	if err != nil {
		return err
	}

	it.started = true
	it.buf = page.Items
	it.pos = 0
	it.after = ""

	if page.Meta.Cursors.After != nil {
		it.after = *page.Meta.Cursors.After
	}

	if it.after == "" {
		it.done = true
	}

	return nil
}
