package client

import (
	"context"
	"net/http"
	"sync"
)

// Collection is a client-held ordered mirror of one server-side table.
// Successful mutations are reflected immediately; the mirror is best-effort
// and lives only as long as the Collection itself. Interleaved responses
// resolve last-write-wins, which is acceptable in the single-admin context.
type Collection[T any] struct {
	client *Client
	path   string // e.g. /v1/posts
	query  string // optional list query string, e.g. ?include_unpublished=true
	id     func(T) string

	mu      sync.Mutex
	items   []T
	loading bool
	err     error
}

func newCollection[T any](c *Client, path, query string, id func(T) string) *Collection[T] {
	return &Collection[T]{
		client: c,
		path:   path,
		query:  query,
		id:     id,
	}
}

// Items returns a copy of the current mirror
func (col *Collection[T]) Items() []T {
	col.mu.Lock()
	defer col.mu.Unlock()
	out := make([]T, len(col.items))
	copy(out, col.items)
	return out
}

// Loading reports whether a Refresh is in flight
func (col *Collection[T]) Loading() bool {
	col.mu.Lock()
	defer col.mu.Unlock()
	return col.loading
}

// Err returns the error from the most recent failed operation, if any
func (col *Collection[T]) Err() error {
	col.mu.Lock()
	defer col.mu.Unlock()
	return col.err
}

// Refresh fetches the full collection and replaces the mirror. An unreachable
// server is treated as "no data yet": the mirror resets to empty and no error
// is reported. HTTP-level failures leave the mirror untouched and surface.
func (col *Collection[T]) Refresh(ctx context.Context) error {
	col.mu.Lock()
	col.loading = true
	col.mu.Unlock()

	var fetched []T
	err := col.client.do(ctx, http.MethodGet, col.path+col.query, nil, &fetched)

	col.mu.Lock()
	defer col.mu.Unlock()
	col.loading = false

	if err != nil {
		if isUnreachable(err) {
			col.client.log.Warn().Err(err).Str("path", col.path).Msg("Store unreachable, using empty data")
			col.items = []T{}
			col.err = nil
			return nil
		}
		col.err = err
		return err
	}

	if fetched == nil {
		fetched = []T{}
	}
	col.items = fetched
	col.err = nil
	return nil
}

// Create inserts a new entity and prepends the server-returned canonical row
// to the mirror. The mirror is untouched on failure.
func (col *Collection[T]) Create(ctx context.Context, input interface{}) (T, error) {
	var created T
	if err := col.client.do(ctx, http.MethodPost, col.path, input, &created); err != nil {
		col.setErr(err)
		return created, err
	}

	col.mu.Lock()
	defer col.mu.Unlock()
	col.items = append([]T{created}, col.items...)
	col.err = nil
	return created, nil
}

// Update patches an entity and replaces it in the mirror in place, keeping
// its position. The mirror is untouched on failure.
func (col *Collection[T]) Update(ctx context.Context, id string, patch interface{}) (T, error) {
	var updated T
	if err := col.client.do(ctx, http.MethodPatch, col.path+"/"+id, patch, &updated); err != nil {
		col.setErr(err)
		return updated, err
	}

	col.replace(id, updated)
	return updated, nil
}

// Delete removes an entity. A server-confirmed delete of an id not present in
// the mirror is a no-op locally.
func (col *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := col.client.do(ctx, http.MethodDelete, col.path+"/"+id, nil, nil); err != nil {
		col.setErr(err)
		return err
	}

	col.mu.Lock()
	defer col.mu.Unlock()
	kept := col.items[:0:0]
	for _, item := range col.items {
		if col.id(item) != id {
			kept = append(kept, item)
		}
	}
	col.items = kept
	col.err = nil
	return nil
}

// transition issues an entity-specific POST action (e.g. publish) and applies
// update semantics to the mirror.
func (col *Collection[T]) transition(ctx context.Context, id, action string) (T, error) {
	var updated T
	if err := col.client.do(ctx, http.MethodPost, col.path+"/"+id+"/"+action, nil, &updated); err != nil {
		col.setErr(err)
		return updated, err
	}

	col.replace(id, updated)
	return updated, nil
}

func (col *Collection[T]) replace(id string, updated T) {
	col.mu.Lock()
	defer col.mu.Unlock()
	for i, item := range col.items {
		if col.id(item) == id {
			col.items[i] = updated
			break
		}
	}
	col.err = nil
}

func (col *Collection[T]) setErr(err error) {
	col.mu.Lock()
	defer col.mu.Unlock()
	col.err = err
}
