package listview

import (
	"context"
	"sync"
)

// Phase is the explicit request lifecycle of a list view. It replaces
// the derived loading = "key mismatch" trick with a tagged state that
// is updated atomically on request start and settle.
type Phase int

const (
	// PhaseIdle means no fetch is wanted, e.g. the required scope
	// parameter is absent and the view should prompt for it.
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// Page is one fetched page of entities. HasTotal distinguishes
// envelopes that report a total count from those that don't.
type Page[T any] struct {
	Items    []T
	Total    int
	HasTotal bool
}

// State is a snapshot of the controller. On failure the last good
// items are retained alongside Err, so a view can keep showing data
// while surfacing the error.
type State[T any] struct {
	Phase    Phase
	Key      string
	Items    []T
	Total    int
	HasTotal bool
	Err      error

	Page     int
	PageSize int
}

// HasPrev reports whether a previous page exists.
func (s State[T]) HasPrev() bool {
	return s.Page > 1
}

// HasNext reports whether another page exists. With a total count this
// is exact; without one it falls back to "the page came back full",
// which over-reports on an exactly full last page.
func (s State[T]) HasNext() bool {
	if s.HasTotal {
		return s.Page*s.PageSize < s.Total
	}
	return len(s.Items) == s.PageSize
}

// Fetcher loads one page of entities for a parameter set.
type Fetcher[T any] func(ctx context.Context, p Params) (Page[T], error)

// Controller drives a list view's fetching with last-request-wins
// semantics: every fetch-key change issues exactly one request, and a
// response is committed only if no newer request has started since.
type Controller[T any] struct {
	mu       sync.Mutex
	fetch    Fetcher[T]
	onChange func(State[T])
	gen      uint64
	state    State[T]
}

// NewController builds a controller around fetch. onChange, when not
// nil, observes every committed state transition; it is called outside
// the fetch path but under the controller lock, so it must not call
// back into the controller.
func NewController[T any](fetch Fetcher[T], onChange func(State[T])) *Controller[T] {
	return &Controller[T]{
		fetch:    fetch,
		onChange: onChange,
		state:    State[T]{Phase: PhaseIdle, Page: 1},
	}
}

// State returns the current snapshot.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Apply reacts to a parameter change. A missing required scope parks
// the view in Idle without fetching. An unchanged fetch key is a
// no-op. Otherwise the state moves to Loading synchronously and a
// fetch starts; when it settles, the result is discarded if any newer
// Apply superseded it.
func (c *Controller[T]) Apply(ctx context.Context, p Params) {
	c.mu.Lock()

	if p.defaults.ScopeKey != "" && p.Scope == "" {
		c.gen++
		c.state = State[T]{Phase: PhaseIdle, Page: p.Page, PageSize: p.PageSize}
		c.notifyLocked()
		c.mu.Unlock()
		return
	}

	key := p.FetchKey()
	if key == c.state.Key && c.state.Phase != PhaseIdle {
		c.mu.Unlock()
		return
	}

	c.gen++
	gen := c.gen
	c.state.Phase = PhaseLoading
	c.state.Key = key
	c.state.Err = nil
	c.state.Page = p.Page
	c.state.PageSize = p.PageSize
	c.notifyLocked()
	c.mu.Unlock()

	// Snapshot the params for the goroutine: the caller keeps mutating
	// its copy (SetFilter, SetSort) to build the next request, and the
	// Filters map would otherwise be shared with the in-flight fetch.
	p = p.clone()

	go func() {
		page, err := c.fetch(ctx, p)

		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			// A newer request superseded this one; last request wins.
			return
		}
		if err != nil {
			c.state.Phase = PhaseFailed
			c.state.Err = err
		} else {
			c.state.Phase = PhaseLoaded
			c.state.Err = nil
			c.state.Items = page.Items
			c.state.Total = page.Total
			c.state.HasTotal = page.HasTotal
		}
		c.notifyLocked()
	}()
}

func (c *Controller[T]) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}
