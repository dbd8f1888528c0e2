// Package listview carries the state machinery behind every entity
// list: a bidirectional codec between query strings and typed
// filter/sort/page state, and a race-safe fetch controller.
package listview

import (
	"net/url"
	"strconv"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Defaults configure one list view's parameter handling. Values equal
// to a default are omitted when encoding, so shared URLs stay minimal.
type Defaults struct {
	// ScopeKey names the required scoping parameter, e.g. "city".
	// Empty means the view is unscoped.
	ScopeKey  string
	PageSize  int
	SortBy    string
	SortOrder SortOrder
}

// Params is one list view's filter/sort/page state. It round-trips
// through a URL query string so the state survives navigation and is
// shareable.
type Params struct {
	defaults Defaults

	Scope     string
	Filters   map[string]string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder SortOrder
}

// NewParams returns the initial state for a view: defaults applied,
// nothing filtered, page 1.
func NewParams(d Defaults) Params {
	if d.PageSize <= 0 {
		d.PageSize = 20
	}
	if d.SortOrder == "" {
		d.SortOrder = SortAsc
	}
	return Params{
		defaults:  d,
		Filters:   map[string]string{},
		Page:      1,
		PageSize:  d.PageSize,
		SortBy:    d.SortBy,
		SortOrder: d.SortOrder,
	}
}

// ParseValues decodes a query string into Params. Unknown keys are
// kept as filters; missing keys fall back to the view defaults.
func ParseValues(values url.Values, d Defaults) Params {
	p := NewParams(d)

	for key := range values {
		v := values.Get(key)
		if v == "" {
			continue
		}
		switch key {
		case "page":
			if n, err := strconv.Atoi(v); err == nil && n >= 1 {
				p.Page = n
			}
		case "page_size":
			if n, err := strconv.Atoi(v); err == nil && n >= 1 {
				p.PageSize = n
			}
		case "sort_by":
			p.SortBy = v
		case "sort_order":
			if v == string(SortAsc) || v == string(SortDesc) {
				p.SortOrder = SortOrder(v)
			}
		case p.defaults.ScopeKey:
			p.Scope = v
		default:
			p.Filters[key] = v
		}
	}
	return p
}

// Values encodes the state back into a query string. Empty values and
// defaults are omitted entirely rather than stored as empty strings.
func (p Params) Values() url.Values {
	values := url.Values{}
	if p.Scope != "" && p.defaults.ScopeKey != "" {
		values.Set(p.defaults.ScopeKey, p.Scope)
	}
	for key, v := range p.Filters {
		if v != "" {
			values.Set(key, v)
		}
	}
	if p.Page > 1 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize != p.defaults.PageSize {
		values.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.SortBy != p.defaults.SortBy {
		values.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != p.defaults.SortOrder {
		values.Set("sort_order", string(p.SortOrder))
	}
	return values
}

// SetSort re-sorts by column: selecting the current column flips the
// order, a new column starts ascending. Either way the view jumps
// back to page 1.
func (p *Params) SetSort(column string) {
	if p.SortBy == column {
		if p.SortOrder == SortAsc {
			p.SortOrder = SortDesc
		} else {
			p.SortOrder = SortAsc
		}
	} else {
		p.SortBy = column
		p.SortOrder = SortAsc
	}
	p.Page = 1
}

// SetFilter sets or clears a filter value and resets to page 1. An
// empty value removes the key. The scope parameter is routed to Scope,
// and the page parameter to SetPage, so neither ends up in Filters and
// changing the page does not reset itself.
func (p *Params) SetFilter(key, value string) {
	if key == "page" {
		n, _ := strconv.Atoi(value)
		p.SetPage(n)
		return
	}
	if key == p.defaults.ScopeKey && key != "" {
		p.Scope = value
	} else if value == "" {
		delete(p.Filters, key)
	} else {
		p.Filters[key] = value
	}
	p.Page = 1
}

// SetPage moves to page n without touching any other field.
func (p *Params) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	p.Page = n
}

// clone returns a copy whose Filters map is independent of the
// receiver's. Params is otherwise a value type, but the map would be
// shared between the copies.
func (p Params) clone() Params {
	filters := make(map[string]string, len(p.Filters))
	for k, v := range p.Filters {
		filters[k] = v
	}
	p.Filters = filters
	return p
}

// FetchKey uniquely identifies this parameter set. Two Params with the
// same key describe the same request, so a response tagged with a
// stale key must not be committed.
func (p Params) FetchKey() string {
	values := p.Values()
	// Page 1 and explicit page=1 are the same request.
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("page_size", strconv.Itoa(p.PageSize))
	values.Set("sort_by", p.SortBy)
	values.Set("sort_order", string(p.SortOrder))
	return values.Encode()
}
