package listview

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func workOrderDefaults() Defaults {
	return Defaults{
		ScopeKey:  "city",
		PageSize:  20,
		SortBy:    "created_date",
		SortOrder: SortDesc,
	}
}

func TestNewParamsAppliesDefaults(t *testing.T) {
	p := NewParams(workOrderDefaults())

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, "created_date", p.SortBy)
	assert.Equal(t, SortDesc, p.SortOrder)
	assert.Empty(t, p.Scope)
	assert.Empty(t, p.Filters)
}

func TestParseValuesRoundTrip(t *testing.T) {
	raw := url.Values{
		"city":       {"tulsa-id"},
		"status":     {"in_progress"},
		"search":     {"hydraulic"},
		"page":       {"3"},
		"sort_by":    {"work_order_number"},
		"sort_order": {"asc"},
	}

	p := ParseValues(raw, workOrderDefaults())

	assert.Equal(t, "tulsa-id", p.Scope)
	assert.Equal(t, "in_progress", p.Filters["status"])
	assert.Equal(t, "hydraulic", p.Filters["search"])
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, "work_order_number", p.SortBy)
	assert.Equal(t, SortAsc, p.SortOrder)

	// Encoding the parsed state reproduces the original query.
	assert.Equal(t, raw.Encode(), p.Values().Encode())
}

func TestValuesOmitsDefaultsAndEmpties(t *testing.T) {
	p := NewParams(workOrderDefaults())
	p.Scope = "tulsa-id"
	p.Filters["search"] = ""

	values := p.Values()
	assert.Equal(t, "city=tulsa-id", values.Encode())
}

func TestParseValuesIgnoresInvalidNumbers(t *testing.T) {
	p := ParseValues(url.Values{
		"page":      {"banana"},
		"page_size": {"0"},
	}, workOrderDefaults())

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}

func TestSetSortTogglesAndResets(t *testing.T) {
	p := NewParams(workOrderDefaults())
	p.Page = 4

	// New column starts ascending and resets the page.
	p.SetSort("customer_name")
	assert.Equal(t, "customer_name", p.SortBy)
	assert.Equal(t, SortAsc, p.SortOrder)
	assert.Equal(t, 1, p.Page)

	// Same column flips the order.
	p.SetSort("customer_name")
	assert.Equal(t, SortDesc, p.SortOrder)
	p.SetSort("customer_name")
	assert.Equal(t, SortAsc, p.SortOrder)
}

func TestSetFilterResetsPageAndClears(t *testing.T) {
	p := NewParams(workOrderDefaults())
	p.Page = 5

	p.SetFilter("status", "open")
	assert.Equal(t, "open", p.Filters["status"])
	assert.Equal(t, 1, p.Page)

	p.Page = 2
	p.SetFilter("status", "")
	_, ok := p.Filters["status"]
	assert.False(t, ok)
	assert.Equal(t, 1, p.Page)

	// The scope key routes to Scope, not Filters.
	p.SetFilter("city", "denver-id")
	assert.Equal(t, "denver-id", p.Scope)
	assert.NotContains(t, p.Filters, "city")
}

func TestSetFilterRoutesPageKey(t *testing.T) {
	p := NewParams(workOrderDefaults())
	p.SetFilter("search", "brake")

	// A page "filter" is a page change: no reset to 1, no stray
	// Filters entry.
	p.SetFilter("page", "4")
	assert.Equal(t, 4, p.Page)
	assert.NotContains(t, p.Filters, "page")
	assert.Equal(t, "brake", p.Filters["search"])

	p.SetFilter("page", "not-a-number")
	assert.Equal(t, 1, p.Page)
}

func TestSetPageLeavesFiltersAlone(t *testing.T) {
	p := NewParams(workOrderDefaults())
	p.SetFilter("search", "brake")

	p.SetPage(7)
	assert.Equal(t, 7, p.Page)
	assert.Equal(t, "brake", p.Filters["search"])

	p.SetPage(0)
	assert.Equal(t, 1, p.Page)
}

func TestFetchKeyDistinguishesRequests(t *testing.T) {
	a := NewParams(workOrderDefaults())
	a.Scope = "tulsa-id"

	b := a
	assert.Equal(t, a.FetchKey(), b.FetchKey())

	b.SetPage(2)
	assert.NotEqual(t, a.FetchKey(), b.FetchKey())

	// Implicit page 1 and explicit page=1 are the same request.
	c := ParseValues(url.Values{"city": {"tulsa-id"}, "page": {"1"}}, workOrderDefaults())
	assert.Equal(t, a.FetchKey(), c.FetchKey())
}
