package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
}

func TestParseFilterFromQueryCapsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "10000")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterFromQueryComputesOffsetFromPage(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "50")
	values.Set("page", "3")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 100, filter.Offset)
}

func TestParseFilterFromQueryExplicitOffsetWins(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("offset", "7")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, 7, filter.Offset)
}

func TestParseFilterFromQuerySortAndFilter(t *testing.T) {
	values := url.Values{}
	values.Set("search", "liebherr")
	values.Set("sort[model]", "ASC")
	values.Set("sort[name]", "bogus")
	values.Set("filter[status]", "ACTIVE")
	values.Set("filter[type]", "MOBILE")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, "liebherr", filter.Search)
	assert.Equal(t, "asc", filter.Sort["model"])
	assert.NotContains(t, filter.Sort, "name", "unknown direction dropped")
	assert.Equal(t, "ACTIVE", filter.Filter["status"])
	assert.Equal(t, "MOBILE", filter.Filter["type"])
}

func TestParseFilterFromQueryPaginationToggle(t *testing.T) {
	values := url.Values{}
	values.Set("withPagination", "false")

	filter := ParseFilterFromQuery(values)

	assert.False(t, filter.WithPagination)
}

func TestParseFilterFromQueryIgnoresInvalidNumbers(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "abc")
	values.Set("page", "-2")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
}
