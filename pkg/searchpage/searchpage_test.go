// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package searchpage_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/pkg/searchpage"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

/*
TestPaginate_LimitClamping verifies the limit clamping rules:
below 1 falls back to the default, above the maximum is capped.
*/
func TestPaginate_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"negative_limit", -5, 10},
		{"zero_limit", 0, 10},
		{"regular_limit", 25, 25},
		{"over_max_limit", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := searchpage.Paginate(sequence(200), searchpage.Params{Page: 1, Limit: tt.limit})

			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Len(t, page.Items, tt.wantLimit)
		})
	}
}

/*
TestPaginate_PageResolution verifies page clamping: below 1 resolves to
page 1, beyond the last page resolves to the last page.
*/
func TestPaginate_PageResolution(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		page      int
		limit     int
		wantPage  int
		wantTotal int
		wantItems int
	}{
		{"first_page", 35, 1, 10, 1, 4, 10},
		{"middle_page", 35, 2, 10, 2, 4, 10},
		{"last_partial_page", 35, 4, 10, 4, 4, 5},
		{"page_beyond_total", 35, 99, 10, 4, 4, 5},
		{"page_below_one", 35, -3, 10, 1, 4, 10},
		{"exact_division", 30, 3, 10, 3, 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := searchpage.Paginate(sequence(tt.length), searchpage.Params{Page: tt.page, Limit: tt.limit})

			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantTotal, page.Total)
			assert.Equal(t, tt.length, page.Count)
			assert.Len(t, page.Items, tt.wantItems)
		})
	}
}

/*
TestPaginate_TotalIsCeiling verifies total = ceil(count/limit) for a spread
of list lengths.
*/
func TestPaginate_TotalIsCeiling(t *testing.T) {
	tests := []struct {
		length    int
		limit     int
		wantTotal int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 100, 1},
		{101, 100, 2},
	}

	for _, tt := range tests {
		page := searchpage.Paginate(sequence(tt.length), searchpage.Params{Page: 1, Limit: tt.limit})
		assert.Equal(t, tt.wantTotal, page.Total, "length=%d limit=%d", tt.length, tt.limit)
	}
}

/*
TestPaginate_EmptyList verifies the empty-list contract: total=0, page=1,
items is an empty (non-nil) slice.
*/
func TestPaginate_EmptyList(t *testing.T) {
	page := searchpage.Paginate([]int{}, searchpage.Params{Page: 7, Limit: 10})

	assert.Equal(t, 0, page.Count)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.Page)
	require.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

/*
TestPaginate_SliceContents verifies the actual items returned for a page.
*/
func TestPaginate_SliceContents(t *testing.T) {
	page := searchpage.Paginate(sequence(25), searchpage.Params{Page: 3, Limit: 10})

	assert.Equal(t, []int{21, 22, 23, 24, 25}, page.Items)
}

/*
TestFromRequest verifies query-string parsing with fallbacks for missing
and malformed values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/search", 1, 10},
		{"explicit", "/search?page=3&limit=50", 3, 50},
		{"malformed", "/search?page=abc&limit=xyz", 1, 10},
		{"negative_passthrough", "/search?page=-2&limit=-7", -2, -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.target, nil)
			params := searchpage.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}
