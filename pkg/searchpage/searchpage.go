// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package searchpage slices an already-materialized result list into a
// single page and describes that page with counting metadata.
//
// # Overview
//
// Unlike SQL LIMIT/OFFSET pagination, the search and filter endpoints build
// their result lists in memory first (annotation and interleaving happen
// before slicing), so the paginator operates on the finished list. The page
// envelope is stable across all list endpoints:
//
//	{count, limit, page, total, items}
package searchpage

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Page is the resolved slice of a result list plus its metadata.
type Page[T any] struct {
	// Count is the total number of items across all pages.
	Count int `json:"count"`
	// Limit is the effective per-page size after clamping.
	Limit int `json:"limit"`
	// Page is the resolved page number (may differ from the requested one).
	Page int `json:"page"`
	// Total is the total number of pages; 0 when the list is empty.
	Total int `json:"total"`
	// Items is the slice of the list belonging to the resolved page.
	Items []T `json:"items"`
}

// Params holds the raw page and limit values requested by a client.
type Params struct {
	Page  int
	Limit int
}

// FromRequest parses "page" and "limit" query parameters. Missing or
// unparseable values fall back to the defaults; clamping happens in
// [Paginate], not here, so the resolved values are reported truthfully.
func FromRequest(r *http.Request) Params {
	return Params{
		Page:  intParam(r, "page", DefaultPage),
		Limit: intParam(r, "limit", DefaultLimit),
	}
}

// Paginate resolves the requested page against the full item list.
//
// # Clamping
//
// A limit below 1 falls back to [DefaultLimit]; a limit above [MaxLimit] is
// capped at it. A page below 1 resolves to the first page; a page beyond the
// last resolves to the last page. An empty list yields total=0, page=1 and an
// empty (non-nil) item slice.
func Paginate[T any](items []T, params Params) Page[T] {
	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	count := len(items)
	total := (count + limit - 1) / limit

	page := params.Page
	if page < 1 {
		page = DefaultPage
	}
	if total > 0 && page > total {
		page = total
	}
	if total == 0 {
		page = DefaultPage
	}

	start := (page - 1) * limit
	end := start + limit
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	// Never return a nil Items slice: the JSON contract is [] for empty pages.
	slice := items[start:end]
	if slice == nil {
		slice = []T{}
	}

	return Page[T]{
		Count: count,
		Limit: limit,
		Page:  page,
		Total: total,
		Items: slice,
	}
}

// intParam parses a single integer query parameter with a fallback default.
func intParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
