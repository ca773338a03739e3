// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

type Repository interface {
	// ListByPrefix returns authors whose name starts with prefix,
	// ordered by name. An empty prefix returns every author.
	ListByPrefix(context context.Context, prefix string) ([]*Author, error)

	// Search returns authors whose name contains value, case-insensitively.
	Search(context context.Context, value string) ([]*Author, error)

	// GetByID returns a single author.
	GetByID(context context.Context, id int) (*Author, error)

	// ListNames returns the name column of every author, for the
	// first-letter histogram.
	ListNames(context context.Context) ([]string, error)

	// ListGenreTags returns one row per (artwork, genre) pair across the
	// author's artworks.
	ListGenreTags(context context.Context, authorID int) ([]GenreTag, error)
}
