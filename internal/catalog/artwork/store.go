// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artwork

import "context"

type Repository interface {
	// ListByPrefix returns artworks whose name starts with prefix,
	// ordered by name. An empty prefix returns every artwork.
	ListByPrefix(context context.Context, prefix string) ([]*Artwork, error)

	// Search returns artworks whose name contains value, case-insensitively.
	Search(context context.Context, value string) ([]*Artwork, error)

	// FilterByYear returns artworks published in the given year,
	// matched exactly against the stored date string.
	FilterByYear(context context.Context, year string) ([]*Artwork, error)

	// FilterByGenreName returns artworks tagged with the exact genre name.
	FilterByGenreName(context context.Context, genreName string) ([]*Artwork, error)

	// FilterByAuthorAndGenre returns artworks written by the author
	// and tagged with the genre.
	FilterByAuthorAndGenre(context context.Context, authorID, genreID int) ([]*Artwork, error)

	// GetByID returns a single artwork.
	GetByID(context context.Context, id int) (*Artwork, error)

	// ListYears returns the date column of every artwork, for the
	// year histogram.
	ListYears(context context.Context) ([]string, error)
}
