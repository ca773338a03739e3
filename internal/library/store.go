// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library

import (
	"context"

	"github.com/taibuivan/chitalka/internal/catalog/author"
)

type Repository interface {
	// GetByID returns a single state row regardless of owner.
	GetByID(context context.Context, id int) (*BookState, error)

	// GetByUserAndArtwork returns the caller's state for one book.
	GetByUserAndArtwork(context context.Context, userID string, artworkID int) (*BookState, error)

	// Create inserts a new state row and fills in its generated id and
	// update timestamp.
	Create(context context.Context, state *BookState) error

	// Update rewrites the position fields of an existing row and refreshes
	// its update timestamp.
	Update(context context.Context, id int, epubcfi string, percent int, show bool) error

	// SetShow flips the listing flag without touching the position.
	SetShow(context context.Context, id int, show bool) error

	// ListVisible returns the user's show=true states joined with book
	// info, most recently updated first.
	ListVisible(context context.Context, userID string) ([]ListItem, error)

	// ReadPercents returns the user's percent per artwork id, for
	// catalog annotation. Books without a state are absent from the map.
	ReadPercents(context context.Context, userID string, artworkIDs []int) (map[int]int, error)

	// LastByAuthor returns the user's most recently updated state among
	// the author's books.
	LastByAuthor(context context.Context, userID string, authorID int) (*author.LastBook, error)

	// BookView returns the open-book payload for one of the user's books.
	BookView(context context.Context, userID string, artworkID int) (*BookView, error)
}
