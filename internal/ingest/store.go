// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import "context"

// NewArtwork carries the catalog fields of an imported book.
type NewArtwork struct {
	Name   string
	NameEn string
	Date   string
	Field1 string
	Field2 string
	File   string
}

type Repository interface {
	// ArtworkExists reports whether an artwork with the title is already
	// in the catalog.
	ArtworkExists(context context.Context, name string) (bool, error)

	// GetOrCreateAuthor upserts an author by name in a single statement
	// and reports whether the row was created.
	GetOrCreateAuthor(context context.Context, name, nameEn string) (id int, created bool, err error)

	// GetOrCreateGenre upserts a genre by name in a single statement
	// and reports whether the row was created.
	GetOrCreateGenre(context context.Context, name string) (id int, created bool, err error)

	// CreateArtwork inserts a new artwork and returns its id.
	CreateArtwork(context context.Context, artwork NewArtwork) (int, error)

	// SetAuthor replaces the artwork's author associations with the one given.
	SetAuthor(context context.Context, artworkID, authorID int) error

	// SetGenres replaces the artwork's genre associations with the set given.
	SetGenres(context context.Context, artworkID int, genreIDs []int) error
}
