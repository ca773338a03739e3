// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package search implements the mixed author/artwork search with the shared
// in-memory paginator.
package search

import (
	"github.com/taibuivan/chitalka/internal/catalog/artwork"
	"github.com/taibuivan/chitalka/internal/catalog/author"
)

// Result type tags carried by every mixed-search item.
const (
	TypeAuthor   = "author"
	TypeArtworks = "artworks"
)

// AuthorResult is an author search hit tagged with its result type.
type AuthorResult struct {
	author.Author
	Type string `json:"type"`
}

// ArtworkResult is an artwork search hit tagged with its result type.
// The embedded Read annotation survives the tagging.
type ArtworkResult struct {
	artwork.Artwork
	Type string `json:"type"`
}
