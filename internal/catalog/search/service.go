// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"

	"github.com/taibuivan/chitalka/internal/catalog/artwork"
	"github.com/taibuivan/chitalka/internal/catalog/author"
	"github.com/taibuivan/chitalka/pkg/searchpage"
	"github.com/taibuivan/chitalka/pkg/slice"
)

// AuthorFinder matches authors by case-insensitive substring.
// Satisfied by the author repository.
type AuthorFinder interface {
	Search(context context.Context, value string) ([]*author.Author, error)
}

// ArtworkFinder matches artworks by case-insensitive substring, annotated
// with the caller's reading percents. Satisfied by the artwork service.
type ArtworkFinder interface {
	Search(context context.Context, value, userID string) ([]*artwork.Artwork, error)
}

type Service struct {
	authors  AuthorFinder
	artworks ArtworkFinder
}

func NewService(authors AuthorFinder, artworks ArtworkFinder) *Service {
	return &Service{
		authors:  authors,
		artworks: artworks,
	}
}

// Query is one search request. AuthorOnly and ArtworksOnly narrow the result
// to a single entity kind; when both are set, AuthorOnly wins. With neither
// set the two result lists are interleaved.
type Query struct {
	Value        string
	AuthorOnly   bool
	ArtworksOnly bool
	UserID       string
	Page         searchpage.Params
}

// Search runs the query and slices the matches with the shared paginator.
func (service *Service) Search(context context.Context, query Query) (searchpage.Page[any], error) {
	switch {
	case query.AuthorOnly:
		authors, err := service.searchAuthors(context, query.Value)
		if err != nil {
			return searchpage.Page[any]{}, err
		}
		return searchpage.Paginate(asAny(authors), query.Page), nil

	case query.ArtworksOnly:
		artworks, err := service.searchArtworks(context, query.Value, query.UserID)
		if err != nil {
			return searchpage.Page[any]{}, err
		}
		return searchpage.Paginate(asAny(artworks), query.Page), nil
	}

	authors, err := service.searchAuthors(context, query.Value)
	if err != nil {
		return searchpage.Page[any]{}, err
	}
	artworks, err := service.searchArtworks(context, query.Value, query.UserID)
	if err != nil {
		return searchpage.Page[any]{}, err
	}

	return searchpage.Paginate(interleave(authors, artworks), query.Page), nil
}

func (service *Service) searchAuthors(context context.Context, value string) ([]AuthorResult, error) {
	matches, err := service.authors.Search(context, value)
	if err != nil {
		return nil, err
	}

	return slice.Map(matches, func(match *author.Author) AuthorResult {
		return AuthorResult{Author: *match, Type: TypeAuthor}
	}), nil
}

func (service *Service) searchArtworks(context context.Context, value, userID string) ([]ArtworkResult, error) {
	matches, err := service.artworks.Search(context, value, userID)
	if err != nil {
		return nil, err
	}

	return slice.Map(matches, func(match *artwork.Artwork) ArtworkResult {
		return ArtworkResult{Artwork: *match, Type: TypeArtworks}
	}), nil
}

// interleave pairs the two result lists index-wise, author first, and
// truncates to 2*min(N, M) items. The tail of the longer list is dropped
// so the page alternates strictly.
func interleave(authors []AuthorResult, artworks []ArtworkResult) []any {
	pairs := len(authors)
	if len(artworks) < pairs {
		pairs = len(artworks)
	}

	mixed := make([]any, 0, 2*pairs)
	for i := 0; i < pairs; i++ {
		mixed = append(mixed, authors[i], artworks[i])
	}
	return mixed
}

func asAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
