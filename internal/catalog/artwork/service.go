// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artwork

import (
	"context"
	"log/slog"
	"sort"
)

// ReadingAnnotator resolves the caller's reading percent for a batch of
// artworks. Implemented by the library service; declared here so the
// catalog does not import the library package.
type ReadingAnnotator interface {
	ReadPercents(context context.Context, userID string, artworkIDs []int) (map[int]int, error)
}

type Service struct {
	repo    Repository
	reading ReadingAnnotator
	logger  *slog.Logger
}

func NewService(repo Repository, reading ReadingAnnotator, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		reading: reading,
		logger:  logger,
	}
}

func (service *Service) ListByPrefix(context context.Context, prefix, userID string) ([]*Artwork, error) {
	artworks, err := service.repo.ListByPrefix(context, prefix)
	if err != nil {
		return nil, err
	}

	service.annotate(context, userID, artworks)
	return artworks, nil
}

func (service *Service) Search(context context.Context, value, userID string) ([]*Artwork, error) {
	artworks, err := service.repo.Search(context, value)
	if err != nil {
		return nil, err
	}

	service.annotate(context, userID, artworks)
	return artworks, nil
}

func (service *Service) FilterByYear(context context.Context, year, userID string) ([]*Artwork, error) {
	artworks, err := service.repo.FilterByYear(context, year)
	if err != nil {
		return nil, err
	}

	service.annotate(context, userID, artworks)
	return artworks, nil
}

func (service *Service) FilterByGenreName(context context.Context, genreName, userID string) ([]*Artwork, error) {
	artworks, err := service.repo.FilterByGenreName(context, genreName)
	if err != nil {
		return nil, err
	}

	service.annotate(context, userID, artworks)
	return artworks, nil
}

func (service *Service) FilterByAuthorAndGenre(context context.Context, authorID, genreID int, userID string) ([]*Artwork, error) {
	artworks, err := service.repo.FilterByAuthorAndGenre(context, authorID, genreID)
	if err != nil {
		return nil, err
	}

	service.annotate(context, userID, artworks)
	return artworks, nil
}

// YearHistogram groups every artwork by its publication year.
//
// Buckets are returned sorted by year. Years are compared as the stored
// strings, so an empty date counts under the empty-string bucket.
func (service *Service) YearHistogram(context context.Context) ([]YearCount, error) {
	years, err := service.repo.ListYears(context)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, year := range years {
		counts[year]++
	}

	histogram := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		histogram = append(histogram, YearCount{Name: year, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool { return histogram[i].Name < histogram[j].Name })

	return histogram, nil
}

// annotate fills the Read field for every artwork the caller has a reading
// state for. Anonymous callers keep every Read nil. Lookup failures degrade
// to unannotated results rather than failing the listing.
func (service *Service) annotate(context context.Context, userID string, artworks []*Artwork) {
	if userID == "" || len(artworks) == 0 {
		return
	}

	ids := make([]int, 0, len(artworks))
	for _, artwork := range artworks {
		ids = append(ids, artwork.ID)
	}

	percents, err := service.reading.ReadPercents(context, userID, ids)
	if err != nil {
		service.logger.Warn("artwork_read_annotation_failed", slog.Any("error", err))
		return
	}

	for _, artwork := range artworks {
		if percent, ok := percents[artwork.ID]; ok {
			p := percent
			artwork.Read = &p
		}
	}
}
