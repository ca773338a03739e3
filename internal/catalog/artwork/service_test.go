// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artwork_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/internal/catalog/artwork"
)

type fakeRepository struct {
	artworks []*artwork.Artwork
	years    []string
}

func (f *fakeRepository) ListByPrefix(_ context.Context, _ string) ([]*artwork.Artwork, error) {
	return f.artworks, nil
}

func (f *fakeRepository) Search(_ context.Context, _ string) ([]*artwork.Artwork, error) {
	return f.artworks, nil
}

func (f *fakeRepository) FilterByYear(_ context.Context, year string) ([]*artwork.Artwork, error) {
	var out []*artwork.Artwork
	for _, a := range f.artworks {
		if a.Date == year {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepository) FilterByGenreName(_ context.Context, _ string) ([]*artwork.Artwork, error) {
	return f.artworks, nil
}

func (f *fakeRepository) FilterByAuthorAndGenre(_ context.Context, _, _ int) ([]*artwork.Artwork, error) {
	return f.artworks, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int) (*artwork.Artwork, error) {
	for _, a := range f.artworks {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepository) ListYears(_ context.Context) ([]string, error) {
	return f.years, nil
}

type fakeAnnotator struct {
	percents map[int]int
	err      error
	calls    int
}

func (f *fakeAnnotator) ReadPercents(_ context.Context, _ string, _ []int) (map[int]int, error) {
	f.calls++
	return f.percents, f.err
}

/*
TestAnnotation verifies the read-percent annotation: books the caller opened
carry their percent, untouched books stay null, anonymous callers never
trigger a lookup, and lookup failures degrade to unannotated results.
*/
func TestAnnotation(t *testing.T) {
	books := func() []*artwork.Artwork {
		return []*artwork.Artwork{{ID: 1, Name: "Anna Karenina"}, {ID: 2, Name: "Resurrection"}}
	}

	t.Run("authenticated", func(t *testing.T) {
		annotator := &fakeAnnotator{percents: map[int]int{1: 73}}
		service := artwork.NewService(&fakeRepository{artworks: books()}, annotator, slog.Default())

		result, err := service.ListByPrefix(context.Background(), "", "user-1")
		require.NoError(t, err)

		require.NotNil(t, result[0].Read)
		assert.Equal(t, 73, *result[0].Read)
		assert.Nil(t, result[1].Read)
	})

	t.Run("anonymous", func(t *testing.T) {
		annotator := &fakeAnnotator{percents: map[int]int{1: 73}}
		service := artwork.NewService(&fakeRepository{artworks: books()}, annotator, slog.Default())

		result, err := service.ListByPrefix(context.Background(), "", "")
		require.NoError(t, err)

		assert.Nil(t, result[0].Read)
		assert.Zero(t, annotator.calls)
	})

	t.Run("lookup failure", func(t *testing.T) {
		annotator := &fakeAnnotator{err: errors.New("redis down")}
		service := artwork.NewService(&fakeRepository{artworks: books()}, annotator, slog.Default())

		result, err := service.ListByPrefix(context.Background(), "", "user-1")
		require.NoError(t, err)
		assert.Nil(t, result[0].Read)
	})
}

/*
TestYearHistogram verifies per-year bucket counts sorted by year, with
blank dates grouped under the empty-string bucket.
*/
func TestYearHistogram(t *testing.T) {
	repo := &fakeRepository{years: []string{"1869", "1869", "1877", ""}}
	service := artwork.NewService(repo, &fakeAnnotator{}, slog.Default())

	histogram, err := service.YearHistogram(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []artwork.YearCount{
		{Name: "", Count: 1},
		{Name: "1869", Count: 2},
		{Name: "1877", Count: 1},
	}, histogram)
}

/*
TestFilterByYear verifies the exact-match year filter.
*/
func TestFilterByYear(t *testing.T) {
	repo := &fakeRepository{artworks: []*artwork.Artwork{
		{ID: 1, Name: "War and Peace", Date: "1869"},
		{ID: 2, Name: "Anna Karenina", Date: "1877"},
	}}
	service := artwork.NewService(repo, &fakeAnnotator{}, slog.Default())

	result, err := service.FilterByYear(context.Background(), "1869", "")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "War and Peace", result[0].Name)
}
