// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/internal/catalog/author"
	"github.com/taibuivan/chitalka/internal/platform/dberr"
)

type fakeRepository struct {
	authors []*author.Author
	names   []string
	tags    map[int][]author.GenreTag
}

func (f *fakeRepository) ListByPrefix(_ context.Context, prefix string) ([]*author.Author, error) {
	var out []*author.Author
	for _, a := range f.authors {
		if len(prefix) <= len(a.Name) && a.Name[:len(prefix)] == prefix {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepository) Search(_ context.Context, _ string) ([]*author.Author, error) {
	return f.authors, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int) (*author.Author, error) {
	for _, a := range f.authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) ListNames(_ context.Context) ([]string, error) {
	return f.names, nil
}

func (f *fakeRepository) ListGenreTags(_ context.Context, authorID int) ([]author.GenreTag, error) {
	return f.tags[authorID], nil
}

type fakeLastRead struct {
	last *author.LastBook
}

func (f *fakeLastRead) LastBookByAuthor(_ context.Context, _ string, _ int) (*author.LastBook, error) {
	if f.last == nil {
		return nil, dberr.ErrNotFound
	}
	return f.last, nil
}

func newService(repo *fakeRepository, last *fakeLastRead) *author.Service {
	return author.NewService(repo, last, slog.Default())
}

/*
TestFirstLetterHistogram verifies case-sensitive grouping by first character,
sorted bucket order, and the empty-name bucket.
*/
func TestFirstLetterHistogram(t *testing.T) {
	repo := &fakeRepository{names: []string{"Tolstoy", "Turgenev", "chekhov", "Chekhov", ""}}
	service := newService(repo, &fakeLastRead{})

	histogram, err := service.FirstLetterHistogram(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []author.LetterCount{
		{Name: "", Count: 1},
		{Name: "C", Count: 1},
		{Name: "T", Count: 2},
		{Name: "c", Count: 1},
	}, histogram)
}

/*
TestDetail_GenreHistogram verifies the tag aggregation: artworks tagged
{A, A, B} produce counts {A: 2, B: 1} and all = 3.
*/
func TestDetail_GenreHistogram(t *testing.T) {
	repo := &fakeRepository{
		authors: []*author.Author{{ID: 1, Name: "Tolstoy"}},
		tags: map[int][]author.GenreTag{
			1: {
				{GenreID: 10, GenreName: "Novel"},
				{GenreID: 10, GenreName: "Novel"},
				{GenreID: 20, GenreName: "Essay"},
			},
		},
	}
	service := newService(repo, &fakeLastRead{})

	detail, err := service.Detail(context.Background(), 1, "")
	require.NoError(t, err)

	assert.Equal(t, 3, detail.All)
	assert.Equal(t, []author.GenreCount{
		{ID: 10, Name: "Novel", Count: 2},
		{ID: 20, Name: "Essay", Count: 1},
	}, detail.Genres)
	assert.Nil(t, detail.Last)
}

/*
TestDetail_LastRead verifies the last-read attachment for authenticated
callers, and that lookup failures degrade to a nil `last` rather than
failing the whole page.
*/
func TestDetail_LastRead(t *testing.T) {
	repo := &fakeRepository{authors: []*author.Author{{ID: 1, Name: "Tolstoy"}}}

	t.Run("present", func(t *testing.T) {
		last := &author.LastBook{ID: 7, Name: "War and Peace", Percent: 42}
		service := newService(repo, &fakeLastRead{last: last})

		detail, err := service.Detail(context.Background(), 1, "user-1")
		require.NoError(t, err)
		assert.Equal(t, last, detail.Last)
	})

	t.Run("absent", func(t *testing.T) {
		service := newService(repo, &fakeLastRead{})

		detail, err := service.Detail(context.Background(), 1, "user-1")
		require.NoError(t, err)
		assert.Nil(t, detail.Last)
	})

	t.Run("anonymous", func(t *testing.T) {
		service := newService(repo, &fakeLastRead{last: &author.LastBook{ID: 7}})

		detail, err := service.Detail(context.Background(), 1, "")
		require.NoError(t, err)
		assert.Nil(t, detail.Last)
	})
}

/*
TestDetail_NotFound verifies the not-found propagation for missing authors.
*/
func TestDetail_NotFound(t *testing.T) {
	service := newService(&fakeRepository{}, &fakeLastRead{})

	_, err := service.Detail(context.Background(), 99, "")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

/*
TestListByPrefix verifies the case-sensitive starts-with contract and the
empty-prefix passthrough.
*/
func TestListByPrefix(t *testing.T) {
	repo := &fakeRepository{authors: []*author.Author{
		{ID: 1, Name: "Tolstoy"},
		{ID: 2, Name: "Turgenev"},
		{ID: 3, Name: "Chekhov"},
	}}
	service := newService(repo, &fakeLastRead{})

	matched, err := service.ListByPrefix(context.Background(), "T")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	all, err := service.ListByPrefix(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
