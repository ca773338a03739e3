// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/internal/catalog/genre"
)

type fakeRepository struct {
	genres []*genre.Genre
	counts map[int]int
}

func (f *fakeRepository) List(_ context.Context) ([]*genre.Genre, error) {
	return f.genres, nil
}

func (f *fakeRepository) CountsByGenre(_ context.Context) (map[int]int, error) {
	return f.counts, nil
}

/*
TestCategoryList verifies the per-genre artwork counts, including a zero
count for genres no artwork is tagged with.
*/
func TestCategoryList(t *testing.T) {
	repo := &fakeRepository{
		genres: []*genre.Genre{
			{ID: 1, Name: "Essay"},
			{ID: 2, Name: "Novel"},
			{ID: 3, Name: "Poetry"},
		},
		counts: map[int]int{1: 4, 2: 12},
	}
	service := genre.NewService(repo)

	categories, err := service.CategoryList(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []genre.NameCount{
		{Name: "Essay", Count: 4},
		{Name: "Novel", Count: 12},
		{Name: "Poetry", Count: 0},
	}, categories)
}
