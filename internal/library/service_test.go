// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/internal/catalog/author"
	"github.com/taibuivan/chitalka/internal/library"
	"github.com/taibuivan/chitalka/internal/platform/apperr"
	"github.com/taibuivan/chitalka/internal/platform/dberr"
)

type fakeRepository struct {
	states []*library.BookState
	nextID int
}

func (f *fakeRepository) GetByID(_ context.Context, id int) (*library.BookState, error) {
	for _, s := range f.states {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) GetByUserAndArtwork(_ context.Context, userID string, artworkID int) (*library.BookState, error) {
	for _, s := range f.states {
		if s.UserID == userID && s.ArtworkID == artworkID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, state *library.BookState) error {
	f.nextID++
	state.ID = f.nextID
	copied := *state
	f.states = append(f.states, &copied)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, id int, epubcfi string, percent int, show bool) error {
	for _, s := range f.states {
		if s.ID == id {
			s.Epubcfi = epubcfi
			s.Percent = percent
			s.Show = show
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (f *fakeRepository) SetShow(_ context.Context, id int, show bool) error {
	for _, s := range f.states {
		if s.ID == id {
			s.Show = show
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (f *fakeRepository) ListVisible(_ context.Context, userID string) ([]library.ListItem, error) {
	var items []library.ListItem
	for _, s := range f.states {
		if s.UserID == userID && s.Show {
			items = append(items, library.ListItem{ID: s.ID, ArtworkID: s.ArtworkID, Percent: s.Percent})
		}
	}
	return items, nil
}

func (f *fakeRepository) ReadPercents(_ context.Context, userID string, artworkIDs []int) (map[int]int, error) {
	percents := map[int]int{}
	for _, s := range f.states {
		if s.UserID != userID {
			continue
		}
		for _, id := range artworkIDs {
			if s.ArtworkID == id {
				percents[id] = s.Percent
			}
		}
	}
	return percents, nil
}

func (f *fakeRepository) LastByAuthor(_ context.Context, _ string, _ int) (*author.LastBook, error) {
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) BookView(_ context.Context, userID string, artworkID int) (*library.BookView, error) {
	for _, s := range f.states {
		if s.UserID == userID && s.ArtworkID == artworkID {
			return &library.BookView{Epubcfi: s.Epubcfi, Percent: s.Percent}, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func newService(repo *fakeRepository) *library.Service {
	return library.NewService(repo, slog.Default())
}

/*
TestCreate verifies the reading-list add: a fresh state starts visible,
a duplicate add for the same book is rejected, and an out-of-range percent
fails validation.
*/
func TestCreate(t *testing.T) {
	t.Run("fresh", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newService(repo)

		state, err := service.Create(context.Background(), "user-1", library.CreateInput{
			ArtworkID: 5,
			Epubcfi:   "epubcfi(/6/4!/4/2)",
			Percent:   0,
		})
		require.NoError(t, err)

		assert.True(t, state.Show)
		assert.Equal(t, "user-1", state.UserID)
		assert.Len(t, repo.states, 1)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newService(repo)

		_, err := service.Create(context.Background(), "user-1", library.CreateInput{ArtworkID: 5})
		require.NoError(t, err)

		_, err = service.Create(context.Background(), "user-1", library.CreateInput{ArtworkID: 5})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Len(t, repo.states, 1)
	})

	t.Run("same book, different user", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newService(repo)

		_, err := service.Create(context.Background(), "user-1", library.CreateInput{ArtworkID: 5})
		require.NoError(t, err)

		_, err = service.Create(context.Background(), "user-2", library.CreateInput{ArtworkID: 5})
		require.NoError(t, err)
		assert.Len(t, repo.states, 2)
	})

	t.Run("invalid percent", func(t *testing.T) {
		service := newService(&fakeRepository{})

		_, err := service.Create(context.Background(), "user-1", library.CreateInput{
			ArtworkID: 5,
			Percent:   120,
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestUpdateState verifies the show-flag rule: finishing a book (100%) hides
it from the list, any lower progress keeps it visible, and re-reading a
finished book brings it back.
*/
func TestUpdateState(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	state, err := service.Create(context.Background(), "user-1", library.CreateInput{ArtworkID: 5})
	require.NoError(t, err)

	updated, err := service.UpdateState(context.Background(), "user-1", state.ID, library.UpdateInput{
		Epubcfi: "epubcfi(/6/8!/4/2)",
		Percent: 100,
	})
	require.NoError(t, err)
	assert.False(t, updated.Show)

	updated, err = service.UpdateState(context.Background(), "user-1", state.ID, library.UpdateInput{
		Epubcfi: "epubcfi(/6/2!/4/2)",
		Percent: 10,
	})
	require.NoError(t, err)
	assert.True(t, updated.Show)
}

/*
TestUpdateState_Ownership verifies that another user's state id behaves as
if it did not exist.
*/
func TestUpdateState_Ownership(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	state, err := service.Create(context.Background(), "user-1", library.CreateInput{ArtworkID: 5})
	require.NoError(t, err)

	_, err = service.UpdateState(context.Background(), "user-2", state.ID, library.UpdateInput{Percent: 50})
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

/*
TestHide verifies the soft removal from the reading list.
*/
func TestHide(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	state, err := service.Create(context.Background(), "user-1", library.CreateInput{ArtworkID: 5})
	require.NoError(t, err)

	require.NoError(t, service.Hide(context.Background(), "user-1", state.ID))

	items, err := service.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// The row survives, only the flag flips.
	assert.Len(t, repo.states, 1)
	assert.False(t, repo.states[0].Show)
}

/*
TestList verifies the empty reading list marshals as [] rather than null.
*/
func TestList(t *testing.T) {
	service := newService(&fakeRepository{})

	items, err := service.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

/*
TestReadPercents verifies the batch annotation lookup is scoped to the user.
*/
func TestReadPercents(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	_, err := service.Create(context.Background(), "user-1", library.CreateInput{ArtworkID: 5, Percent: 40})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), "user-2", library.CreateInput{ArtworkID: 6, Percent: 90})
	require.NoError(t, err)

	percents, err := service.ReadPercents(context.Background(), "user-1", []int{5, 6})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{5: 40}, percents)
}
