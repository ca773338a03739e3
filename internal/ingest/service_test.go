// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/internal/ingest"
)

type fakeRepository struct {
	artworks      map[string]int // title -> id
	authors       map[string]int
	authorNamesEn map[string]string
	genres        map[string]int
	artworkFiles  map[int]string
	authorLinks   map[int]int   // artwork id -> author id
	genreLinks    map[int][]int // artwork id -> genre ids
	nextID        int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		artworks:      map[string]int{},
		authors:       map[string]int{},
		authorNamesEn: map[string]string{},
		genres:        map[string]int{},
		artworkFiles:  map[int]string{},
		authorLinks:   map[int]int{},
		genreLinks:    map[int][]int{},
	}
}

func (f *fakeRepository) ArtworkExists(_ context.Context, name string) (bool, error) {
	_, ok := f.artworks[name]
	return ok, nil
}

func (f *fakeRepository) GetOrCreateAuthor(_ context.Context, name, nameEn string) (int, bool, error) {
	if id, ok := f.authors[name]; ok {
		return id, false, nil
	}
	f.nextID++
	f.authors[name] = f.nextID
	f.authorNamesEn[name] = nameEn
	return f.nextID, true, nil
}

func (f *fakeRepository) GetOrCreateGenre(_ context.Context, name string) (int, bool, error) {
	if id, ok := f.genres[name]; ok {
		return id, false, nil
	}
	f.nextID++
	f.genres[name] = f.nextID
	return f.nextID, true, nil
}

func (f *fakeRepository) CreateArtwork(_ context.Context, artwork ingest.NewArtwork) (int, error) {
	f.nextID++
	f.artworks[artwork.Name] = f.nextID
	f.artworkFiles[f.nextID] = artwork.File
	return f.nextID, nil
}

func (f *fakeRepository) SetAuthor(_ context.Context, artworkID, authorID int) error {
	f.authorLinks[artworkID] = authorID
	return nil
}

func (f *fakeRepository) SetGenres(_ context.Context, artworkID int, genreIDs []int) error {
	f.genreLinks[artworkID] = genreIDs
	return nil
}

const exportCSV = `author,title,file,year,form,genres,tags
Лев Толстой,Война и мир,voyna-i-mir,1869,роман,"Роман, Классика",война
Лев Толстой,Анна Каренина,anna-karenina,1877,роман,Роман,семья
Антон Чехов,Чайка,chayka,1896,пьеса,"Драма , Классика",театр
`

/*
TestRun verifies a full import: shared authors and genres are created
once, the file path is derived from the basename, and genre cells are
split on commas with whitespace trimmed.
*/
func TestRun(t *testing.T) {
	rows, err := ingest.ReadRows(strings.NewReader(exportCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	repo := newFakeRepository()
	service := ingest.NewService(repo, slog.Default())

	summary := service.Run(context.Background(), rows)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.Created)
	assert.Zero(t, summary.Skipped)
	assert.Zero(t, summary.Failed)

	// Two distinct authors, three distinct genres across the export.
	assert.Equal(t, 2, summary.Authors)
	assert.Equal(t, 3, summary.Genres)
	assert.Len(t, repo.authors, 2)
	assert.Len(t, repo.genres, 3)
	assert.Contains(t, repo.genres, "Классика")

	warID := repo.artworks["Война и мир"]
	assert.Equal(t, "/media/book/voyna-i-mir.epub", repo.artworkFiles[warID])
	assert.Equal(t, repo.authors["Лев Толстой"], repo.authorLinks[warID])
	assert.Len(t, repo.genreLinks[warID], 2)
	assert.Equal(t, "Lev Tolstoy", repo.authorNamesEn["Лев Толстой"])
}

/*
TestRun_Idempotent verifies that re-running the same export creates
nothing new.
*/
func TestRun_Idempotent(t *testing.T) {
	rows, err := ingest.ReadRows(strings.NewReader(exportCSV))
	require.NoError(t, err)

	repo := newFakeRepository()
	service := ingest.NewService(repo, slog.Default())

	first := service.Run(context.Background(), rows)
	require.Equal(t, 3, first.Created)

	second := service.Run(context.Background(), rows)
	assert.Equal(t, 3, second.Total)
	assert.Zero(t, second.Created)
	assert.Equal(t, 3, second.Skipped)

	assert.Len(t, repo.artworks, 3)
	assert.Len(t, repo.authors, 2)
	assert.Len(t, repo.genres, 3)
}

/*
TestReadRows_Malformed verifies short rows abort the parse with a row
number in the error.
*/
func TestReadRows_Malformed(t *testing.T) {
	_, err := ingest.ReadRows(strings.NewReader("h1,h2,h3,h4,h5,h6,h7\na,b,c\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row_2")
}
