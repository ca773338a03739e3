// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"
	"sort"
)

// LastReadProvider looks up the caller's most recently updated reading state
// among the author's books. Implemented by the library service; declared here
// so the catalog does not import the library package.
type LastReadProvider interface {
	LastBookByAuthor(context context.Context, userID string, authorID int) (*LastBook, error)
}

type Service struct {
	repo     Repository
	lastRead LastReadProvider
	logger   *slog.Logger
}

func NewService(repo Repository, lastRead LastReadProvider, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		lastRead: lastRead,
		logger:   logger,
	}
}

func (service *Service) ListByPrefix(context context.Context, prefix string) ([]*Author, error) {
	return service.repo.ListByPrefix(context, prefix)
}

// FirstLetterHistogram groups every author name by its first character.
//
// The grouping is case-sensitive over whatever case is stored; buckets are
// returned sorted by letter. An empty name counts under the empty-string
// bucket rather than being dropped.
func (service *Service) FirstLetterHistogram(context context.Context) ([]LetterCount, error) {
	names, err := service.repo.ListNames(context)
	if err != nil {
		return nil, err
	}

	letters := map[string]int{}
	for _, name := range names {
		first := ""
		for _, r := range name {
			first = string(r)
			break
		}
		letters[first]++
	}

	histogram := make([]LetterCount, 0, len(letters))
	for letter, count := range letters {
		histogram = append(histogram, LetterCount{Name: letter, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool { return histogram[i].Name < histogram[j].Name })

	return histogram, nil
}

// Detail assembles the author page: the record, a genre histogram over the
// author's artwork-genre tags, and the caller's last-read book by this author.
//
// The histogram counts every tag, so an author with artworks tagged
// {A, A, B} yields counts {A: 2, B: 1} and all = 3. userID may be empty for
// anonymous requests, in which case Last stays nil.
func (service *Service) Detail(context context.Context, id int, userID string) (*Detail, error) {
	record, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	tags, err := service.repo.ListGenreTags(context, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Author: *record,
		Genres: []GenreCount{},
	}

	// Aggregate tag rows preserving first-seen genre order.
	index := map[int]int{}
	for _, tag := range tags {
		detail.All++
		if i, seen := index[tag.GenreID]; seen {
			detail.Genres[i].Count++
			continue
		}
		index[tag.GenreID] = len(detail.Genres)
		detail.Genres = append(detail.Genres, GenreCount{ID: tag.GenreID, Name: tag.GenreName, Count: 1})
	}

	if userID != "" {
		last, err := service.lastRead.LastBookByAuthor(context, userID, id)
		if err != nil {
			service.logger.Warn("author_last_read_lookup_failed",
				slog.Int("author_id", id),
				slog.Any("error", err),
			)
		} else {
			detail.Last = last
		}
	}

	return detail, nil
}
