// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"context"
	"log/slog"

	"github.com/taibuivan/chitalka/internal/platform/constants"
	"github.com/taibuivan/chitalka/pkg/translit"
)

// Summary aggregates the outcome of one import run.
type Summary struct {
	Total   int
	Created int
	Skipped int
	Failed  int
	Authors int // authors newly created during the run
	Genres  int // genres newly created during the run
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Run imports every row, one at a time. A row whose title already exists
// in the catalog is skipped, which makes re-running the same export a
// no-op. A failing row is logged and counted, the run continues.
func (service *Service) Run(context context.Context, rows []Row) Summary {
	summary := Summary{Total: len(rows)}

	for i, row := range rows {
		skipped, err := service.importRow(context, row, &summary)
		if err != nil {
			summary.Failed++
			service.logger.Error("ingest_row_failed",
				slog.Int("row", i+2),
				slog.String("title", row.Title),
				slog.Any("error", err),
			)
			continue
		}
		if skipped {
			summary.Skipped++
			continue
		}
		summary.Created++
		service.logger.Info("ingest_row_imported",
			slog.Int("row", i+2),
			slog.String("title", row.Title),
			slog.String("author", row.AuthorName),
		)
	}

	return summary
}

func (service *Service) importRow(context context.Context, row Row, summary *Summary) (skipped bool, err error) {
	exists, err := service.repo.ArtworkExists(context, row.Title)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}

	authorID, authorCreated, err := service.repo.GetOrCreateAuthor(context, row.AuthorName, translit.From(row.AuthorName))
	if err != nil {
		return false, err
	}
	if authorCreated {
		summary.Authors++
	}

	genreIDs := make([]int, 0, len(row.Genres))
	for _, genre := range row.Genres {
		genreID, genreCreated, err := service.repo.GetOrCreateGenre(context, genre)
		if err != nil {
			return false, err
		}
		if genreCreated {
			summary.Genres++
		}
		genreIDs = append(genreIDs, genreID)
	}

	artworkID, err := service.repo.CreateArtwork(context, NewArtwork{
		Name:   row.Title,
		NameEn: translit.From(row.Title),
		Date:   row.Year,
		Field1: row.Form,
		Field2: row.Tags,
		File:   constants.BookFilePrefix + row.FileBasename + constants.BookFileExtension,
	})
	if err != nil {
		return false, err
	}

	if err := service.repo.SetAuthor(context, artworkID, authorID); err != nil {
		return false, err
	}
	if err := service.repo.SetGenres(context, artworkID, genreIDs); err != nil {
		return false, err
	}

	return false, nil
}
