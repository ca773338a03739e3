// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/chitalka/internal/catalog/author"
	"github.com/taibuivan/chitalka/internal/platform/apperr"
	"github.com/taibuivan/chitalka/internal/platform/dberr"
	"github.com/taibuivan/chitalka/internal/platform/validate"
)

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

// CreateInput is the payload for adding a book to the reading list.
type CreateInput struct {
	ArtworkID int    `json:"artwork_id"`
	Epubcfi   string `json:"epubcfi"`
	Percent   int    `json:"percent"`
}

func (input CreateInput) Validate() error {
	v := &validate.Validator{}
	v.Range(FieldArtworkID, input.ArtworkID, 1, 1<<31-1)
	v.Percent(FieldPercent, input.Percent)
	v.MaxLen(FieldEpubcfi, input.Epubcfi, MaxEpubcfiLength)
	return v.Err()
}

// Create adds a book to the user's reading list. A second create for the
// same (user, book) pair is rejected as a validation failure rather than
// silently duplicated.
func (service *Service) Create(context context.Context, userID string, input CreateInput) (*BookState, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetByUserAndArtwork(context, userID, input.ArtworkID)
	if err != nil && !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ValidationError("Book is already in the reading list")
	}

	state := &BookState{
		UserID:    userID,
		ArtworkID: input.ArtworkID,
		Epubcfi:   input.Epubcfi,
		Percent:   input.Percent,
		Show:      true,
	}
	if err := service.repo.Create(context, state); err != nil {
		return nil, err
	}

	service.logger.Info("book_state_created",
		slog.String("user_id", userID),
		slog.Int("artwork_id", input.ArtworkID),
	)
	return state, nil
}

// UpdateInput is the payload for saving reading progress.
type UpdateInput struct {
	Epubcfi string `json:"epubcfi"`
	Percent int    `json:"percent"`
}

func (input UpdateInput) Validate() error {
	v := &validate.Validator{}
	v.Percent(FieldPercent, input.Percent)
	v.MaxLen(FieldEpubcfi, input.Epubcfi, MaxEpubcfiLength)
	return v.Err()
}

// UpdateState saves the caller's position in a book. A finished book
// (percent == 100) drops off the reading list; any other progress puts it
// back on.
func (service *Service) UpdateState(context context.Context, userID string, stateID int, input UpdateInput) (*BookState, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	state, err := service.ownedState(context, userID, stateID)
	if err != nil {
		return nil, err
	}

	show := input.Percent != 100
	if err := service.repo.Update(context, state.ID, input.Epubcfi, input.Percent, show); err != nil {
		return nil, err
	}

	state.Epubcfi = input.Epubcfi
	state.Percent = input.Percent
	state.Show = show
	return state, nil
}

// List returns the caller's visible reading list, most recent first.
func (service *Service) List(context context.Context, userID string) ([]ListItem, error) {
	items, err := service.repo.ListVisible(context, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ListItem{}
	}
	return items, nil
}

// Hide removes a book from the caller's list without losing the position.
func (service *Service) Hide(context context.Context, userID string, stateID int) error {
	state, err := service.ownedState(context, userID, stateID)
	if err != nil {
		return err
	}
	return service.repo.SetShow(context, state.ID, false)
}

// Book returns the open-book payload for one of the caller's books.
func (service *Service) Book(context context.Context, userID string, artworkID int) (*BookView, error) {
	return service.repo.BookView(context, userID, artworkID)
}

// ReadPercents implements the catalog's reading annotator.
func (service *Service) ReadPercents(context context.Context, userID string, artworkIDs []int) (map[int]int, error) {
	return service.repo.ReadPercents(context, userID, artworkIDs)
}

// LastBookByAuthor implements the catalog's last-read provider.
func (service *Service) LastBookByAuthor(context context.Context, userID string, authorID int) (*author.LastBook, error) {
	return service.repo.LastByAuthor(context, userID, authorID)
}

// ownedState loads a state row and hides its existence from non-owners.
func (service *Service) ownedState(context context.Context, userID string, stateID int) (*BookState, error) {
	state, err := service.repo.GetByID(context, stateID)
	if err != nil {
		return nil, err
	}
	if state.UserID != userID {
		return nil, dberr.ErrNotFound
	}
	return state, nil
}
