// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/taibuivan/chitalka/internal/platform/validate"
)

type Service struct {
	repo      Repository
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo: repo,
		// StrictPolicy strips every HTML element; feedback is plain text.
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// Create stores a new support request with the NEW status. Markup is
// stripped from the text before validation so the length limit applies to
// what actually gets stored.
func (service *Service) Create(context context.Context, userID, text string) (*Feedback, error) {
	text = strings.TrimSpace(service.sanitizer.Sanitize(text))

	v := &validate.Validator{}
	v.Required(FieldText, text)
	v.MaxLen(FieldText, text, MaxTextLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	request := &Feedback{
		UserID: userID,
		Text:   text,
		Status: StatusNew,
	}
	if err := service.repo.Create(context, request); err != nil {
		return nil, err
	}

	service.logger.Info("feedback_created",
		slog.Int("feedback_id", request.ID),
		slog.String("user_id", userID),
	)
	return request, nil
}

// List returns every request for the staff triage queue.
func (service *Service) List(context context.Context) ([]*Feedback, error) {
	requests, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []*Feedback{}
	}
	return requests, nil
}

// UpdateStatus moves a request to another workflow status.
func (service *Service) UpdateStatus(context context.Context, id int, status string) error {
	v := &validate.Validator{}
	v.OneOf(FieldStatus, status, Statuses...)
	if err := v.Err(); err != nil {
		return err
	}

	return service.repo.UpdateStatus(context, id, status)
}
