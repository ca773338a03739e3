// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"

	"github.com/taibuivan/chitalka/internal/platform/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the caller's reader preferences.
func (service *Service) Get(context context.Context, userID string) (*Settings, error) {
	return service.repo.GetByUserID(context, userID)
}

// UpdateInput is a partial patch: nil fields keep their stored value.
type UpdateInput struct {
	Percent *int `json:"percent"`
	Size    *int `json:"size"`
}

func (input UpdateInput) Validate() error {
	v := &validate.Validator{}
	if input.Percent != nil {
		v.Percent(FieldPercent, *input.Percent)
	}
	if input.Size != nil {
		v.Range(FieldSize, *input.Size, 1, 1000)
	}
	return v.Err()
}

// Update applies a partial patch to the caller's preferences and returns
// the resulting row.
func (service *Service) Update(context context.Context, userID string, input UpdateInput) (*Settings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := service.repo.GetByUserID(context, userID)
	if err != nil {
		return nil, err
	}

	if input.Percent != nil {
		current.Percent = *input.Percent
	}
	if input.Size != nil {
		current.Size = *input.Size
	}

	if err := service.repo.Update(context, current); err != nil {
		return nil, err
	}

	return current, nil
}
