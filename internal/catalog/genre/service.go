// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CategoryList returns every genre with its tagged-artwork count. Untagged
// genres stay in the list with a zero count.
func (service *Service) CategoryList(context context.Context) ([]NameCount, error) {
	genres, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	counts, err := service.repo.CountsByGenre(context)
	if err != nil {
		return nil, err
	}

	categories := make([]NameCount, 0, len(genres))
	for _, genre := range genres {
		categories = append(categories, NameCount{Name: genre.Name, Count: counts[genre.ID]})
	}

	return categories, nil
}
