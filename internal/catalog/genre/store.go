// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "context"

type Repository interface {
	// List returns every genre ordered by name.
	List(context context.Context) ([]*Genre, error)

	// CountsByGenre returns the number of tagged artworks per genre id.
	// Genres with no tags are absent from the map.
	CountsByGenre(context context.Context) (map[int]int, error)
}
