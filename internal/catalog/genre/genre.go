// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

// Genre represents a catalog genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NameCount is one row of the genre category list. Genres with no tagged
// artworks keep a zero count rather than being dropped.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
