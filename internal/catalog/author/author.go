// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "time"

// Author represents a writer in the catalog.
type Author struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	NameEn    string     `json:"name_en"`
	DateBirth *time.Time `json:"date_birth"`
	DateDeath *time.Time `json:"date_death"`
	Photo     string     `json:"photo"`
	Info      string     `json:"info"`
}

// LetterCount is one bucket of the first-letter histogram.
type LetterCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GenreTag is a single artwork-genre association on one of the author's works.
// The detail endpoint aggregates these into a per-genre histogram.
type GenreTag struct {
	GenreID   int
	GenreName string
}

// GenreCount is one row of the author-detail genre histogram.
type GenreCount struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// LastBook identifies the most recently touched book by this author for a user.
type LastBook struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// Detail is the author page payload: the record itself plus a genre
// histogram over the author's artworks and the caller's last-read book.
type Detail struct {
	Author
	All    int          `json:"all"`
	Genres []GenreCount `json:"genres"`
	Last   *LastBook    `json:"last"`
}

// Global field names for validation
const (
	FieldName   = "name"
	FieldNameEn = "name_en"
	FieldInfo   = "info"
)
