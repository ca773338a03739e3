// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package library tracks per-user reading state: one row per (user, book)
// pair holding the EPUB position, the reading percent and the listing flag.
package library

import "time"

// BookState is one user's progress through one book.
type BookState struct {
	ID         int       `json:"id"`
	UserID     string    `json:"user_id"`
	ArtworkID  int       `json:"artwork_id"`
	Epubcfi    string    `json:"epubcfi"`
	Percent    int       `json:"percent"`
	Show       bool      `json:"show"`
	DateUpdate time.Time `json:"date_update"`
}

// ListItem is one row of the user's reading list, joined with book info.
type ListItem struct {
	ID         int       `json:"id"`
	ArtworkID  int       `json:"artwork_id"`
	Name       string    `json:"name"`
	File       string    `json:"file"`
	Epubcfi    string    `json:"epubcfi"`
	Percent    int       `json:"percent"`
	DateUpdate time.Time `json:"date_update"`
}

// BookView is what the reader needs to open a book: the file to load and
// where the caller stopped last time.
type BookView struct {
	File    string `json:"file"`
	Epubcfi string `json:"epubcfi"`
	Percent int    `json:"percent"`
}

// Global field names for validation
const (
	FieldArtworkID = "artwork_id"
	FieldEpubcfi   = "epubcfi"
	FieldPercent   = "percent"
)

// MaxEpubcfiLength mirrors the column size.
const MaxEpubcfiLength = 150
