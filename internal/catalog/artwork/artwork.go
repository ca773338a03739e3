// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artwork

// Artwork represents a book in the catalog.
//
// Read carries the caller's reading percent and is null for anonymous
// requests or books the caller never opened. Date is the publication year,
// stored as a loose 4-character string.
type Artwork struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	NameEn string   `json:"name_en"`
	Date   string   `json:"date"`
	Field1 string   `json:"field_1"`
	Field2 string   `json:"field_2"`
	File   string   `json:"file"`
	Info   string   `json:"info"`
	Genres []string `json:"genres"`
	Read   *int     `json:"read"`
}

// YearCount is one bucket of the publication-year histogram.
type YearCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Global field names for validation
const (
	FieldName   = "name"
	FieldNameEn = "name_en"
	FieldDate   = "date"
	FieldFile   = "file"
)
