// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ingest loads the book catalog from tabular exports.

Each row names an author, an artwork, its EPUB file and a comma-separated
genre list. Rows are processed independently: a failed row never rolls
back the rows before it, and re-running the same file is a no-op because
existing titles are skipped and authors/genres are get-or-create.
*/
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/taibuivan/chitalka/pkg/query"
)

// Row is one record of the catalog export:
// author, title, file basename, year, form, genres, tags.
type Row struct {
	AuthorName   string
	Title        string
	FileBasename string
	Year         string
	Form         string
	Genres       []string
	Tags         string
}

// rowWidth is the number of meaningful leading columns in the export.
const rowWidth = 7

// ReadRows parses the CSV export. The first line is a header and is
// skipped. Trailing columns beyond the known seven are ignored.
func ReadRows(reader io.Reader) ([]Row, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest_read_csv_failed: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < rowWidth {
			return nil, fmt.Errorf("ingest_row_%d_too_short: got %d columns, want %d", i+2, len(record), rowWidth)
		}
		rows = append(rows, Row{
			AuthorName:   strings.TrimSpace(record[0]),
			Title:        strings.TrimSpace(record[1]),
			FileBasename: strings.TrimSpace(record[2]),
			Year:         strings.TrimSpace(record[3]),
			Form:         strings.TrimSpace(record[4]),
			Genres:       query.StringSlice(record[5]),
			Tags:         strings.TrimSpace(record[6]),
		})
	}

	return rows, nil
}
