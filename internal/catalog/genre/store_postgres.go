// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/chitalka/internal/platform/database/schema"
	"github.com/taibuivan/chitalka/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.CatalogGenre.ID, schema.CatalogGenre.Name,
		schema.CatalogGenre.Table,
		schema.CatalogGenre.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, nil
}

func (repository *PostgresRepository) CountsByGenre(context context.Context) (map[int]int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM %s
		GROUP BY %s
	`,
		schema.CatalogArtworkGenre.GenreID,
		schema.CatalogArtworkGenre.Table,
		schema.CatalogArtworkGenre.GenreID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "count_genre_tags")
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var genreID, count int
		if err := rows.Scan(&genreID, &count); err != nil {
			return nil, dberr.Wrap(err, "scan_genre_count")
		}
		counts[genreID] = count
	}

	return counts, nil
}
