// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artwork

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

// selectArtworks builds the shared SELECT with genre names aggregated per
// artwork. where is appended verbatim and may reference a.* columns and
// positional parameters.
func selectArtworks(where string) string {
	return fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		       COALESCE(array_agg(g.%s ORDER BY g.%s) FILTER (WHERE g.%s IS NOT NULL), '{}')
		FROM %s a
		LEFT JOIN %s ag ON ag.%s = a.%s
		LEFT JOIN %s g ON g.%s = ag.%s
		%s
		GROUP BY a.%s
		ORDER BY a.%s ASC
	`,
		schema.CatalogArtwork.ID, schema.CatalogArtwork.Name, schema.CatalogArtwork.NameEn,
		schema.CatalogArtwork.Date, schema.CatalogArtwork.Field1, schema.CatalogArtwork.Field2,
		schema.CatalogArtwork.File, schema.CatalogArtwork.Info,
		schema.CatalogGenre.Name, schema.CatalogGenre.Name, schema.CatalogGenre.Name,
		schema.CatalogArtwork.Table,
		schema.CatalogArtworkGenre.Table, schema.CatalogArtworkGenre.ArtworkID, schema.CatalogArtwork.ID,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID, schema.CatalogArtworkGenre.GenreID,
		where,
		schema.CatalogArtwork.ID,
		schema.CatalogArtwork.Name,
	)
}

func (repository *PostgresRepository) queryArtworks(context context.Context, query string, args ...any) ([]*Artwork, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "query_artworks")
	}
	defer rows.Close()

	var artworks []*Artwork
	for rows.Next() {
		a := &Artwork{}
		if err := rows.Scan(
			&a.ID, &a.Name, &a.NameEn, &a.Date, &a.Field1, &a.Field2, &a.File, &a.Info, &a.Genres,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_artwork")
		}
		artworks = append(artworks, a)
	}

	return artworks, nil
}

func (repository *PostgresRepository) ListByPrefix(context context.Context, prefix string) ([]*Artwork, error) {
	// Prefix match is case-sensitive by contract (LIKE, not ILIKE).
	query := selectArtworks(fmt.Sprintf(`WHERE a.%s LIKE $1 || '%%'`, schema.CatalogArtwork.Name))
	return repository.queryArtworks(context, query, prefix)
}

func (repository *PostgresRepository) Search(context context.Context, value string) ([]*Artwork, error) {
	query := selectArtworks(fmt.Sprintf(`WHERE a.%s ILIKE '%%' || $1 || '%%'`, schema.CatalogArtwork.Name))
	return repository.queryArtworks(context, query, value)
}

func (repository *PostgresRepository) FilterByYear(context context.Context, year string) ([]*Artwork, error) {
	query := selectArtworks(fmt.Sprintf(`WHERE a.%s = $1`, schema.CatalogArtwork.Date))
	return repository.queryArtworks(context, query, year)
}

func (repository *PostgresRepository) FilterByGenreName(context context.Context, genreName string) ([]*Artwork, error) {
	where := fmt.Sprintf(`
		WHERE a.%s IN (
			SELECT fg.%s
			FROM %s fg
			JOIN %s fgg ON fgg.%s = fg.%s
			WHERE fgg.%s = $1
		)`,
		schema.CatalogArtwork.ID,
		schema.CatalogArtworkGenre.ArtworkID,
		schema.CatalogArtworkGenre.Table,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID, schema.CatalogArtworkGenre.GenreID,
		schema.CatalogGenre.Name,
	)
	return repository.queryArtworks(context, selectArtworks(where), genreName)
}

func (repository *PostgresRepository) FilterByAuthorAndGenre(context context.Context, authorID, genreID int) ([]*Artwork, error) {
	where := fmt.Sprintf(`
		WHERE a.%s IN (SELECT %s FROM %s WHERE %s = $1)
		  AND a.%s IN (SELECT %s FROM %s WHERE %s = $2)`,
		schema.CatalogArtwork.ID,
		schema.CatalogArtworkAuthor.ArtworkID, schema.CatalogArtworkAuthor.Table, schema.CatalogArtworkAuthor.AuthorID,
		schema.CatalogArtwork.ID,
		schema.CatalogArtworkGenre.ArtworkID, schema.CatalogArtworkGenre.Table, schema.CatalogArtworkGenre.GenreID,
	)
	return repository.queryArtworks(context, selectArtworks(where), authorID, genreID)
}

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Artwork, error) {
	query := selectArtworks(fmt.Sprintf(`WHERE a.%s = $1`, schema.CatalogArtwork.ID))

	artworks, err := repository.queryArtworks(context, query, id)
	if err != nil {
		return nil, err
	}
	if len(artworks) == 0 {
		return nil, dberr.ErrNotFound
	}

	return artworks[0], nil
}

func (repository *PostgresRepository) ListYears(context context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, schema.CatalogArtwork.Date, schema.CatalogArtwork.Table)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artwork_years")
	}
	defer rows.Close()

	var years []string
	for rows.Next() {
		var year string
		if err := rows.Scan(&year); err != nil {
			return nil, dberr.Wrap(err, "scan_artwork_year")
		}
		years = append(years, year)
	}

	return years, nil
}
