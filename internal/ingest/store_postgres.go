// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

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

func (repository *PostgresRepository) ArtworkExists(context context.Context, name string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogArtwork.Table, schema.CatalogArtwork.Name,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, name).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "artwork_exists")
	}

	return exists, nil
}

// GetOrCreateAuthor upserts by name. The no-op DO UPDATE makes the row
// visible to RETURNING on conflict; xmax = 0 distinguishes a fresh insert
// from a found row.
func (repository *PostgresRepository) GetOrCreateAuthor(context context.Context, name, nameEn string) (int, bool, error) {
	t := schema.CatalogAuthor
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s, (xmax = 0)
	`,
		t.Table, t.Name, t.NameEn,
		t.Name, t.Name, t.Name,
		t.ID,
	)

	var id int
	var created bool
	if err := repository.db.QueryRow(context, query, name, nameEn).Scan(&id, &created); err != nil {
		return 0, false, dberr.Wrap(err, "get_or_create_author")
	}

	return id, created, nil
}

func (repository *PostgresRepository) GetOrCreateGenre(context context.Context, name string) (int, bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s, (xmax = 0)
	`,
		schema.CatalogGenre.Table, schema.CatalogGenre.Name,
		schema.CatalogGenre.Name, schema.CatalogGenre.Name, schema.CatalogGenre.Name,
		schema.CatalogGenre.ID,
	)

	var id int
	var created bool
	if err := repository.db.QueryRow(context, query, name).Scan(&id, &created); err != nil {
		return 0, false, dberr.Wrap(err, "get_or_create_genre")
	}

	return id, created, nil
}

func (repository *PostgresRepository) CreateArtwork(context context.Context, artwork NewArtwork) (int, error) {
	t := schema.CatalogArtwork
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		t.Table,
		t.Name, t.NameEn, t.Date, t.Field1, t.Field2, t.File,
		t.ID,
	)

	var id int
	err := repository.db.QueryRow(context, query,
		artwork.Name, artwork.NameEn, artwork.Date, artwork.Field1, artwork.Field2, artwork.File,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "create_artwork")
	}

	return id, nil
}

func (repository *PostgresRepository) SetAuthor(context context.Context, artworkID, authorID int) error {
	t := schema.CatalogArtworkAuthor

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ArtworkID)
	if _, err := repository.db.Exec(context, deleteQuery, artworkID); err != nil {
		return dberr.Wrap(err, "clear_artwork_authors")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		t.Table, t.ArtworkID, t.AuthorID,
	)
	if _, err := repository.db.Exec(context, insertQuery, artworkID, authorID); err != nil {
		return dberr.Wrap(err, "set_artwork_author")
	}

	return nil
}

func (repository *PostgresRepository) SetGenres(context context.Context, artworkID int, genreIDs []int) error {
	t := schema.CatalogArtworkGenre

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ArtworkID)
	if _, err := repository.db.Exec(context, deleteQuery, artworkID); err != nil {
		return dberr.Wrap(err, "clear_artwork_genres")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		t.Table, t.ArtworkID, t.GenreID,
	)
	for _, genreID := range genreIDs {
		if _, err := repository.db.Exec(context, insertQuery, artworkID, genreID); err != nil {
			return dberr.Wrap(err, "set_artwork_genre")
		}
	}

	return nil
}
