// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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

func (repository *PostgresRepository) ListByPrefix(context context.Context, prefix string) ([]*Author, error) {
	// Prefix match is case-sensitive by contract (LIKE, not ILIKE).
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s LIKE $1 || '%%'
		ORDER BY %s ASC
	`,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.Name, schema.CatalogAuthor.NameEn,
		schema.CatalogAuthor.DateBirth, schema.CatalogAuthor.DateDeath,
		schema.CatalogAuthor.Photo, schema.CatalogAuthor.Info,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.Name, schema.CatalogAuthor.Name,
	)

	rows, err := repository.db.Query(context, query, prefix)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors_by_prefix")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.NameEn, &a.DateBirth, &a.DateDeath, &a.Photo, &a.Info); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, nil
}

func (repository *PostgresRepository) Search(context context.Context, value string) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s ILIKE '%%' || $1 || '%%'
		ORDER BY %s ASC
	`,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.Name, schema.CatalogAuthor.NameEn,
		schema.CatalogAuthor.DateBirth, schema.CatalogAuthor.DateDeath,
		schema.CatalogAuthor.Photo, schema.CatalogAuthor.Info,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.Name, schema.CatalogAuthor.Name,
	)

	rows, err := repository.db.Query(context, query, value)
	if err != nil {
		return nil, dberr.Wrap(err, "search_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.NameEn, &a.DateBirth, &a.DateDeath, &a.Photo, &a.Info); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.Name, schema.CatalogAuthor.NameEn,
		schema.CatalogAuthor.DateBirth, schema.CatalogAuthor.DateDeath,
		schema.CatalogAuthor.Photo, schema.CatalogAuthor.Info,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.ID,
	)
	a := &Author{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.NameEn, &a.DateBirth, &a.DateDeath, &a.Photo, &a.Info,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}

	return a, nil
}

func (repository *PostgresRepository) ListNames(context context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, schema.CatalogAuthor.Name, schema.CatalogAuthor.Table)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_names")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dberr.Wrap(err, "scan_author_name")
		}
		names = append(names, name)
	}

	return names, nil
}

func (repository *PostgresRepository) ListGenreTags(context context.Context, authorID int) ([]GenreTag, error) {
	query := fmt.Sprintf(`
		SELECT g.%s, g.%s
		FROM %s aa
		JOIN %s ag ON ag.%s = aa.%s
		JOIN %s g ON g.%s = ag.%s
		WHERE aa.%s = $1
		ORDER BY aa.%s ASC, g.%s ASC
	`,
		schema.CatalogGenre.ID, schema.CatalogGenre.Name,
		schema.CatalogArtworkAuthor.Table,
		schema.CatalogArtworkGenre.Table, schema.CatalogArtworkGenre.ArtworkID, schema.CatalogArtworkAuthor.ArtworkID,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID, schema.CatalogArtworkGenre.GenreID,
		schema.CatalogArtworkAuthor.AuthorID,
		schema.CatalogArtworkAuthor.ArtworkID, schema.CatalogGenre.Name,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_genre_tags")
	}
	defer rows.Close()

	var tags []GenreTag
	for rows.Next() {
		var tag GenreTag
		if err := rows.Scan(&tag.GenreID, &tag.GenreName); err != nil {
			return nil, dberr.Wrap(err, "scan_genre_tag")
		}
		tags = append(tags, tag)
	}

	return tags, nil
}
