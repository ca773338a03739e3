// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/chitalka/internal/catalog/author"
	"github.com/taibuivan/chitalka/internal/platform/database/schema"
	"github.com/taibuivan/chitalka/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*BookState, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.LibraryBookState.ID, schema.LibraryBookState.UserID, schema.LibraryBookState.ArtworkID,
		schema.LibraryBookState.Epubcfi, schema.LibraryBookState.Percent, schema.LibraryBookState.Show,
		schema.LibraryBookState.DateUpdate,
		schema.LibraryBookState.Table, schema.LibraryBookState.ID,
	)

	state := &BookState{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&state.ID, &state.UserID, &state.ArtworkID,
		&state.Epubcfi, &state.Percent, &state.Show, &state.DateUpdate,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book_state")
	}

	return state, nil
}

func (repository *PostgresRepository) GetByUserAndArtwork(context context.Context, userID string, artworkID int) (*BookState, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.LibraryBookState.ID, schema.LibraryBookState.UserID, schema.LibraryBookState.ArtworkID,
		schema.LibraryBookState.Epubcfi, schema.LibraryBookState.Percent, schema.LibraryBookState.Show,
		schema.LibraryBookState.DateUpdate,
		schema.LibraryBookState.Table, schema.LibraryBookState.UserID, schema.LibraryBookState.ArtworkID,
	)

	state := &BookState{}
	err := repository.db.QueryRow(context, query, userID, artworkID).Scan(
		&state.ID, &state.UserID, &state.ArtworkID,
		&state.Epubcfi, &state.Percent, &state.Show, &state.DateUpdate,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book_state_by_artwork")
	}

	return state, nil
}

func (repository *PostgresRepository) Create(context context.Context, state *BookState) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		schema.LibraryBookState.Table,
		schema.LibraryBookState.UserID, schema.LibraryBookState.ArtworkID, schema.LibraryBookState.Epubcfi,
		schema.LibraryBookState.Percent, schema.LibraryBookState.Show, schema.LibraryBookState.DateUpdate,
		schema.LibraryBookState.ID, schema.LibraryBookState.DateUpdate,
	)

	err := repository.db.QueryRow(context, query,
		state.UserID, state.ArtworkID, state.Epubcfi, state.Percent, state.Show,
	).Scan(&state.ID, &state.DateUpdate)
	if err != nil {
		return dberr.Wrap(err, "create_book_state")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, id int, epubcfi string, percent int, show bool) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
	`,
		schema.LibraryBookState.Table,
		schema.LibraryBookState.Epubcfi, schema.LibraryBookState.Percent, schema.LibraryBookState.Show,
		schema.LibraryBookState.DateUpdate,
		schema.LibraryBookState.ID,
	)

	tag, err := repository.db.Exec(context, query, id, epubcfi, percent, show)
	if err != nil {
		return dberr.Wrap(err, "update_book_state")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) SetShow(context context.Context, id int, show bool) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
	`,
		schema.LibraryBookState.Table,
		schema.LibraryBookState.Show, schema.LibraryBookState.DateUpdate,
		schema.LibraryBookState.ID,
	)

	tag, err := repository.db.Exec(context, query, id, show)
	if err != nil {
		return dberr.Wrap(err, "set_book_state_show")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) ListVisible(context context.Context, userID string) ([]ListItem, error) {
	query := fmt.Sprintf(`
		SELECT bs.%s, bs.%s, a.%s, a.%s, bs.%s, bs.%s, bs.%s
		FROM %s bs
		JOIN %s a ON a.%s = bs.%s
		WHERE bs.%s = $1 AND bs.%s = TRUE
		ORDER BY bs.%s DESC
	`,
		schema.LibraryBookState.ID, schema.LibraryBookState.ArtworkID,
		schema.CatalogArtwork.Name, schema.CatalogArtwork.File,
		schema.LibraryBookState.Epubcfi, schema.LibraryBookState.Percent, schema.LibraryBookState.DateUpdate,
		schema.LibraryBookState.Table,
		schema.CatalogArtwork.Table, schema.CatalogArtwork.ID, schema.LibraryBookState.ArtworkID,
		schema.LibraryBookState.UserID, schema.LibraryBookState.Show,
		schema.LibraryBookState.DateUpdate,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_states")
	}
	defer rows.Close()

	var items []ListItem
	for rows.Next() {
		var item ListItem
		if err := rows.Scan(
			&item.ID, &item.ArtworkID, &item.Name, &item.File,
			&item.Epubcfi, &item.Percent, &item.DateUpdate,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_book_state_item")
		}
		items = append(items, item)
	}

	return items, nil
}

func (repository *PostgresRepository) ReadPercents(context context.Context, userID string, artworkIDs []int) (map[int]int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1 AND %s = ANY($2)
	`,
		schema.LibraryBookState.ArtworkID, schema.LibraryBookState.Percent,
		schema.LibraryBookState.Table,
		schema.LibraryBookState.UserID, schema.LibraryBookState.ArtworkID,
	)

	rows, err := repository.db.Query(context, query, userID, artworkIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "read_percents")
	}
	defer rows.Close()

	percents := map[int]int{}
	for rows.Next() {
		var artworkID, percent int
		if err := rows.Scan(&artworkID, &percent); err != nil {
			return nil, dberr.Wrap(err, "scan_read_percent")
		}
		percents[artworkID] = percent
	}

	return percents, nil
}

func (repository *PostgresRepository) LastByAuthor(context context.Context, userID string, authorID int) (*author.LastBook, error) {
	query := fmt.Sprintf(`
		SELECT bs.%s, a.%s, bs.%s
		FROM %s bs
		JOIN %s aa ON aa.%s = bs.%s
		JOIN %s a ON a.%s = bs.%s
		WHERE bs.%s = $1 AND aa.%s = $2
		ORDER BY bs.%s DESC
		LIMIT 1
	`,
		schema.LibraryBookState.ArtworkID, schema.CatalogArtwork.Name, schema.LibraryBookState.Percent,
		schema.LibraryBookState.Table,
		schema.CatalogArtworkAuthor.Table, schema.CatalogArtworkAuthor.ArtworkID, schema.LibraryBookState.ArtworkID,
		schema.CatalogArtwork.Table, schema.CatalogArtwork.ID, schema.LibraryBookState.ArtworkID,
		schema.LibraryBookState.UserID, schema.CatalogArtworkAuthor.AuthorID,
		schema.LibraryBookState.DateUpdate,
	)

	last := &author.LastBook{}
	err := repository.db.QueryRow(context, query, userID, authorID).Scan(&last.ID, &last.Name, &last.Percent)
	if err != nil {
		return nil, dberr.Wrap(err, "last_book_by_author")
	}

	return last, nil
}

func (repository *PostgresRepository) BookView(context context.Context, userID string, artworkID int) (*BookView, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, bs.%s, bs.%s
		FROM %s bs
		JOIN %s a ON a.%s = bs.%s
		WHERE bs.%s = $1 AND bs.%s = $2
	`,
		schema.CatalogArtwork.File, schema.LibraryBookState.Epubcfi, schema.LibraryBookState.Percent,
		schema.LibraryBookState.Table,
		schema.CatalogArtwork.Table, schema.CatalogArtwork.ID, schema.LibraryBookState.ArtworkID,
		schema.LibraryBookState.UserID, schema.LibraryBookState.ArtworkID,
	)

	view := &BookView{}
	err := repository.db.QueryRow(context, query, userID, artworkID).Scan(&view.File, &view.Epubcfi, &view.Percent)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book_view")
	}

	return view, nil
}
