// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

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

func (repository *PostgresRepository) GetByUserID(context context.Context, userID string) (*Settings, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UserSettings.UserID, schema.UserSettings.Percent, schema.UserSettings.Size,
		schema.UserSettings.Table, schema.UserSettings.UserID,
	)

	settings := &Settings{}
	err := repository.db.QueryRow(context, query, userID).Scan(
		&settings.UserID, &settings.Percent, &settings.Size,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_settings")
	}

	return settings, nil
}

func (repository *PostgresRepository) Update(context context.Context, settings *Settings) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1
	`,
		schema.UserSettings.Table,
		schema.UserSettings.Percent, schema.UserSettings.Size,
		schema.UserSettings.UserID,
	)

	tag, err := repository.db.Exec(context, query, settings.UserID, settings.Percent, settings.Size)
	if err != nil {
		return dberr.Wrap(err, "update_settings")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
