// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

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

func (repository *PostgresRepository) Create(context context.Context, feedback *Feedback) error {
	t := schema.UserFeedback
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.Text, t.Status, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		feedback.UserID, feedback.Text, feedback.Status,
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_feedback")
	}

	return nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Feedback, error) {
	t := schema.UserFeedback
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		t.ID, t.UserID, t.Text, t.Status, t.CreatedAt,
		t.Table,
		t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_feedback")
	}
	defer rows.Close()

	var requests []*Feedback
	for rows.Next() {
		request := &Feedback{}
		if err := rows.Scan(
			&request.ID, &request.UserID, &request.Text, &request.Status, &request.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_feedback")
		}
		requests = append(requests, request)
	}

	return requests, nil
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id int, status string) error {
	t := schema.UserFeedback
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, t.Table, t.Status, t.ID)

	tag, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "update_feedback_status")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
