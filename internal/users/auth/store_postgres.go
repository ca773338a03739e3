// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/chitalka/internal/platform/database/schema"
	"github.com/taibuivan/chitalka/internal/platform/dberr"
	"github.com/taibuivan/chitalka/internal/users/settings"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func userColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Email, t.Password, t.FirstName, t.LastName, t.Patronymic,
		t.Role, t.IsStaff, t.IsActive, t.IsSuspended, t.DateJoined,
	)
}

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Patronymic, &user.Role, &user.IsStaff, &user.IsActive, &user.IsSuspended,
		&user.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns(), schema.UserAccount.Table, schema.UserAccount.ID,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}

	return user, nil
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns(), schema.UserAccount.Table, schema.UserAccount.Email,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_email")
	}

	return user, nil
}

/*
CreateWithSettings persists the account row and its reader preferences in
one transaction. Rolling back on any failure keeps the 1:1 invariant
between accounts and settings.
*/
func (repository *PostgresUserRepository) CreateWithSettings(context context.Context, user *User, prefs *settings.Settings) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "create_user_begin")
	}
	defer transaction.Rollback(context)

	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now()
	}

	accountQuery := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, schema.UserAccount.Table, userColumns())

	_, err = transaction.Exec(context, accountQuery,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Patronymic, user.Role, user.IsStaff, user.IsActive, user.IsSuspended,
		user.DateJoined,
	)
	if err != nil {
		return dberr.Wrap(err, "create_user_account")
	}

	settingsQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
	`,
		schema.UserSettings.Table,
		schema.UserSettings.UserID, schema.UserSettings.Percent, schema.UserSettings.Size,
	)

	_, err = transaction.Exec(context, settingsQuery, prefs.UserID, prefs.Percent, prefs.Size)
	if err != nil {
		return dberr.Wrap(err, "create_user_settings")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "create_user_commit")
	}

	return nil
}

func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.Password, schema.UserAccount.ID,
	)

	tag, err := repository.pool.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_user_password")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// # Session Repository

// PostgresSessionRepository implements the SessionRepository interface using pgx.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PostgreSQL implementation of the SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	t := schema.UserSession
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`,
		t.Table,
		t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress, t.ExpiresAt, t.IsRevoked, t.CreatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		session.ID, session.UserID, session.TokenHash,
		session.UserAgent, session.IPAddress, session.ExpiresAt, session.IsRevoked,
	)
	if err != nil {
		return dberr.Wrap(err, "create_session")
	}

	return nil
}

// FindByTokenHash only returns live sessions: revoked and expired rows are
// filtered out at the query level.
func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	t := schema.UserSession
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > NOW()
	`,
		t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress, t.ExpiresAt, t.IsRevoked, t.CreatedAt,
		t.Table,
		t.TokenHash, t.IsRevoked, t.ExpiresAt,
	)

	session := &Session{}
	err := repository.pool.QueryRow(context, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash, &session.UserAgent,
		&session.IPAddress, &session.ExpiresAt, &session.IsRevoked, &session.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_session_by_token")
	}

	return session, nil
}

func (repository *PostgresSessionRepository) Revoke(context context.Context, sessionID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.UserSession.Table, schema.UserSession.IsRevoked, schema.UserSession.ID,
	)

	_, err := repository.pool.Exec(context, query, sessionID)
	if err != nil {
		return dberr.Wrap(err, "revoke_session")
	}

	return nil
}

func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.UserSession.Table, schema.UserSession.IsRevoked, schema.UserSession.UserID,
	)

	_, err := repository.pool.Exec(context, query, userID)
	if err != nil {
		return dberr.Wrap(err, "revoke_all_sessions")
	}

	return nil
}

func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s < NOW()`,
		schema.UserSession.Table, schema.UserSession.ExpiresAt,
	)

	_, err := repository.pool.Exec(context, query)
	if err != nil {
		return dberr.Wrap(err, "delete_expired_sessions")
	}

	return nil
}
