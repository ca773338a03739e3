// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/chitalka/internal/users/settings"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {
	// FindByID returns the account with the given id.
	FindByID(context context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email.
	FindByEmail(context context.Context, email string) (*User, error)

	// CreateWithSettings persists a brand-new account together with its
	// reader preferences in a single transaction. Neither row exists if
	// either insert fails.
	CreateWithSettings(context context.Context, user *User, prefs *settings.Settings) error

	// UpdatePassword replaces only the user's password hash.
	UpdatePassword(context context.Context, userID, newHash string) error
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh-token sessions.
type SessionRepository interface {
	// Create persists a new tracking session for an authenticated login.
	Create(context context.Context, session *Session) error

	// FindByTokenHash returns the active session matching the given token hash.
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// Revoke marks a specific session as permanently invalidated.
	Revoke(context context.Context, sessionID string) error

	// RevokeAll revokes every active session belonging to the userID.
	RevokeAll(context context.Context, userID string) error

	// DeleteExpired physically removes sessions whose ExpiresAt is in the past.
	DeleteExpired(context context.Context) error
}

// # Volatile Data Access

// ResetTokenRepository defines the contract for storing volatile password
// reset tokens.
type ResetTokenRepository interface {
	// Set stores a reset token associated with a userID for a limited duration.
	Set(context context.Context, token string, userID string, ttl time.Duration) error

	// Get retrieves the userID associated with a given reset token.
	Get(context context.Context, token string) (string, error)

	// Delete removes a reset token after successful use.
	Delete(context context.Context, token string) error
}
