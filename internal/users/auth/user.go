// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (User, Session) and logic for
authentication, authorization, and account lifecycle. Registration also
provisions the account's reader preferences so that the settings row and
the account row never exist without each other.
*/
package auth

import (
	"time"

	"github.com/taibuivan/chitalka/internal/platform/sec"
)

// # Domain Entities

// User represents a registered reader. The email address is the login
// identifier; there is no separate username.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Patronymic   string       `json:"patronymic,omitempty"`
	Role         sec.UserRole `json:"role"`
	IsStaff      bool         `json:"is_staff"`
	IsActive     bool         `json:"is_active"`
	IsSuspended  bool         `json:"is_suspended"`
	DateJoined   time.Time    `json:"date_joined"`
}

// Session represents an active refresh-token session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldPatronymic  = "patronymic"
	FieldToken       = "token"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
	FieldMessage     = "message"
)
