// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/internal/platform/apperr"
	"github.com/taibuivan/chitalka/internal/platform/dberr"
	"github.com/taibuivan/chitalka/internal/platform/sec"
	"github.com/taibuivan/chitalka/internal/users/auth"
	"github.com/taibuivan/chitalka/internal/users/settings"
)

type fakeUserRepository struct {
	users map[string]*auth.User // keyed by email
	prefs map[string]*settings.Settings
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users: map[string]*auth.User{},
		prefs: map[string]*settings.Settings{},
	}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepository) CreateWithSettings(_ context.Context, user *auth.User, prefs *settings.Settings) error {
	f.users[user.Email] = user
	f.prefs[user.ID] = prefs
	return nil
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.PasswordHash = newHash
			return nil
		}
	}
	return dberr.ErrNotFound
}

type fakeSessionRepository struct {
	sessions map[string]*auth.Session // keyed by token hash
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]*auth.Session{}}
}

func (f *fakeSessionRepository) Create(_ context.Context, session *auth.Session) error {
	f.sessions[session.TokenHash] = session
	return nil
}

func (f *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := f.sessions[tokenHash]
	if !ok || session.IsRevoked || session.ExpiresAt.Before(time.Now()) {
		return nil, dberr.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessionRepository) Revoke(_ context.Context, sessionID string) error {
	for _, s := range f.sessions {
		if s.ID == sessionID {
			s.IsRevoked = true
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (f *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, s := range f.sessions {
		if s.UserID == userID {
			s.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) DeleteExpired(_ context.Context) error { return nil }

type fakeResetTokenRepository struct {
	tokens map[string]string
}

func newFakeResetTokenRepository() *fakeResetTokenRepository {
	return &fakeResetTokenRepository{tokens: map[string]string{}}
}

func (f *fakeResetTokenRepository) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeResetTokenRepository) Get(_ context.Context, token string) (string, error) {
	if userID, ok := f.tokens[token]; ok {
		return userID, nil
	}
	return "", dberr.ErrNotFound
}

func (f *fakeResetTokenRepository) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

type testRig struct {
	users    *fakeUserRepository
	sessions *fakeSessionRepository
	resets   *fakeResetTokenRepository
	service  *auth.Service
}

func newTestRig() *testRig {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	resets := newFakeResetTokenRepository()
	return &testRig{
		users:    users,
		sessions: sessions,
		resets:   resets,
		service:  auth.NewService(users, sessions, resets, fakeTokenProvider{}),
	}
}

func registerInput() auth.RegisterInput {
	return auth.RegisterInput{
		Email:     "reader@example.com",
		Password:  "correct-horse",
		FirstName: "Lev",
		LastName:  "Tolstoy",
	}
}

/*
TestRegister verifies the enrollment invariants: default reader preferences
are provisioned with the account, the member role is assigned, and a
duplicate email is rejected without creating anything.
*/
func TestRegister(t *testing.T) {
	t.Run("provisions settings", func(t *testing.T) {
		rig := newTestRig()

		user, err := rig.service.Register(context.Background(), registerInput())
		require.NoError(t, err)

		prefs, ok := rig.users.prefs[user.ID]
		require.True(t, ok, "settings row must be created with the account")
		assert.Equal(t, settings.DefaultPercent, prefs.Percent)
		assert.Equal(t, settings.DefaultSize, prefs.Size)

		assert.Equal(t, sec.RoleMember, user.Role)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.NotEqual(t, "correct-horse", user.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		rig := newTestRig()

		_, err := rig.service.Register(context.Background(), registerInput())
		require.NoError(t, err)

		_, err = rig.service.Register(context.Background(), registerInput())
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
		assert.Len(t, rig.users.users, 1)
	})
}

/*
TestLogin verifies credential checks and the generic rejection message.
*/
func TestLogin(t *testing.T) {
	rig := newTestRig()
	_, err := rig.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		session, err := rig.service.Login(context.Background(), auth.LoginInput{
			Email:    "reader@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.Equal(t, "reader@example.com", session.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := rig.service.Login(context.Background(), auth.LoginInput{
			Email:    "reader@example.com",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := rig.service.Login(context.Background(), auth.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})
}

/*
TestRefreshSession verifies refresh token rotation: the old token is
revoked and cannot be replayed.
*/
func TestRefreshSession(t *testing.T) {
	rig := newTestRig()
	_, err := rig.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	session, err := rig.service.Login(context.Background(), auth.LoginInput{
		Email:    "reader@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	rotated, err := rig.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// Replay of the consumed token must fail.
	_, err = rig.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestLogout verifies revocation and its idempotency.
*/
func TestLogout(t *testing.T) {
	rig := newTestRig()
	_, err := rig.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	session, err := rig.service.Login(context.Background(), auth.LoginInput{
		Email:    "reader@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, rig.service.Logout(context.Background(), session.RefreshToken))

	_, err = rig.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.Error(t, err)

	// Logging out twice is fine.
	require.NoError(t, rig.service.Logout(context.Background(), session.RefreshToken))
}

/*
TestPasswordReset verifies the recovery round trip and session cleanup.
*/
func TestPasswordReset(t *testing.T) {
	rig := newTestRig()
	_, err := rig.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	session, err := rig.service.Login(context.Background(), auth.LoginInput{
		Email:    "reader@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	token, err := rig.service.RequestPasswordReset(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, rig.service.ResetPassword(context.Background(), token, "new-password-1"))

	// Old sessions are revoked and the old password no longer works.
	_, err = rig.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.Error(t, err)

	_, err = rig.service.Login(context.Background(), auth.LoginInput{
		Email:    "reader@example.com",
		Password: "correct-horse",
	})
	require.Error(t, err)

	_, err = rig.service.Login(context.Background(), auth.LoginInput{
		Email:    "reader@example.com",
		Password: "new-password-1",
	})
	require.NoError(t, err)

	// Unknown email yields no token and no error.
	token, err = rig.service.RequestPasswordReset(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
}
