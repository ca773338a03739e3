// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/internal/platform/dberr"
	"github.com/taibuivan/chitalka/internal/users/settings"
)

type fakeRepository struct {
	rows map[string]*settings.Settings
}

func (f *fakeRepository) GetByUserID(_ context.Context, userID string) (*settings.Settings, error) {
	if row, ok := f.rows[userID]; ok {
		copied := *row
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Update(_ context.Context, s *settings.Settings) error {
	if _, ok := f.rows[s.UserID]; !ok {
		return dberr.ErrNotFound
	}
	copied := *s
	f.rows[s.UserID] = &copied
	return nil
}

func intPtr(v int) *int { return &v }

/*
TestUpdate verifies the partial patch: omitted fields keep their stored
value and out-of-range brightness is rejected.
*/
func TestUpdate(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		repo := &fakeRepository{rows: map[string]*settings.Settings{
			"user-1": {UserID: "user-1", Percent: settings.DefaultPercent, Size: settings.DefaultSize},
		}}
		service := settings.NewService(repo)

		updated, err := service.Update(context.Background(), "user-1", settings.UpdateInput{
			Percent: intPtr(80),
		})
		require.NoError(t, err)

		assert.Equal(t, 80, updated.Percent)
		assert.Equal(t, settings.DefaultSize, updated.Size)
	})

	t.Run("invalid percent", func(t *testing.T) {
		repo := &fakeRepository{rows: map[string]*settings.Settings{
			"user-1": {UserID: "user-1", Percent: 50, Size: 16},
		}}
		service := settings.NewService(repo)

		_, err := service.Update(context.Background(), "user-1", settings.UpdateInput{
			Percent: intPtr(101),
		})
		require.Error(t, err)

		// The stored row is untouched.
		current, err := service.Get(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 50, current.Percent)
	})

	t.Run("missing row", func(t *testing.T) {
		service := settings.NewService(&fakeRepository{rows: map[string]*settings.Settings{}})

		_, err := service.Update(context.Background(), "ghost", settings.UpdateInput{Size: intPtr(20)})
		assert.ErrorIs(t, err, dberr.ErrNotFound)
	})
}
