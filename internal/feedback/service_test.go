// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/chitalka/internal/feedback"
	"github.com/taibuivan/chitalka/internal/platform/dberr"
)

type fakeRepository struct {
	requests []*feedback.Feedback
	nextID   int
}

func (f *fakeRepository) Create(_ context.Context, request *feedback.Feedback) error {
	f.nextID++
	request.ID = f.nextID
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeRepository) List(_ context.Context) ([]*feedback.Feedback, error) {
	return f.requests, nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id int, status string) error {
	for _, r := range f.requests {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newService(repo *fakeRepository) *feedback.Service {
	return feedback.NewService(repo, slog.Default())
}

/*
TestCreate verifies the submission path: the text is stripped of markup,
defaults to the NEW status, and empty or oversized texts are rejected.
*/
func TestCreate(t *testing.T) {
	t.Run("sanitizes markup", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newService(repo)

		created, err := service.Create(context.Background(), "user-1",
			`<script>alert("x")</script>The search is <b>broken</b>`)
		require.NoError(t, err)

		assert.Equal(t, "The search is broken", created.Text)
		assert.Equal(t, feedback.StatusNew, created.Status)
		assert.Equal(t, "user-1", created.UserID)
	})

	t.Run("empty after sanitizing", func(t *testing.T) {
		service := newService(&fakeRepository{})

		_, err := service.Create(context.Background(), "user-1", "<script>only markup</script>")
		require.Error(t, err)
	})

	t.Run("too long", func(t *testing.T) {
		service := newService(&fakeRepository{})

		_, err := service.Create(context.Background(), "user-1", strings.Repeat("a", feedback.MaxTextLength+1))
		require.Error(t, err)
	})
}

/*
TestUpdateStatus verifies the workflow transition and status whitelist.
*/
func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	created, err := service.Create(context.Background(), "user-1", "Please add dark mode")
	require.NoError(t, err)

	require.NoError(t, service.UpdateStatus(context.Background(), created.ID, feedback.StatusProcessing))
	assert.Equal(t, feedback.StatusProcessing, repo.requests[0].Status)

	err = service.UpdateStatus(context.Background(), created.ID, "DONE")
	require.Error(t, err)
}
