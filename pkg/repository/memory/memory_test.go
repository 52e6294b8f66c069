package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/auth"
	"github.com/kaytee124/jobserverapi/pkg/cv"
	"github.com/kaytee124/jobserverapi/pkg/job"
)

func TestJobRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	older, err := repo.Insert(ctx, job.NewJob(map[string]any{"title": "a", "postedBy": "x@y.z"}, base))
	require.NoError(t, err)
	newer, err := repo.Insert(ctx, job.NewJob(map[string]any{"title": "b", "postedBy": "x@y.z"}, base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, job.NewJob(map[string]any{"title": "c", "postedBy": "other@y.z"}, base.Add(2*time.Hour)))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Title())
	assert.Equal(t, "a", all[2].Title())

	mine, err := repo.ListByPoster(ctx, "x@y.z")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, older, mine[0].ID)
	assert.Equal(t, newer, mine[1].ID)

	none, err := repo.ListByPoster(ctx, "nobody@y.z")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestJobRepository_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository()
	id, err := repo.Insert(ctx, job.NewJob(map[string]any{"title": "Go dev"}, time.Now()))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Go dev", got.Title())

	_, err = repo.GetByID(ctx, "not-an-id")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	n, err := repo.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	_, err := repo.Create(ctx, auth.User{Email: "a@b.c"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, auth.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = repo.GetByEmail(ctx, "missing@b.c")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestCVRepository_RejectsMalformedJobID(t *testing.T) {
	repo := NewCVRepository()
	_, err := repo.Insert(context.Background(), cv.Submission{JobID: "nope", Email: "a@b.c"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Empty(t, repo.Submissions())
}
