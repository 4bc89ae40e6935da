package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqshya/sports-facility-booking/internal/model"
)

// These tests run the repo in its degraded in-process mode; the Redis
// path is the same key/value protocol behind a client call.

func TestSessionStoreAndClear(t *testing.T) {
	repo := NewSessionRepo(nil, time.Minute)
	ctx := context.Background()

	_, ok, err := repo.Current(ctx, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	acc := model.Account{ID: "1", Email: "user@test.com", Name: "Test User", Role: model.RoleUser}
	require.NoError(t, repo.Store(ctx, acc))

	got, ok, err := repo.Current(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, acc, got)

	require.NoError(t, repo.Clear(ctx, "1"))
	_, ok, err = repo.Current(ctx, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an absent session is harmless.
	require.NoError(t, repo.Clear(ctx, "1"))
}

func TestSessionStoreOverwrites(t *testing.T) {
	repo := NewSessionRepo(nil, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, model.Account{ID: "1", Name: "Old"}))
	require.NoError(t, repo.Store(ctx, model.Account{ID: "1", Name: "New"}))

	got, ok, err := repo.Current(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "New", got.Name)
}

func TestProfileImage(t *testing.T) {
	repo := NewSessionRepo(nil, time.Minute)
	ctx := context.Background()

	_, ok, err := repo.ProfileImage(ctx, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, repo.StoreProfileImage(ctx, "1", ""), ErrValidation)

	const uri = "data:image/png;base64,aGVsbG8="
	require.NoError(t, repo.StoreProfileImage(ctx, "1", uri))

	img, ok, err := repo.ProfileImage(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uri, img)

	// Image keys are independent of session keys.
	require.NoError(t, repo.Clear(ctx, "1"))
	_, ok, err = repo.ProfileImage(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)
}
