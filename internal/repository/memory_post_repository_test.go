package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPostRepository(t *testing.T) {
	runRepositorySuite(t, func(t *testing.T) PostRepository {
		return NewMemoryPostRepository()
	})
}

func TestMemoryPostRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPostRepository()
	p := newPost(time.Now(), "original")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	got.Message = "mutated"
	got.Comments = append(got.Comments, newComment("sneaky"))

	again, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Message)
	assert.Empty(t, again.Comments)
}

func TestMemoryPostRepositoryDefaultsLegacyFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPostRepository()
	p := newPost(time.Now(), "legacy")
	p.Avatar = ""
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "default", got.Avatar)
	assert.NotNil(t, got.Comments)
	assert.NotNil(t, got.Reactions)
}
