package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
)

func TestCommentServiceCreate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryPostRepository()
	post, err := NewPostService(repo).Create(ctx, dto.CreatePostReq{Name: "n", Message: "m"})
	require.NoError(t, err)

	svc := NewCommentService(repo)
	svc.Now = func() time.Time { return time.UnixMilli(1_700_000_000_123) }

	c, n, err := svc.Create(ctx, dto.CreateCommentReq{PostID: post.ID.Hex(), Name: "Mika", Comment: "nice", Avatar: "unknown"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, c.ID.IsZero())
	assert.Equal(t, models.DefaultAvatar, c.Avatar)
	assert.Equal(t, int64(1_700_000_000_123), c.CreatedAt.UnixMilli())

	_, n, err = svc.Create(ctx, dto.CreateCommentReq{PostID: post.ID.Hex(), Name: "Lee", Comment: "agreed", Avatar: "robot"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	comments, err := svc.List(ctx, post.ID.Hex())
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "robot", comments[1].Avatar)
}

func TestCommentServiceMissingPost(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryPostRepository()
	other, err := NewPostService(repo).Create(ctx, dto.CreatePostReq{Name: "n", Message: "m"})
	require.NoError(t, err)
	svc := NewCommentService(repo)

	_, _, err = svc.Create(ctx, dto.CreateCommentReq{PostID: bson.NewObjectID().Hex(), Name: "a", Comment: "b"})
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	_, _, err = svc.Create(ctx, dto.CreateCommentReq{PostID: "xyz", Name: "a", Comment: "b"})
	assert.ErrorIs(t, err, ErrInvalidPostID)

	comments, err := svc.List(ctx, other.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, comments)
}
