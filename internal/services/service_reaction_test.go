package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
)

func TestReactionToggleTwiceRestoresCount(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryPostRepository()
	post, err := NewPostService(repo).Create(ctx, dto.CreatePostReq{Name: "n", Message: "m"})
	require.NoError(t, err)
	svc := NewReactionService(repo)

	req := dto.CreateReactionReq{PostID: post.ID.Hex(), ReactionType: "heart"}
	_, before, err := svc.Toggle(ctx, req, "other-client")
	require.NoError(t, err)

	action, n, err := svc.Toggle(ctx, req, "me")
	require.NoError(t, err)
	assert.Equal(t, models.ReactionAdded, action)
	assert.Equal(t, before+1, n)

	action, n, err = svc.Toggle(ctx, req, "me")
	require.NoError(t, err)
	assert.Equal(t, models.ReactionRemoved, action)
	assert.Equal(t, before, n)
}

func TestReactionToggleErrors(t *testing.T) {
	svc := NewReactionService(repository.NewMemoryPostRepository())

	_, _, err := svc.Toggle(context.Background(), dto.CreateReactionReq{PostID: "bad", ReactionType: "heart"}, "me")
	assert.ErrorIs(t, err, ErrInvalidPostID)

	_, _, err = svc.Toggle(context.Background(), dto.CreateReactionReq{PostID: bson.NewObjectID().Hex(), ReactionType: "heart"}, "me")
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}
