package repository

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Mayuushi/freedom-wall-music/internal/cursor"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
)

// runRepositorySuite checks the behaviour every PostRepository must share.
func runRepositorySuite(t *testing.T, newRepo func(t *testing.T) PostRepository) {
	ctx := context.Background()

	t.Run("Create and FindByID", func(t *testing.T) {
		repo := newRepo(t)
		p := newPost(time.Now(), "hello")
		require.NoError(t, repo.Create(ctx, p))
		require.False(t, p.ID.IsZero())

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello", got.Message)
		assert.Equal(t, p.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())
		assert.NotNil(t, got.Comments)
		assert.NotNil(t, got.Reactions)
	})

	t.Run("FindByID missing", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.FindByID(ctx, bson.NewObjectID())
		assert.ErrorIs(t, err, ErrPostNotFound)
		_, err = repo.FindComments(ctx, bson.NewObjectID())
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("List pages through ties exactly once", func(t *testing.T) {
		repo := newRepo(t)
		base := time.UnixMilli(1_700_000_000_000).UTC()
		// three posts share each millisecond
		for i := 0; i < 10; i++ {
			p := newPost(base.Add(time.Duration(i/3)*time.Millisecond), "m")
			require.NoError(t, repo.Create(ctx, p))
		}

		var seen []models.PostSummary
		var after *cursor.Cursor
		for page := 0; page < 10; page++ {
			items, err := repo.List(ctx, 4, after)
			require.NoError(t, err)
			require.LessOrEqual(t, len(items), 4)
			seen = append(seen, items...)
			if len(items) < 4 {
				break
			}
			last := items[len(items)-1]
			c := cursor.New(last.CreatedAt, last.ID)
			after = &c
		}

		require.Len(t, seen, 10)
		ids := map[bson.ObjectID]bool{}
		for i, s := range seen {
			assert.False(t, ids[s.ID], "duplicate %s", s.ID.Hex())
			ids[s.ID] = true
			if i == 0 {
				continue
			}
			prev := seen[i-1]
			pt, st := prev.CreatedAt.UnixMilli(), s.CreatedAt.UnixMilli()
			assert.True(t, pt > st || (pt == st && bytes.Compare(prev.ID[:], s.ID[:]) > 0),
				"order broken at %d", i)
		}
	})

	t.Run("List projects counts", func(t *testing.T) {
		repo := newRepo(t)
		p := newPost(time.Now(), "counted")
		require.NoError(t, repo.Create(ctx, p))
		_, err := repo.AppendComment(ctx, p.ID, newComment("c1"))
		require.NoError(t, err)
		_, _, err = repo.ToggleReaction(ctx, p.ID, models.Reaction{UserID: "u", Type: models.ReactionHeart})
		require.NoError(t, err)

		items, err := repo.List(ctx, 10, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].CommentCount)
		assert.Equal(t, 1, items[0].ReactionCount)
	})

	t.Run("AppendComment", func(t *testing.T) {
		repo := newRepo(t)
		p := newPost(time.Now(), "post")
		other := newPost(time.Now(), "other")
		require.NoError(t, repo.Create(ctx, p))
		require.NoError(t, repo.Create(ctx, other))

		n, err := repo.AppendComment(ctx, p.ID, newComment("first"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		n, err = repo.AppendComment(ctx, p.ID, newComment("second"))
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		comments, err := repo.FindComments(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "first", comments[0].Comment)
		assert.Equal(t, "second", comments[1].Comment)

		_, err = repo.AppendComment(ctx, bson.NewObjectID(), newComment("lost"))
		assert.ErrorIs(t, err, ErrPostNotFound)

		untouched, err := repo.FindComments(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, untouched)
	})

	t.Run("ToggleReaction alternates", func(t *testing.T) {
		repo := newRepo(t)
		p := newPost(time.Now(), "react")
		require.NoError(t, repo.Create(ctx, p))
		_, _, err := repo.ToggleReaction(ctx, p.ID, models.Reaction{UserID: "someone", Type: models.ReactionHeart})
		require.NoError(t, err)

		r := models.Reaction{UserID: "me", Type: models.ReactionHeart, CreatedAt: time.Now()}
		action, n, err := repo.ToggleReaction(ctx, p.ID, r)
		require.NoError(t, err)
		assert.Equal(t, models.ReactionAdded, action)
		assert.Equal(t, 2, n)

		action, n, err = repo.ToggleReaction(ctx, p.ID, r)
		require.NoError(t, err)
		assert.Equal(t, models.ReactionRemoved, action)
		assert.Equal(t, 1, n)

		_, _, err = repo.ToggleReaction(ctx, bson.NewObjectID(), r)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("ToggleReaction concurrent identities", func(t *testing.T) {
		repo := newRepo(t)
		p := newPost(time.Now(), "busy")
		require.NoError(t, repo.Create(ctx, p))

		var wg sync.WaitGroup
		for _, uid := range []string{"a", "b", "c", "d"} {
			wg.Add(1)
			go func(uid string) {
				defer wg.Done()
				_, _, err := repo.ToggleReaction(ctx, p.ID, models.Reaction{UserID: uid, Type: models.ReactionHeart})
				assert.NoError(t, err)
			}(uid)
		}
		wg.Wait()

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, got.Reactions, 4)
	})
}

func newPost(at time.Time, msg string) *models.Post {
	return &models.Post{
		Name:      "tester",
		Message:   msg,
		Avatar:    models.DefaultAvatar,
		CreatedAt: at.UTC().Truncate(time.Millisecond),
	}
}

func newComment(text string) models.Comment {
	return models.Comment{
		ID:        bson.NewObjectID(),
		Name:      "tester",
		Comment:   text,
		Avatar:    models.DefaultAvatar,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}
