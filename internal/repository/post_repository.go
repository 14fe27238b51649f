package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Mayuushi/freedom-wall-music/internal/cursor"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
)

var ErrPostNotFound = errors.New("post not found")

// PostRepository is the post document store. Comment append and reaction
// toggle must be atomic with respect to the target post.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	// List returns at most limit summaries ordered by (createdAt, _id)
	// descending, strictly after the cursor position when after is set.
	List(ctx context.Context, limit int64, after *cursor.Cursor) ([]models.PostSummary, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	FindComments(ctx context.Context, id bson.ObjectID) ([]models.Comment, error)
	// AppendComment returns the comment count after the append.
	AppendComment(ctx context.Context, id bson.ObjectID, comment models.Comment) (int, error)
	// ToggleReaction removes the (UserID, Type) reaction if present, adds it
	// otherwise, and returns the reaction count after the change.
	ToggleReaction(ctx context.Context, id bson.ObjectID, reaction models.Reaction) (models.ReactionAction, int, error)
}
