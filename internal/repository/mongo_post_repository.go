package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Mayuushi/freedom-wall-music/internal/cursor"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
)

const PostsCollection = "posts"

// toggleAttempts bounds the retries when a concurrent toggle by the same
// identity flips the reaction between the add and remove attempts.
const toggleAttempts = 3

var ErrToggleContention = errors.New("reaction changed concurrently")

type MongoPostRepository struct {
	Col     *mongo.Collection
	Timeout time.Duration
}

func NewMongoPostRepository(db *mongo.Database, timeout time.Duration) *MongoPostRepository {
	return &MongoPostRepository{
		Col:     db.Collection(PostsCollection),
		Timeout: timeout,
	}
}

// sizeOf counts an array field, treating a missing field as empty.
func sizeOf(field string) bson.M {
	return bson.M{"$size": bson.M{"$ifNull": bson.A{"$" + field, bson.A{}}}}
}

// feed payload: post fields plus counts, no comment or reaction bodies
var summaryProjection = bson.D{
	{Key: "anonymous", Value: 1},
	{Key: "name", Value: 1},
	{Key: "recipient", Value: 1},
	{Key: "message", Value: 1},
	{Key: "avatar", Value: 1},
	{Key: "youtube", Value: 1},
	{Key: "createdAt", Value: 1},
	{Key: "commentCount", Value: sizeOf("comments")},
	{Key: "reactionCount", Value: sizeOf("reactions")},
}

type countsDoc struct {
	CommentCount  int `bson:"commentCount"`
	ReactionCount int `bson:"reactionCount"`
}

func (r *MongoPostRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.Timeout)
}

func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if post.ID.IsZero() {
		post.ID = bson.NewObjectID()
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	if post.Reactions == nil {
		post.Reactions = []models.Reaction{}
	}
	if _, err := r.Col.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *MongoPostRepository) List(ctx context.Context, limit int64, after *cursor.Cursor) ([]models.PostSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if after != nil {
		filter = after.Filter()
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit).
		SetProjection(summaryProjection)

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	items := []models.PostSummary{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	for i := range items {
		items[i].Normalize()
	}
	return items, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var p models.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	p.Normalize()
	return &p, nil
}

func (r *MongoPostRepository) FindComments(ctx context.Context, id bson.ObjectID) ([]models.Comment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc struct {
		Comments []models.Comment `bson:"comments"`
	}
	opts := options.FindOne().SetProjection(bson.M{"comments": 1})
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find comments: %w", err)
	}
	if doc.Comments == nil {
		doc.Comments = []models.Comment{}
	}
	for i := range doc.Comments {
		doc.Comments[i].Avatar = models.NormalizeAvatar(doc.Comments[i].Avatar)
	}
	return doc.Comments, nil
}

func (r *MongoPostRepository) AppendComment(ctx context.Context, id bson.ObjectID, comment models.Comment) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"commentCount": sizeOf("comments")})

	var out countsDoc
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": comment}},
		opts,
	).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrPostNotFound
		}
		return 0, fmt.Errorf("push comment: %w", err)
	}
	return out.CommentCount, nil
}

// ToggleReaction is a compare-and-swap on the reactions array: the push only
// matches posts without the (userId, type) pair and the pull only matches
// posts with it, so two concurrent toggles from one identity cannot both add.
func (r *MongoPostRepository) ToggleReaction(ctx context.Context, id bson.ObjectID, reaction models.Reaction) (models.ReactionAction, int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	match := bson.M{"userId": reaction.UserID, "type": reaction.Type}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"reactionCount": sizeOf("reactions")})

	for attempt := 0; attempt < toggleAttempts; attempt++ {
		var out countsDoc

		err := r.Col.FindOneAndUpdate(ctx,
			bson.M{"_id": id, "reactions": bson.M{"$not": bson.M{"$elemMatch": match}}},
			bson.M{"$push": bson.M{"reactions": reaction}},
			opts,
		).Decode(&out)
		if err == nil {
			return models.ReactionAdded, out.ReactionCount, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return "", 0, fmt.Errorf("push reaction: %w", err)
		}

		err = r.Col.FindOneAndUpdate(ctx,
			bson.M{"_id": id, "reactions": bson.M{"$elemMatch": match}},
			bson.M{"$pull": bson.M{"reactions": match}},
			opts,
		).Decode(&out)
		if err == nil {
			return models.ReactionRemoved, out.ReactionCount, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return "", 0, fmt.Errorf("pull reaction: %w", err)
		}

		n, err := r.Col.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return "", 0, fmt.Errorf("count post: %w", err)
		}
		if n == 0 {
			return "", 0, ErrPostNotFound
		}
	}
	return "", 0, fmt.Errorf("toggle reaction: %w", ErrToggleContention)
}
