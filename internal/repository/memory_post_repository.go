package repository

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Mayuushi/freedom-wall-music/internal/cursor"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
)

// MemoryPostRepository keeps posts in process. Used by tests and by
// `wall serve --store memory`.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts map[bson.ObjectID]*models.Post
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{posts: make(map[bson.ObjectID]*models.Post)}
}

func (r *MemoryPostRepository) Create(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID.IsZero() {
		post.ID = bson.NewObjectID()
	}
	stored := clonePost(post)
	r.posts[post.ID] = stored
	return nil
}

func (r *MemoryPostRepository) List(ctx context.Context, limit int64, after *cursor.Cursor) ([]models.PostSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.PostSummary, 0, len(r.posts))
	for _, p := range r.posts {
		if after != nil && !after.Before(p.CreatedAt, p.ID) {
			continue
		}
		all = append(all, p.Summary())
	}
	sort.Slice(all, func(i, j int) bool {
		ti, tj := all[i].CreatedAt.UnixMilli(), all[j].CreatedAt.UnixMilli()
		if ti != tj {
			return ti > tj
		}
		return bytes.Compare(all[i].ID[:], all[j].ID[:]) > 0
	})
	if limit > 0 && int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryPostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	out := clonePost(p)
	out.Normalize()
	return out, nil
}

func (r *MemoryPostRepository) FindComments(ctx context.Context, id bson.ObjectID) ([]models.Comment, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func (r *MemoryPostRepository) AppendComment(ctx context.Context, id bson.ObjectID, comment models.Comment) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return 0, ErrPostNotFound
	}
	p.Comments = append(p.Comments, comment)
	return len(p.Comments), nil
}

func (r *MemoryPostRepository) ToggleReaction(ctx context.Context, id bson.ObjectID, reaction models.Reaction) (models.ReactionAction, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return "", 0, ErrPostNotFound
	}
	for i, existing := range p.Reactions {
		if existing.UserID == reaction.UserID && existing.Type == reaction.Type {
			p.Reactions = append(p.Reactions[:i:i], p.Reactions[i+1:]...)
			return models.ReactionRemoved, len(p.Reactions), nil
		}
	}
	p.Reactions = append(p.Reactions, reaction)
	return models.ReactionAdded, len(p.Reactions), nil
}

func clonePost(p *models.Post) *models.Post {
	out := *p
	out.Comments = append([]models.Comment(nil), p.Comments...)
	out.Reactions = append([]models.Reaction(nil), p.Reactions...)
	if p.YouTube != nil {
		yt := *p.YouTube
		out.YouTube = &yt
	}
	return &out
}
