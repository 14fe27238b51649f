package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/cursor"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
)

type PostService struct {
	Repo repository.PostRepository
	Now  func() time.Time
}

func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{Repo: repo, Now: time.Now}
}

// stamp is the server-side creation time at store precision.
func stamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}

// NewPost applies the storage invariants to a validated request: anonymous
// posts carry AnonymousName, recipient is never missing, unknown avatars
// become the default.
func NewPost(req dto.CreatePostReq, createdAt time.Time) *models.Post {
	name := req.Name
	if req.Anonymous {
		name = models.AnonymousName
	}
	var yt *models.YouTubeVideo
	if req.YouTube != nil {
		yt = &models.YouTubeVideo{
			VideoID: req.YouTube.VideoID,
			Title:   req.YouTube.Title,
			URL:     req.YouTube.URL,
		}
	}
	return &models.Post{
		Anonymous: req.Anonymous,
		Name:      name,
		Recipient: req.Recipient,
		Message:   req.Message,
		Avatar:    models.NormalizeAvatar(req.Avatar),
		YouTube:   yt,
		CreatedAt: createdAt,
		Comments:  []models.Comment{},
		Reactions: []models.Reaction{},
	}
}

// Create persists a validated request.
func (s *PostService) Create(ctx context.Context, req dto.CreatePostReq) (*models.Post, error) {
	post := NewPost(req, stamp(s.Now))
	if err := s.Repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	log.Infow("post created", "id", post.ID.Hex(), "anonymous", post.Anonymous)
	return post, nil
}

// List returns one feed page. limit must already be clamped; an empty
// cursorStr means the first page.
func (s *PostService) List(ctx context.Context, limit int64, cursorStr string) (dto.ListPostsResp, error) {
	var after *cursor.Cursor
	if cursorStr != "" {
		c, err := cursor.Decode(cursorStr)
		if err != nil {
			return dto.ListPostsResp{}, err
		}
		after = &c
	}

	items, err := s.Repo.List(ctx, limit, after)
	if err != nil {
		return dto.ListPostsResp{}, fmt.Errorf("list posts: %w", err)
	}

	resp := dto.ListPostsResp{Items: items}
	if int64(len(items)) == limit && len(items) > 0 {
		last := items[len(items)-1]
		next := cursor.Encode(last.CreatedAt, last.ID)
		resp.NextCursor = &next
	}
	return resp, nil
}

// Get returns the full post and whether clientID has reacted to it.
func (s *PostService) Get(ctx context.Context, idHex, clientID string) (dto.PostDetail, error) {
	id, err := ParsePostID(idHex)
	if err != nil {
		return dto.PostDetail{}, err
	}
	post, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return dto.PostDetail{}, err
	}
	return dto.PostDetail{
		Post:    *post,
		Reacted: post.HasReaction(clientID, models.DefaultReactionType),
	}, nil
}
