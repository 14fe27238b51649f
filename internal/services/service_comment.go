package services

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
)

type CommentService struct {
	Repo repository.PostRepository
	Now  func() time.Time
}

func NewCommentService(repo repository.PostRepository) *CommentService {
	return &CommentService{Repo: repo, Now: time.Now}
}

func (s *CommentService) List(ctx context.Context, postIDHex string) ([]models.Comment, error) {
	id, err := ParsePostID(postIDHex)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindComments(ctx, id)
}

// Create appends a validated comment and returns it with the new total.
func (s *CommentService) Create(ctx context.Context, req dto.CreateCommentReq) (models.Comment, int, error) {
	id, err := ParsePostID(req.PostID)
	if err != nil {
		return models.Comment{}, 0, err
	}

	comment := models.Comment{
		ID:        bson.NewObjectID(),
		Name:      req.Name,
		Comment:   req.Comment,
		Avatar:    models.NormalizeAvatar(req.Avatar),
		CreatedAt: stamp(s.Now),
	}
	count, err := s.Repo.AppendComment(ctx, id, comment)
	if err != nil {
		return models.Comment{}, 0, err
	}
	log.Infow("comment added", "post", id.Hex(), "comment", comment.ID.Hex(), "count", count)
	return comment, count, nil
}
