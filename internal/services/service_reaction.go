package services

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/models"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
)

type ReactionService struct {
	Repo repository.PostRepository
	Now  func() time.Time
}

func NewReactionService(repo repository.PostRepository) *ReactionService {
	return &ReactionService{Repo: repo, Now: time.Now}
}

// Toggle flips the (clientID, reactionType) reaction on the post. Repeated
// calls alternate between added and removed.
func (s *ReactionService) Toggle(ctx context.Context, req dto.CreateReactionReq, clientID string) (models.ReactionAction, int, error) {
	id, err := ParsePostID(req.PostID)
	if err != nil {
		return "", 0, err
	}

	reaction := models.Reaction{
		UserID:    clientID,
		Type:      models.ReactionType(req.ReactionType),
		CreatedAt: stamp(s.Now),
	}
	action, count, err := s.Repo.ToggleReaction(ctx, id, reaction)
	if err != nil {
		return "", 0, err
	}
	log.Debugw("reaction toggled", "post", id.Hex(), "action", action, "count", count)
	return action, count, nil
}
