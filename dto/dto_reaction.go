package dto

import (
	"strings"

	"github.com/Mayuushi/freedom-wall-music/internal/models"
)

type CreateReactionReq struct {
	PostID       string `json:"postId"       validate:"required"  example:"67c2fd37a1b2c3d4e5f60718"`
	ReactionType string `json:"reactionType" validate:"reaction"  example:"heart"`
}

// Trim also applies the default reaction kind.
func (r *CreateReactionReq) Trim() {
	r.PostID = strings.TrimSpace(r.PostID)
	r.ReactionType = strings.TrimSpace(r.ReactionType)
	if r.ReactionType == "" {
		r.ReactionType = string(models.DefaultReactionType)
	}
}

type ToggleReactionResp struct {
	Success       bool                  `json:"success"`
	Action        models.ReactionAction `json:"action"        example:"added"`
	ReactionCount int                   `json:"reactionCount" example:"3"`
}
