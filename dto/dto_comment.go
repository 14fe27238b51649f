package dto

import (
	"strings"

	"github.com/Mayuushi/freedom-wall-music/internal/models"
)

type CreateCommentReq struct {
	PostID  string `json:"postId"  validate:"required"          example:"67c2fd37a1b2c3d4e5f60718"`
	Name    string `json:"name"    validate:"required,max=40"   example:"Mika"`
	Comment string `json:"comment" validate:"required,max=500"  example:"same here"`
	Avatar  string `json:"avatar"                               example:"ghost"`
}

func (r *CreateCommentReq) Trim() {
	r.PostID = strings.TrimSpace(r.PostID)
	r.Name = strings.TrimSpace(r.Name)
	r.Comment = strings.TrimSpace(r.Comment)
	r.Avatar = strings.TrimSpace(r.Avatar)
}

type CreateCommentResp struct {
	Success      bool           `json:"success"`
	Comment      models.Comment `json:"comment"`
	CommentCount int            `json:"commentCount"`
}

type ListCommentsResp struct {
	Comments []models.Comment `json:"comments"`
}
