package dto

import (
	"strings"

	"github.com/Mayuushi/freedom-wall-music/internal/models"
)

type YouTubeReq struct {
	VideoID string `json:"videoId" validate:"min=6,max=20"   example:"dQw4w9WgXcQ"`
	Title   string `json:"title"   validate:"min=1,max=120"  example:"Never Gonna Give You Up"`
	URL     string `json:"url"     validate:"required,url"   example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

// ===== Request =====
type CreatePostReq struct {
	Anonymous bool        `json:"anonymous"`
	Name      string      `json:"name"      validate:"required_if=Anonymous false,max=40" example:"Mika"`
	Recipient string      `json:"recipient" validate:"max=60"                             example:"whoever reads this"`
	Message   string      `json:"message"   validate:"required,max=1000"                  example:"hello wall"`
	Avatar    string      `json:"avatar"                                                  example:"cat"`
	YouTube   *YouTubeReq `json:"youtube,omitempty"`
}

func (r *CreatePostReq) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Recipient = strings.TrimSpace(r.Recipient)
	r.Message = strings.TrimSpace(r.Message)
	r.Avatar = strings.TrimSpace(r.Avatar)
	if r.YouTube != nil {
		r.YouTube.VideoID = strings.TrimSpace(r.YouTube.VideoID)
		r.YouTube.Title = strings.TrimSpace(r.YouTube.Title)
		r.YouTube.URL = strings.TrimSpace(r.YouTube.URL)
	}
}

// ===== Response =====
type PostItemResp struct {
	Item models.Post `json:"item"`
}

type PostDetail struct {
	models.Post
	Reacted bool `json:"reacted"`
}

type PostDetailResp struct {
	Item PostDetail `json:"item"`
}

type ListPostsResp struct {
	Items      []models.PostSummary `json:"items"`
	NextCursor *string              `json:"nextCursor" example:"1740832215123:67c2fd37a1b2c3d4e5f60718"`
}
