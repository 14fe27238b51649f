package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AnonymousName replaces the display name of every anonymous post.
const AnonymousName = "Anonymous"

type YouTubeVideo struct {
	VideoID string `json:"videoId" bson:"videoId"`
	Title   string `json:"title"   bson:"title"`
	URL     string `json:"url"     bson:"url"`
}

type Post struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id,omitempty"`
	Anonymous bool          `json:"anonymous" bson:"anonymous"`
	Name      string        `json:"name"      bson:"name"`
	Recipient string        `json:"recipient" bson:"recipient"`
	Message   string        `json:"message"   bson:"message"`
	Avatar    string        `json:"avatar"    bson:"avatar"`
	YouTube   *YouTubeVideo `json:"youtube"   bson:"youtube"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	Comments  []Comment     `json:"comments"  bson:"comments"`
	Reactions []Reaction    `json:"reactions" bson:"reactions"`
}

// PostSummary is the light feed projection: no comment or reaction bodies,
// only their counts.
type PostSummary struct {
	ID            bson.ObjectID `json:"_id"           bson:"_id"`
	Anonymous     bool          `json:"anonymous"     bson:"anonymous"`
	Name          string        `json:"name"          bson:"name"`
	Recipient     string        `json:"recipient"     bson:"recipient"`
	Message       string        `json:"message"       bson:"message"`
	Avatar        string        `json:"avatar"        bson:"avatar"`
	YouTube       *YouTubeVideo `json:"youtube"       bson:"youtube"`
	CreatedAt     time.Time     `json:"createdAt"     bson:"createdAt"`
	CommentCount  int           `json:"commentCount"  bson:"commentCount"`
	ReactionCount int           `json:"reactionCount" bson:"reactionCount"`
}

// Normalize fills fields that older documents may lack. It never writes back.
func (p *Post) Normalize() {
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
	if p.Reactions == nil {
		p.Reactions = []Reaction{}
	}
	p.Avatar = NormalizeAvatar(p.Avatar)
	for i := range p.Comments {
		p.Comments[i].Avatar = NormalizeAvatar(p.Comments[i].Avatar)
	}
}

func (s *PostSummary) Normalize() {
	s.Avatar = NormalizeAvatar(s.Avatar)
}

// Summary drops comment and reaction bodies.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		ID:            p.ID,
		Anonymous:     p.Anonymous,
		Name:          p.Name,
		Recipient:     p.Recipient,
		Message:       p.Message,
		Avatar:        NormalizeAvatar(p.Avatar),
		YouTube:       p.YouTube,
		CreatedAt:     p.CreatedAt,
		CommentCount:  len(p.Comments),
		ReactionCount: len(p.Reactions),
	}
}

// HasReaction reports whether userID already left a reaction of kind t.
func (p *Post) HasReaction(userID string, t ReactionType) bool {
	for _, r := range p.Reactions {
		if r.UserID == userID && r.Type == t {
			return true
		}
	}
	return false
}
