package models

import "time"

type ReactionType string

const ReactionHeart ReactionType = "heart"

// DefaultReactionType is used when a request names no reaction.
const DefaultReactionType = ReactionHeart

var ReactionTypes = []ReactionType{ReactionHeart}

func IsReactionType(s string) bool {
	for _, t := range ReactionTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

type Reaction struct {
	UserID    string       `json:"userId"    bson:"userId"`
	Type      ReactionType `json:"type"      bson:"type"`
	CreatedAt time.Time    `json:"createdAt" bson:"createdAt"`
}

type ReactionAction string

const (
	ReactionAdded   ReactionAction = "added"
	ReactionRemoved ReactionAction = "removed"
)
