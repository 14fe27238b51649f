package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id"`
	Name      string        `json:"name"      bson:"name"`
	Comment   string        `json:"comment"   bson:"comment"`
	Avatar    string        `json:"avatar"    bson:"avatar"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
