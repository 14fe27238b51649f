package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrInvalidPostID = errors.New("invalid post ID format")

// ParsePostID accepts the 24-hex form of a post ObjectID.
func ParsePostID(hex string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, ErrInvalidPostID
	}
	return oid, nil
}
