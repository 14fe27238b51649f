// Package cursor encodes feed positions as opaque "createdAtMillis:hexId" tokens.
package cursor

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const delimiter = ":"

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is the sort key (createdAt, _id) of the last item of a page.
type Cursor struct {
	CreatedAt time.Time
	ID        bson.ObjectID
}

func New(t time.Time, id bson.ObjectID) Cursor {
	return Cursor{CreatedAt: time.UnixMilli(t.UnixMilli()).UTC(), ID: id}
}

func (c Cursor) String() string {
	return Encode(c.CreatedAt, c.ID)
}

func Encode(t time.Time, id bson.ObjectID) string {
	return strconv.FormatInt(t.UnixMilli(), 10) + delimiter + id.Hex()
}

func Decode(s string) (Cursor, error) {
	ms, hex, ok := strings.Cut(s, delimiter)
	if !ok {
		return Cursor{}, fmt.Errorf("%w: missing delimiter", ErrInvalidCursor)
	}
	millis, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: timestamp: %v", ErrInvalidCursor, err)
	}
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: id: %v", ErrInvalidCursor, err)
	}
	return Cursor{CreatedAt: time.UnixMilli(millis).UTC(), ID: oid}, nil
}

// Before reports whether (t, id) sorts strictly after the cursor in a
// newest-first feed, i.e. belongs to a later page.
func (c Cursor) Before(t time.Time, id bson.ObjectID) bool {
	tm, cm := t.UnixMilli(), c.CreatedAt.UnixMilli()
	if tm != cm {
		return tm < cm
	}
	return bytes.Compare(id[:], c.ID[:]) < 0
}

// Filter is the MongoDB match for items strictly older than the cursor.
func (c Cursor) Filter() bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"createdAt": bson.M{"$lt": c.CreatedAt}},
			bson.M{"createdAt": c.CreatedAt, "_id": bson.M{"$lt": c.ID}},
		},
	}
}
