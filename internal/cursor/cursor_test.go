package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	id := bson.NewObjectID()
	ts := time.Date(2025, 3, 1, 12, 30, 15, 123_456_789, time.UTC)

	s := Encode(ts, id)
	assert.Equal(t, "1740832215123:"+id.Hex(), s)

	c, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, ts.UnixMilli(), c.CreatedAt.UnixMilli())
	assert.Equal(t, time.UTC, c.CreatedAt.Location())
	assert.Equal(t, s, c.String())
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"garbage",
		"abc:" + bson.NewObjectID().Hex(),
		"1700000000000:nothex",
		"1700000000000:",
		":" + bson.NewObjectID().Hex(),
	} {
		_, err := Decode(s)
		assert.ErrorIs(t, err, ErrInvalidCursor, "cursor %q", s)
	}
}

func TestBeforeBreaksTiesOnID(t *testing.T) {
	ts := time.UnixMilli(1_700_000_000_000).UTC()
	low, _ := bson.ObjectIDFromHex("000000000000000000000001")
	mid, _ := bson.ObjectIDFromHex("000000000000000000000002")
	high, _ := bson.ObjectIDFromHex("000000000000000000000003")

	c := New(ts, mid)
	assert.True(t, c.Before(ts, low))
	assert.False(t, c.Before(ts, mid))
	assert.False(t, c.Before(ts, high))
	assert.True(t, c.Before(ts.Add(-time.Millisecond), high))
	assert.False(t, c.Before(ts.Add(time.Millisecond), low))
}

func TestFilterShape(t *testing.T) {
	id := bson.NewObjectID()
	c := New(time.UnixMilli(42), id)
	or, ok := c.Filter()["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"createdAt": bson.M{"$lt": c.CreatedAt}}, or[0])
	assert.Equal(t, bson.M{"createdAt": c.CreatedAt, "_id": bson.M{"$lt": id}}, or[1])
}
