package serialize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDocumentRenamesObjectID(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	out := Document(bson.M{"_id": oid, "title": "Dusk", "tags": primitive.A{}})

	assert.Equal(t, bson.M{
		"id":    "507f1f77bcf86cd799439011",
		"title": "Dusk",
		"tags":  primitive.A{},
	}, out)
}

func TestDocumentStoreIDWinsOverStoredID(t *testing.T) {
	oid := primitive.NewObjectID()

	// Repeat to cover every map iteration order.
	for i := 0; i < 50; i++ {
		out := Document(bson.M{"_id": oid, "id": "legacy-7", "title": "Dusk"})
		require.Equal(t, oid.Hex(), out["id"])
		assert.NotContains(t, out, "_id")
		assert.Len(t, out, 2)
	}
}

func TestDocumentFormatsDates(t *testing.T) {
	created := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)

	out := Document(bson.M{
		"_id":        "custom-id",
		"created_at": primitive.NewDateTimeFromTime(created),
		"updated_at": created.In(time.FixedZone("EST", -5*3600)),
		"price":      12.5,
	})

	assert.Equal(t, "custom-id", out["id"])
	assert.Equal(t, "2025-06-01T18:30:00Z", out["created_at"])
	assert.Equal(t, "2025-06-01T18:30:00Z", out["updated_at"])
	assert.Equal(t, 12.5, out["price"])
	assert.NotContains(t, out, "_id")
}

func TestDocumentIdentityOnEmpty(t *testing.T) {
	assert.Nil(t, Document(nil))

	empty := bson.M{}
	assert.Equal(t, empty, Document(empty))
}

func TestDocumentKeepsNulls(t *testing.T) {
	out := Document(bson.M{"_id": primitive.NewObjectID(), "author": nil})

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"author":null`)
}

func TestDocumentsNeverNull(t *testing.T) {
	body, err := json.Marshal(Documents(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestDocumentDoesNotMutateInput(t *testing.T) {
	raw := bson.M{"_id": primitive.NewObjectID()}
	Document(raw)
	assert.Contains(t, raw, "_id")
}
