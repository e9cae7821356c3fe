package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/deppfellow/lazy-virtuoso/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockDB(mt *mtest.T) *Database {
	logger := zerolog.Nop()
	return FromClient(mt.Client, "virtuoso", &logger)
}

func TestNewWithoutDatabaseURL(t *testing.T) {
	cfg := config.DefaultConfig()
	logger := zerolog.Nop()

	db, err := New(cfg, &logger, nil)
	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestNilDatabaseIsDegraded(t *testing.T) {
	var db *Database
	ctx := context.Background()

	_, err := db.Insert(ctx, "poem", bson.M{"title": "Dusk"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = db.Find(ctx, "poem", nil, 50)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, db.Ping(ctx), ErrStoreUnavailable)
	assert.NoError(t, db.Close(ctx))
	assert.Equal(t, "", db.Name())

	report := db.HealthCheck(ctx)
	assert.Equal(t, "Running", report.Backend)
	assert.Equal(t, StatusNotAvailable, report.Database)
	assert.Equal(t, ConnectionNotConnected, report.ConnectionStatus)
	assert.Nil(t, report.DatabaseURL)
	assert.Empty(t, report.Collections)
	assert.NotNil(t, report.Collections)
}

func TestInsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the generated id", func(mt *mtest.T) {
		db := newMockDB(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := db.Insert(context.Background(), "poem", bson.M{"title": "Dusk"})
		require.NoError(t, err)

		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(t, err)
	})

	mt.Run("surfaces duplicate key errors", func(mt *mtest.T) {
		db := newMockDB(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: virtuoso.product index: name_1",
		}))

		_, err := db.Insert(context.Background(), "product", bson.M{"name": "Print"})
		require.Error(t, err)
		assert.True(t, mongo.IsDuplicateKeyError(err))
	})
}

func TestFind(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes matching documents", func(mt *mtest.T) {
		db := newMockDB(mt)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "virtuoso.artwork", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "title", Value: "Nocturne"}, {Key: "tags", Value: bson.A{"ink"}}},
		))

		docs, err := db.Find(context.Background(), "artwork", bson.M{"tags": bson.M{"$in": []string{"ink"}}}, 50)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, oid, docs[0]["_id"])
		assert.Equal(t, "Nocturne", docs[0]["title"])
	})

	mt.Run("no match is an empty slice", func(mt *mtest.T) {
		db := newMockDB(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "virtuoso.artwork", mtest.FirstBatch))

		docs, err := db.Find(context.Background(), "artwork", nil, 0)
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	mt.Run("query failure is an error", func(mt *mtest.T) {
		db := newMockDB(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "unknown operator",
		}))

		_, err := db.Find(context.Background(), "artwork", bson.M{"tags": bson.M{"$bogus": 1}}, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "find in artwork")
	})
}

func TestHealthCheck(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports at most ten collections", func(mt *mtest.T) {
		db := newMockDB(mt)

		batch := make([]bson.D, 0, 12)
		for i := 0; i < 12; i++ {
			batch = append(batch, bson.D{
				{Key: "name", Value: fmt.Sprintf("collection%02d", i)},
				{Key: "type", Value: "collection"},
			})
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "virtuoso.$cmd.listCollections", mtest.FirstBatch, batch...))

		report := db.HealthCheck(context.Background())
		assert.Equal(t, StatusConnected, report.Database)
		assert.Equal(t, ConnectionConnected, report.ConnectionStatus)
		assert.Len(t, report.Collections, MaxReportedCollections)
		require.NotNil(t, report.DatabaseName)
		assert.Equal(t, "virtuoso", *report.DatabaseName)
	})

	mt.Run("folds errors into the status string", func(mt *mtest.T) {
		db := newMockDB(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on virtuoso to execute command { listCollections: 1 } and this message is rather long",
		}))

		report := db.HealthCheck(context.Background())
		assert.Contains(t, report.Database, "Connected but Error: ")
		assert.LessOrEqual(t, len([]rune(report.Database)), len("Connected but Error: ")+maxErrorLength)
		assert.Equal(t, ConnectionNotConnected, report.ConnectionStatus)
		assert.Empty(t, report.Collections)
	})
}
