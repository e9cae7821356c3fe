package database

import (
	"context"
	"fmt"

	"github.com/deppfellow/lazy-virtuoso/internal/serialize"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert persists doc into the named collection and returns the
// identifier the store assigned to it.
func (db *Database) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if db == nil {
		return "", ErrStoreUnavailable
	}

	result, err := db.DB.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	return serialize.ID(result.InsertedID), nil
}

// Find returns up to limit documents of the named collection matching
// filter, in natural (insertion) order. A limit of 0 means no limit.
//
// No match yields an empty, non-nil slice.
func (db *Database) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if db == nil {
		return nil, ErrStoreUnavailable
	}

	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := db.DB.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read %s cursor: %w", collection, err)
	}

	return docs, nil
}
