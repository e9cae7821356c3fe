// Package repository handles all interactions with the document store.
//
// Each repository owns one collection: it stamps documents on insert,
// builds the filter for list queries and returns raw documents for the
// service layer to serialize.
package repository

import (
	"context"
	"time"

	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

// DocumentStore is the subset of *database.Database the repositories use.
// A nil *database.Database satisfies it and fails every call with
// database.ErrStoreUnavailable.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

// collection binds a DocumentStore to one collection name.
type collection struct {
	store DocumentStore
	name  string
	now   func() time.Time
}

func newCollection(store DocumentStore, name string) collection {
	return collection{store: store, name: name, now: time.Now}
}

func (c collection) insert(ctx context.Context, doc model.Document) (string, error) {
	doc.Touch(c.now())
	return c.store.Insert(ctx, c.name, doc)
}

func (c collection) find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	return c.store.Find(ctx, c.name, filter, limit)
}

// Name returns the collection name.
func (c collection) Name() string {
	return c.name
}

// tagFilter matches documents whose tag list contains tag.
// An empty tag matches everything.
func tagFilter(tag string) bson.M {
	if tag == "" {
		return bson.M{}
	}
	return bson.M{"tags": bson.M{"$in": []string{tag}}}
}
