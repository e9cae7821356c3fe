// Package repositorytest provides an in-memory repository.DocumentStore
// for tests that exercise the HTTP and service layers without a server.
package repositorytest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query records the arguments of a Find call.
type Query struct {
	Collection string
	Filter     bson.M
	Limit      int64
}

// MemoryStore keeps documents per collection in insertion order.
//
// Documents go through a real BSON round trip on insert, so reads come
// back with the same types the driver produces (primitive.A,
// primitive.DateTime, nil for absent optional fields).
//
// Only equality and {"$in": [...]} filters are understood.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	queries     []Query

	// Err, when set, is returned by every call.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal %s document: %w", collection, err)
	}

	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", fmt.Errorf("unmarshal %s document: %w", collection, err)
	}

	id, ok := stored["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		stored["_id"] = id
	}

	s.collections[collection] = append(s.collections[collection], stored)
	return id.Hex(), nil
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries = append(s.queries, Query{Collection: collection, Filter: filter, Limit: limit})

	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]bson.M, 0)
	for _, doc := range s.collections[collection] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if matches(doc, filter) {
			out = append(out, copyDoc(doc))
		}
	}
	return out, nil
}

// Docs returns a copy of everything stored in collection.
func (s *MemoryStore) Docs(collection string) []bson.M {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]bson.M, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		out = append(out, copyDoc(doc))
	}
	return out
}

// LastQuery returns the arguments of the most recent Find call.
func (s *MemoryStore) LastQuery() (Query, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queries) == 0 {
		return Query{}, false
	}
	return s.queries[len(s.queries)-1], true
}

func matches(doc, filter bson.M) bool {
	for field, cond := range filter {
		value := doc[field]

		if ops, ok := cond.(bson.M); ok {
			if in, ok := ops["$in"]; ok && !containsAny(value, in) {
				return false
			}
			continue
		}

		if !reflect.DeepEqual(value, cond) {
			return false
		}
	}
	return true
}

func containsAny(value, candidates any) bool {
	wanted := reflect.ValueOf(candidates)
	if wanted.Kind() != reflect.Slice {
		return false
	}

	// Array fields match when any element is among the candidates.
	var have []any
	if arr, ok := value.(primitive.A); ok {
		have = arr
	} else {
		have = []any{value}
	}

	for i := 0; i < wanted.Len(); i++ {
		for _, h := range have {
			if reflect.DeepEqual(h, wanted.Index(i).Interface()) {
				return true
			}
		}
	}
	return false
}

func copyDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
