package repository

import (
	"context"

	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

type ArtworkRepository struct {
	collection
}

func NewArtworkRepository(store DocumentStore) *ArtworkRepository {
	return &ArtworkRepository{collection: newCollection(store, model.CollectionArtwork)}
}

func (r *ArtworkRepository) Create(ctx context.Context, artwork *model.Artwork) (string, error) {
	return r.insert(ctx, artwork)
}

// List returns up to limit artworks, restricted to those tagged with tag
// when tag is not empty.
func (r *ArtworkRepository) List(ctx context.Context, tag string, limit int64) ([]bson.M, error) {
	return r.find(ctx, tagFilter(tag), limit)
}

type PoemRepository struct {
	collection
}

func NewPoemRepository(store DocumentStore) *PoemRepository {
	return &PoemRepository{collection: newCollection(store, model.CollectionPoem)}
}

func (r *PoemRepository) Create(ctx context.Context, poem *model.Poem) (string, error) {
	return r.insert(ctx, poem)
}

func (r *PoemRepository) List(ctx context.Context, tag string, limit int64) ([]bson.M, error) {
	return r.find(ctx, tagFilter(tag), limit)
}
