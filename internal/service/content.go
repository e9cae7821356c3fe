package service

import (
	"context"

	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"github.com/deppfellow/lazy-virtuoso/internal/repository"
	"github.com/deppfellow/lazy-virtuoso/internal/serialize"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/deppfellow/lazy-virtuoso/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson"
)

// ContentService manages the gallery: artworks and poems.
type ContentService struct {
	server   *server.Server
	artworks *repository.ArtworkRepository
	poems    *repository.PoemRepository
}

func NewContentService(s *server.Server, artworks *repository.ArtworkRepository, poems *repository.PoemRepository) *ContentService {
	return &ContentService{
		server:   s,
		artworks: artworks,
		poems:    poems,
	}
}

func (s *ContentService) CreateArtwork(ctx context.Context, req *model.CreateArtworkRequest) (*model.CreatedResponse, error) {
	id, err := s.artworks.Create(ctx, req.ToArtwork())
	if err != nil {
		return nil, storeError(s.server, err, s.artworks.Name(), "create artwork")
	}

	return &model.CreatedResponse{ID: id}, nil
}

func (s *ContentService) ListArtworks(ctx context.Context, req *model.ListArtworksRequest) ([]bson.M, error) {
	docs, err := s.artworks.List(ctx, req.Tag, req.Limit)
	if err != nil {
		return nil, storeError(s.server, err, s.artworks.Name(), "list artworks")
	}

	return serialize.Documents(docs), nil
}

func (s *ContentService) CreatePoem(ctx context.Context, req *model.CreatePoemRequest) (*model.CreatedResponse, error) {
	id, err := s.poems.Create(ctx, req.ToPoem())
	if err != nil {
		return nil, storeError(s.server, err, s.poems.Name(), "create poem")
	}

	return &model.CreatedResponse{ID: id}, nil
}

func (s *ContentService) ListPoems(ctx context.Context, req *model.ListPoemsRequest) ([]bson.M, error) {
	docs, err := s.poems.List(ctx, req.Tag, req.Limit)
	if err != nil {
		return nil, storeError(s.server, err, s.poems.Name(), "list poems")
	}

	return serialize.Documents(docs), nil
}

// storeError logs the driver error and converts it for the client.
func storeError(s *server.Server, err error, collection, operation string) error {
	s.Logger.Error().
		Err(err).
		Str("collection", collection).
		Str("operation", operation).
		Msg("store operation failed")

	return storeerr.HandleError(err, collection)
}
