package repository

import (
	"github.com/deppfellow/lazy-virtuoso/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Artworks *ArtworkRepository
	Poems    *PoemRepository
	Products *ProductRepository
	Contacts *ContactRepository
	Orders   *OrderRepository
}

// NewRepositories constructs the repositories on top of s.DB.
//
// s.DB is nil when no DATABASE_URL is configured; the repositories are
// still built and every call reports the store as unavailable.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithStore(s.DB)
}

// NewRepositoriesWithStore builds the repositories on an arbitrary store.
func NewRepositoriesWithStore(store DocumentStore) *Repositories {
	return &Repositories{
		Artworks: NewArtworkRepository(store),
		Poems:    NewPoemRepository(store),
		Products: NewProductRepository(store),
		Contacts: NewContactRepository(store),
		Orders:   NewOrderRepository(store),
	}
}
