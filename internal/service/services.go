package service

import (
	"github.com/deppfellow/lazy-virtuoso/internal/lib/job"
	"github.com/deppfellow/lazy-virtuoso/internal/repository"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
)

type Services struct {
	Content *ContentService
	Shop    *ShopService
	Contact *ContactService
	Job     *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Content: NewContentService(s, repos.Artworks, repos.Poems),
		Shop:    NewShopService(s, repos.Products, repos.Orders),
		Contact: NewContactService(s, repos.Contacts),
		Job:     s.Job,
	}, nil
}
