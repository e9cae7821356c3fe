package service

import (
	"context"

	"github.com/deppfellow/lazy-virtuoso/internal/lib/job"
	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"github.com/deppfellow/lazy-virtuoso/internal/repository"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
)

type ContactService struct {
	server   *server.Server
	contacts *repository.ContactRepository
}

func NewContactService(s *server.Server, contacts *repository.ContactRepository) *ContactService {
	return &ContactService{
		server:   s,
		contacts: contacts,
	}
}

// CreateMessage stores a contact form submission and queues a copy for
// the studio inbox. A failed enqueue is logged; the message is stored.
func (s *ContactService) CreateMessage(ctx context.Context, req *model.CreateContactMessageRequest) (*model.CreatedWithStatusResponse, error) {
	msg := req.ToContactMessage()

	id, err := s.contacts.Create(ctx, msg)
	if err != nil {
		return nil, storeError(s.server, err, s.contacts.Name(), "create contact message")
	}

	err = s.server.Job.EnqueueContactNotification(ctx, job.ContactNotificationPayload{
		MessageID:   id,
		Name:        msg.Name,
		Email:       msg.Email,
		InquiryType: msg.InquiryType,
		Message:     msg.Message,
	})
	if err != nil {
		s.server.Logger.Error().Err(err).Str("message_id", id).Msg("failed to enqueue contact notification")
	}

	return &model.CreatedWithStatusResponse{ID: id, Status: model.ContactStatusReceived}, nil
}
