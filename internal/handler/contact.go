package handler

import (
	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/deppfellow/lazy-virtuoso/internal/service"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Handler
	contact *service.ContactService
}

func NewContactHandler(s *server.Server, contact *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler: NewHandler(s),
		contact: contact,
	}
}

func (h *ContactHandler) CreateMessage(c echo.Context, req *model.CreateContactMessageRequest) (*model.CreatedWithStatusResponse, error) {
	return h.contact.CreateMessage(c.Request().Context(), req)
}
