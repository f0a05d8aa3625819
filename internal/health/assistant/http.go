// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package assistant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/vitalis-health/vitalis/internal/platform/request"
	"github.com/vitalis-health/vitalis/internal/platform/respond"
	"github.com/vitalis-health/vitalis/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getThread)
	router.Post("/", handler.sendMessage)
	router.Delete("/", handler.resetThread)
}

func (handler *Handler) getThread(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"messages":    handler.service.Thread(request.Context()),
		"suggestions": Suggestions,
	})
}

type sendRequest struct {
	Content string `json:"content"`
}

func (handler *Handler) sendMessage(writer http.ResponseWriter, request *http.Request) {
	var input sendRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("content", input.Content).MaxLen("content", input.Content, 2000)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	answer := handler.service.Send(request.Context(), input.Content)
	respond.OK(writer, answer)
}

func (handler *Handler) resetThread(writer http.ResponseWriter, request *http.Request) {
	handler.service.Reset(request.Context())
	respond.NoContent(writer)
}
