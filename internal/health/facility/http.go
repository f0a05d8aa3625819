// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package facility

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalis-health/vitalis/internal/platform/respond"
	"github.com/vitalis-health/vitalis/internal/platform/validate"
	"github.com/vitalis-health/vitalis/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
}

// list handles GET /?category=&q=&page=&limit=.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Category: request.URL.Query().Get("category"),
		Query:    request.URL.Query().Get("q"),
	}

	if filter.Category != "" {
		validator := &validate.Validator{}
		validator.OneOf("category", filter.Category, Categories...)
		if err := validator.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	paginationParams := pagination.FromRequest(request)

	facilities, total, err := handler.service.List(request.Context(), filter, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, facilities, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
