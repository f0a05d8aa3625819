// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package records

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalis-health/vitalis/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/visits", handler.listVisits)
	router.Get("/vaccines", handler.listVaccines)
	router.Get("/allergies", handler.listAllergies)
}

func (handler *Handler) listVisits(writer http.ResponseWriter, request *http.Request) {
	visits, err := handler.service.ListVisits(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, visits)
}

// listVaccines returns administered records (filtered by ?q) plus the
// profile-based recommendations, which the filter does not touch.
func (handler *Handler) listVaccines(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	vaccines, err := handler.service.SearchVaccines(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	recommended, err := handler.service.ListRecommendedVaccines(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"vaccines":    vaccines,
		"recommended": recommended,
	})
}

func (handler *Handler) listAllergies(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	allergies, err := handler.service.SearchAllergies(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, allergies)
}
