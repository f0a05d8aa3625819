// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package notify

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalis-health/vitalis/internal/platform/respond"
)

type Handler struct {
	center *Center
}

func NewHandler(center *Center) *Handler {
	return &Handler{center: center}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listRecent)
}

func (handler *Handler) listRecent(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.center.Recent())
}
