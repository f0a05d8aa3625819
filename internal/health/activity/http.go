package activity

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
	router.Get("/", handler.getSummary)
}

func (handler *Handler) getSummary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.GetSummary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}
