package insurance

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalis-health/vitalis/internal/platform/respond"
	"github.com/vitalis-health/vitalis/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getPlan)
	router.Get("/claims", handler.listClaims)
}

func (handler *Handler) getPlan(writer http.ResponseWriter, request *http.Request) {
	plan, err := handler.service.GetPlan(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, plan)
}

func (handler *Handler) listClaims(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	claims, total, err := handler.service.ListClaims(request.Context(), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, claims, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
