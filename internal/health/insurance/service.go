package insurance

import (
	"context"
	"log/slog"

	"github.com/vitalis-health/vitalis/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) GetPlan(context context.Context) (*Plan, error) {
	return service.repo.GetPlan(context)
}

func (service *Service) ListClaims(context context.Context, params pagination.Params) ([]*Claim, int, error) {
	return service.repo.ListClaims(context, params)
}
