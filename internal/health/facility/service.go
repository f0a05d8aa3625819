// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package facility

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

func (service *Service) List(context context.Context, filter Filter, params pagination.Params) ([]*Facility, int, error) {
	return service.repo.List(context, filter, params)
}
