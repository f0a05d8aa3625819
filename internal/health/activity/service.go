package activity

import (
	"context"
	"log/slog"
)

// recentLimit caps the activity feed size.
const recentLimit = 10

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

// GetSummary assembles today's snapshot and the recent feed.
func (service *Service) GetSummary(context context.Context) (*Summary, error) {
	snapshot, err := service.repo.GetSnapshot(context)
	if err != nil {
		return nil, err
	}

	recent, err := service.repo.ListRecent(context, recentLimit)
	if err != nil {
		return nil, err
	}

	return &Summary{Metrics: snapshot, Recent: recent}, nil
}
