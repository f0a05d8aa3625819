// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package records

import (
	"context"
	"log/slog"
	"strings"
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

// ListVisits returns the visit history, newest first.
func (service *Service) ListVisits(context context.Context) ([]*Visit, error) {
	return service.repo.ListVisits(context)
}

/*
SearchVaccines returns the vaccine records matching the query.

Description: An empty query returns everything. A non-empty query matches the
vaccine name or manufacturer, case-insensitively — the same fields the search
box on the records page filters on.

Parameters:
  - context: context.Context
  - query: string (keyword, may be empty)

Returns:
  - []*Vaccine: matching records in stored order
  - error: repository errors
*/
func (service *Service) SearchVaccines(context context.Context, query string) ([]*Vaccine, error) {
	vaccines, err := service.repo.ListVaccines(context)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return vaccines, nil
	}

	matched := make([]*Vaccine, 0, len(vaccines))
	for _, vaccine := range vaccines {
		if containsFold(query, vaccine.Name, vaccine.Manufacturer) {
			matched = append(matched, vaccine)
		}
	}
	return matched, nil
}

// ListRecommendedVaccines returns the profile-based suggestions.
func (service *Service) ListRecommendedVaccines(context context.Context) ([]*RecommendedVaccine, error) {
	return service.repo.ListRecommendedVaccines(context)
}

/*
SearchAllergies returns the allergies matching the query.

Description: Matches name, reaction, or severity case-insensitively, so a
search for "severe" finds everything flagged at that severity.

Parameters:
  - context: context.Context
  - query: string (keyword, may be empty)

Returns:
  - []*Allergy: matching records in stored order
  - error: repository errors
*/
func (service *Service) SearchAllergies(context context.Context, query string) ([]*Allergy, error) {
	allergies, err := service.repo.ListAllergies(context)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return allergies, nil
	}

	matched := make([]*Allergy, 0, len(allergies))
	for _, allergy := range allergies {
		if containsFold(query, allergy.Name, allergy.Reaction, allergy.Severity) {
			matched = append(matched, allergy)
		}
	}
	return matched, nil
}

// containsFold reports whether any field contains the query, ignoring case.
func containsFold(query string, fields ...string) bool {
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
