// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package records

import "context"

type Repository interface {
	ListVisits(context context.Context) ([]*Visit, error)
	ListVaccines(context context.Context) ([]*Vaccine, error)
	ListRecommendedVaccines(context context.Context) ([]*RecommendedVaccine, error)
	ListAllergies(context context.Context) ([]*Allergy, error)
}
