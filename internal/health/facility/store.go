// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package facility

import (
	"context"

	"github.com/vitalis-health/vitalis/pkg/pagination"
)

type Repository interface {
	List(context context.Context, filter Filter, params pagination.Params) ([]*Facility, int, error)
}
