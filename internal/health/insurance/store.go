package insurance

import (
	"context"

	"github.com/vitalis-health/vitalis/pkg/pagination"
)

type Repository interface {
	GetPlan(context context.Context) (*Plan, error)
	ListClaims(context context.Context, params pagination.Params) ([]*Claim, int, error)
}
