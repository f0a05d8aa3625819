package insurance

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalis-health/vitalis/internal/platform/dberr"
	"github.com/vitalis-health/vitalis/pkg/pagination"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetPlan reads the single active plan row. Hospitals are stored as a text
// array on the row; there are few enough that a join table buys nothing.
func (repository *PostgresRepository) GetPlan(context context.Context) (*Plan, error) {
	const query = `
		SELECT provider, planname, policynumber, groupnumber, memberid,
		       effectivedate, coveragetype, primaryinsured, contactphone,
		       contactwebsite, deductible, outofpocketmax, primarycare,
		       specialists, emergency, urgent, prescription,
		       primaryphysician, innetworkhospitals
		FROM insurance_plan
		WHERE active = TRUE`

	plan := &Plan{}
	err := repository.pool.QueryRow(context, query).Scan(
		&plan.Provider,
		&plan.PlanName,
		&plan.PolicyNumber,
		&plan.GroupNumber,
		&plan.MemberID,
		&plan.EffectiveDate,
		&plan.CoverageType,
		&plan.PrimaryInsured,
		&plan.ContactPhone,
		&plan.ContactWebsite,
		&plan.Benefits.Deductible,
		&plan.Benefits.OutOfPocketMax,
		&plan.Benefits.PrimaryCare,
		&plan.Benefits.Specialists,
		&plan.Benefits.Emergency,
		&plan.Benefits.Urgent,
		&plan.Benefits.Prescription,
		&plan.Network.PrimaryPhysician,
		&plan.Network.InNetworkHospitals,
	)

	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("insurance_plan_query_failed: %w", err))
	}

	return plan, nil
}

func (repository *PostgresRepository) ListClaims(context context.Context, params pagination.Params) ([]*Claim, int, error) {
	const countQuery = `SELECT COUNT(*) FROM insurance_claim`

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("insurance_claims_count_failed: %w", err)
	}

	const query = `
		SELECT id, date, provider, service, amount, status, paidamount, responsibility
		FROM insurance_claim
		ORDER BY date DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("insurance_claims_query_failed: %w", err)
	}
	defer rows.Close()

	claims := make([]*Claim, 0, params.Limit)
	for rows.Next() {
		claim := &Claim{}
		err := rows.Scan(
			&claim.ID,
			&claim.Date,
			&claim.Provider,
			&claim.Service,
			&claim.Amount,
			&claim.Status,
			&claim.PaidAmount,
			&claim.Responsibility,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("insurance_claims_scan_failed: %w", err)
		}
		claims = append(claims, claim)
	}

	return claims, total, rows.Err()
}
