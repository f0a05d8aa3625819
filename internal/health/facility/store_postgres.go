// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package facility

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalis-health/vitalis/pkg/pagination"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List returns the directory page matching the filter, nearest first.

Description: The query filter matches name, address, or any element of the
services array, all case-insensitively, mirroring the search box on the
nearby-services page.

Parameters:
  - context: context.Context
  - filter: Filter (category and/or keyword)
  - params: pagination.Params

Returns:
  - []*Facility: one page of matches
  - int: total match count across all pages
  - error: database errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, params pagination.Params) ([]*Facility, int, error) {
	const matchClause = `
		($1 = '' OR category = $1)
		AND ($2 = '' OR name ILIKE '%' || $2 || '%'
			OR address ILIKE '%' || $2 || '%'
			OR EXISTS (SELECT 1 FROM unnest(services) AS s WHERE s ILIKE '%' || $2 || '%'))`

	countQuery := `SELECT COUNT(*) FROM facility WHERE ` + matchClause

	var total int
	if err := repository.pool.QueryRow(context, countQuery, filter.Category, filter.Query).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("facility_count_failed: %w", err)
	}

	listQuery := `
		SELECT id, category, name, address, phone, distancemiles, rating, hours, services
		FROM facility
		WHERE ` + matchClause + `
		ORDER BY distancemiles ASC
		LIMIT $3 OFFSET $4`

	rows, err := repository.pool.Query(context, listQuery, filter.Category, filter.Query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("facility_list_query_failed: %w", err)
	}
	defer rows.Close()

	facilities := make([]*Facility, 0, params.Limit)
	for rows.Next() {
		facility := &Facility{}
		err := rows.Scan(
			&facility.ID,
			&facility.Category,
			&facility.Name,
			&facility.Address,
			&facility.Phone,
			&facility.DistanceMiles,
			&facility.Rating,
			&facility.Hours,
			&facility.Services,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("facility_list_scan_failed: %w", err)
		}
		facilities = append(facilities, facility)
	}

	return facilities, total, rows.Err()
}
