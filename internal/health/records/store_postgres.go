// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package records

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) ListVisits(context context.Context) ([]*Visit, error) {
	const query = `
		SELECT id, date, type, provider, notes, addedat
		FROM medical_visit
		ORDER BY date DESC`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("records_visits_query_failed: %w", err)
	}
	defer rows.Close()

	var visits []*Visit
	for rows.Next() {
		visit := &Visit{}
		err := rows.Scan(&visit.ID, &visit.Date, &visit.Type, &visit.Provider, &visit.Notes, &visit.AddedAt)
		if err != nil {
			return nil, fmt.Errorf("records_visits_scan_failed: %w", err)
		}
		visits = append(visits, visit)
	}

	return visits, rows.Err()
}

func (repository *PostgresRepository) ListVaccines(context context.Context) ([]*Vaccine, error) {
	const query = `
		SELECT id, name, type, date, manufacturer, dose, provider, lotnumber, nextdose
		FROM vaccine_record
		ORDER BY date DESC`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("records_vaccines_query_failed: %w", err)
	}
	defer rows.Close()

	var vaccines []*Vaccine
	for rows.Next() {
		vaccine := &Vaccine{}
		err := rows.Scan(
			&vaccine.ID,
			&vaccine.Name,
			&vaccine.Type,
			&vaccine.Date,
			&vaccine.Manufacturer,
			&vaccine.Dose,
			&vaccine.Provider,
			&vaccine.LotNumber,
			&vaccine.NextDose,
		)
		if err != nil {
			return nil, fmt.Errorf("records_vaccines_scan_failed: %w", err)
		}
		vaccines = append(vaccines, vaccine)
	}

	return vaccines, rows.Err()
}

func (repository *PostgresRepository) ListRecommendedVaccines(context context.Context) ([]*RecommendedVaccine, error) {
	const query = `
		SELECT name, reason
		FROM recommended_vaccine
		ORDER BY name`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("records_recommendations_query_failed: %w", err)
	}
	defer rows.Close()

	var recommendations []*RecommendedVaccine
	for rows.Next() {
		recommendation := &RecommendedVaccine{}
		if err := rows.Scan(&recommendation.Name, &recommendation.Reason); err != nil {
			return nil, fmt.Errorf("records_recommendations_scan_failed: %w", err)
		}
		recommendations = append(recommendations, recommendation)
	}

	return recommendations, rows.Err()
}

func (repository *PostgresRepository) ListAllergies(context context.Context) ([]*Allergy, error) {
	const query = `
		SELECT id, name, severity, reaction, diagnosed, notes
		FROM allergy
		ORDER BY
			CASE severity WHEN 'Severe' THEN 0 WHEN 'Moderate' THEN 1 ELSE 2 END,
			name`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("records_allergies_query_failed: %w", err)
	}
	defer rows.Close()

	var allergies []*Allergy
	for rows.Next() {
		allergy := &Allergy{}
		err := rows.Scan(
			&allergy.ID,
			&allergy.Name,
			&allergy.Severity,
			&allergy.Reaction,
			&allergy.Diagnosed,
			&allergy.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("records_allergies_scan_failed: %w", err)
		}
		allergies = append(allergies, allergy)
	}

	return allergies, rows.Err()
}
