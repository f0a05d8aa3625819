package activity

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalis-health/vitalis/internal/platform/dberr"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetSnapshot reads the single snapshot row maintained by the seed data.
func (repository *PostgresRepository) GetSnapshot(context context.Context) (MetricSnapshot, error) {
	const query = `
		SELECT steps, stepsgoal, calories, caloriesgoal, water, watergoal,
		       sleep, sleepgoal, heartrate, workouts, workoutsgoal
		FROM metric_snapshot
		WHERE id = 1`

	var snapshot MetricSnapshot
	err := repository.pool.QueryRow(context, query).Scan(
		&snapshot.Steps,
		&snapshot.StepsGoal,
		&snapshot.Calories,
		&snapshot.CaloriesGoal,
		&snapshot.Water,
		&snapshot.WaterGoal,
		&snapshot.Sleep,
		&snapshot.SleepGoal,
		&snapshot.HeartRate,
		&snapshot.Workouts,
		&snapshot.WorkoutsGoal,
	)

	if err != nil {
		return MetricSnapshot{}, dberr.Wrap(fmt.Errorf("activity_snapshot_query_failed: %w", err))
	}

	return snapshot, nil
}

func (repository *PostgresRepository) ListRecent(context context.Context, limit int) ([]*Entry, error) {
	const query = `
		SELECT id, type, name, time, duration, calories, amount, loggedat
		FROM activity_entry
		ORDER BY loggedat DESC
		LIMIT $1`

	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, fmt.Errorf("activity_list_query_failed: %w", err)
	}
	defer rows.Close()

	entries := make([]*Entry, 0, limit)
	for rows.Next() {
		entry := &Entry{}
		err := rows.Scan(
			&entry.ID,
			&entry.Type,
			&entry.Name,
			&entry.Time,
			&entry.Duration,
			&entry.Calories,
			&entry.Amount,
			&entry.LoggedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("activity_list_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
