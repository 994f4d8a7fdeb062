package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/terroir-ai/backend/internal/model"
)

// ExperimentRepository defines the persistence interface for experiment records.
type ExperimentRepository interface {
	List(ctx context.Context) ([]*model.Experiment, error)
	Create(ctx context.Context, exp *model.Experiment) error
}

// PgExperimentRepository is the PostgreSQL implementation of ExperimentRepository.
type PgExperimentRepository struct {
	pool *pgxpool.Pool
}

// NewPgExperimentRepository creates a PgExperimentRepository backed by the given pool.
func NewPgExperimentRepository(pool *pgxpool.Pool) *PgExperimentRepository {
	return &PgExperimentRepository{pool: pool}
}

var _ ExperimentRepository = (*PgExperimentRepository)(nil)

// List returns all experiments, newest first.
func (r *PgExperimentRepository) List(ctx context.Context) ([]*model.Experiment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, hypothesis, metric_name, baseline_value, target_value,
		        current_value, status, started_at, ended_at, COALESCE(notes, ''),
		        created_at, updated_at
		 FROM experiments
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exps []*model.Experiment
	for rows.Next() {
		var e model.Experiment
		if err := rows.Scan(&e.ID, &e.Name, &e.Hypothesis, &e.MetricName, &e.BaselineValue,
			&e.TargetValue, &e.CurrentValue, &e.Status, &e.StartedAt, &e.EndedAt, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exps = append(exps, &e)
	}
	return exps, rows.Err()
}

// Create inserts a new experiment and populates the database-defaulted
// fields (status, started_at, timestamps) from the RETURNING clause.
func (r *PgExperimentRepository) Create(ctx context.Context, exp *model.Experiment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO experiments (id, name, hypothesis, metric_name, baseline_value, target_value)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING status, started_at, created_at, updated_at`,
		exp.ID, exp.Name, exp.Hypothesis, exp.MetricName, exp.BaselineValue, exp.TargetValue,
	).Scan(&exp.Status, &exp.StartedAt, &exp.CreatedAt, &exp.UpdatedAt)
}
