package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/cv"
)

// CVRepository stores submissions; job_id is a copied reference without a foreign key.
type CVRepository struct {
	pool *pgxpool.Pool
}

func NewCVRepository(pool *pgxpool.Pool) (*CVRepository, error) {
	r := &CVRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CVRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS cv (
	id UUID PRIMARY KEY,
	job_id UUID NOT NULL,
	email TEXT NOT NULL,
	cv_url TEXT,
	text TEXT,
	match BOOLEAN,
	submitted_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *CVRepository) Insert(ctx context.Context, s cv.Submission) (string, error) {
	jobID, err := uuid.Parse(s.JobID)
	if err != nil {
		return "", apperr.InvalidID(s.JobID)
	}
	id := uuid.New()
	_, err = r.pool.Exec(ctx, `
INSERT INTO cv (id, job_id, email, cv_url, text, match, submitted_at)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
`, id, jobID, s.Email, s.CVURL, s.Text, s.Match, s.SubmittedAt)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
