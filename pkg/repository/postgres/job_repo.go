package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/job"
)

// JobRepository keeps each posting as a JSONB document.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	doc JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS "titleCategory" ON jobs ((doc->>'title'), (doc->>'category'));
CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_jobs_posted_by ON jobs ((doc->>'postedBy'));
`)
	return err
}

func (r *JobRepository) Insert(ctx context.Context, j job.Job) (string, error) {
	doc, err := json.Marshal(j.Fields)
	if err != nil {
		return "", err
	}
	id := uuid.New()
	_, err = r.pool.Exec(ctx, `
INSERT INTO jobs (id, doc, created_at) VALUES ($1, $2, $3)
`, id, doc, j.CreatedAt)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	return r.query(ctx, `SELECT id, doc, created_at FROM jobs ORDER BY created_at DESC`)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return job.Job{}, apperr.InvalidID(id)
	}
	row := r.pool.QueryRow(ctx, `SELECT id, doc, created_at FROM jobs WHERE id = $1`, uid)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) ListByPoster(ctx context.Context, email string) ([]job.Job, error) {
	return r.query(ctx, `SELECT id, doc, created_at FROM jobs WHERE doc->>'postedBy' = $1`, email)
}

func (r *JobRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return 0, apperr.InvalidID(id)
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, uid)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *JobRepository) query(ctx context.Context, sql string, args ...any) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func scanJob(row pgx.Row) (job.Job, error) {
	var (
		id      uuid.UUID
		raw     []byte
		created time.Time
	)
	if err := row.Scan(&id, &raw, &created); err != nil {
		return job.Job{}, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return job.Job{}, err
	}
	return job.Job{ID: id.String(), Fields: fields, CreatedAt: created.UTC()}, nil
}
