package job

import (
	"context"
	"fmt"
	"time"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
)

// ErrNotFound is returned by repositories when no job has the given id.
var ErrNotFound = fmt.Errorf("job %w", apperr.ErrNotFound)

// UseCase is the job directory.
type UseCase interface {
	Create(ctx context.Context, fields map[string]any) (string, error)
	ListAll(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	ListByPoster(ctx context.Context, email string) ([]Job, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

// NewServiceWithClock is NewService with an injectable clock.
func NewServiceWithClock(repo Repository, now func() time.Time) UseCase {
	return &service{repo: repo, now: now}
}

func (s *service) Create(ctx context.Context, fields map[string]any) (string, error) {
	j := NewJob(fields, s.now())
	id, err := s.repo.Insert(ctx, j)
	if err != nil || id == "" {
		return "", apperr.Persistence(err)
	}
	return id, nil
}

func (s *service) ListAll(ctx context.Context) ([]Job, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []Job{}
	}
	return jobs, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByPoster(ctx context.Context, email string) ([]Job, error) {
	jobs, err := s.repo.ListByPoster(ctx, email)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []Job{}
	}
	return jobs, nil
}

func (s *service) DeleteByID(ctx context.Context, id string) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}
