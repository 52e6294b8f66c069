// Package memory is an in-process store gateway used by tests and STORE_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/auth"
	"github.com/kaytee124/jobserverapi/pkg/cv"
	"github.com/kaytee124/jobserverapi/pkg/job"
)

type JobRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]job.Job
}

func NewJobRepository() *JobRepository {
	return &JobRepository{items: make(map[string]job.Job)}
}

func (r *JobRepository) Insert(_ context.Context, j job.Job) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = uuid.NewString()
	j.Fields = cloneFields(j.Fields)
	r.items[j.ID] = j
	r.order = append(r.order, j.ID)
	return j.ID, nil
}

func (r *JobRepository) List(_ context.Context) ([]job.Job, error) {
	r.mu.RLock()
	res := r.snapshot(func(job.Job) bool { return true })
	r.mu.RUnlock()
	sort.SliceStable(res, func(a, b int) bool { return res[a].CreatedAt.After(res[b].CreatedAt) })
	return res, nil
}

func (r *JobRepository) GetByID(_ context.Context, id string) (job.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return job.Job{}, apperr.InvalidID(id)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.items[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	j.Fields = cloneFields(j.Fields)
	return j, nil
}

func (r *JobRepository) ListByPoster(_ context.Context, email string) ([]job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(j job.Job) bool { return j.PostedBy() == email }), nil
}

func (r *JobRepository) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, apperr.InvalidID(id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

// snapshot walks jobs in insertion order; callers hold the lock.
func (r *JobRepository) snapshot(keep func(job.Job) bool) []job.Job {
	res := []job.Job{}
	for _, id := range r.order {
		j := r.items[id]
		if keep(j) {
			j.Fields = cloneFields(j.Fields)
			res = append(res, j)
		}
	}
	return res
}

func cloneFields(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]auth.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]auth.User)}
}

func (r *UserRepository) Create(_ context.Context, u auth.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return "", auth.ErrUserAlreadyExists
	}
	u.ID = uuid.NewString()
	r.byEmail[u.Email] = u
	return u.ID, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

type CVRepository struct {
	mu    sync.Mutex
	items []cv.Submission
}

func NewCVRepository() *CVRepository {
	return &CVRepository{}
}

func (r *CVRepository) Insert(_ context.Context, s cv.Submission) (string, error) {
	if _, err := uuid.Parse(strings.TrimSpace(s.JobID)); err != nil {
		return "", apperr.InvalidID(s.JobID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	r.items = append(r.items, s)
	return s.ID, nil
}

// Submissions returns a copy of everything stored so far.
func (r *CVRepository) Submissions() []cv.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]cv.Submission(nil), r.items...)
}
