package job

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Keys the directory owns; callers cannot set them.
const (
	KeyID        = "_id"
	KeyCreatedAt = "createdAt"
	KeyTitle     = "title"
	KeyCategory  = "category"
	KeySkills    = "skills"
	KeyPostedBy  = "postedBy"
)

// Job is one posting. Fields carries everything the poster sent, unvalidated.
type Job struct {
	ID        string
	Fields    map[string]any
	CreatedAt time.Time
}

// NewJob is the single boundary where raw request fields become a Job.
// Reserved keys are dropped and CreatedAt is taken from now.
func NewJob(fields map[string]any, now time.Time) Job {
	clean := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case KeyID, "id", KeyCreatedAt:
			continue
		}
		clean[k] = v
	}
	return Job{Fields: clean, CreatedAt: now.UTC()}
}

func (j Job) Title() string    { return stringField(j.Fields, KeyTitle) }
func (j Job) Category() string { return stringField(j.Fields, KeyCategory) }
func (j Job) PostedBy() string { return stringField(j.Fields, KeyPostedBy) }

// SkillNames projects the skills list down to its "value" entries. Plain
// strings in the list are accepted as names too.
func (j Job) SkillNames() []string {
	raw, ok := j.Fields[KeySkills].([]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(raw))
	for _, item := range raw {
		var name string
		switch v := item.(type) {
		case map[string]any:
			name, _ = v["value"].(string)
		case string:
			name = v
		}
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Document returns the stored shape: poster fields plus createdAt.
func (j Job) Document() map[string]any {
	doc := make(map[string]any, len(j.Fields)+1)
	for k, v := range j.Fields {
		doc[k] = v
	}
	doc[KeyCreatedAt] = j.CreatedAt
	return doc
}

// MarshalJSON flattens the job into one document:
// {"_id": ..., "createdAt": ..., <poster fields>}.
func (j Job) MarshalJSON() ([]byte, error) {
	doc := j.Document()
	doc[KeyID] = j.ID
	return json.Marshal(doc)
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Repository is the job collection port of the store gateway.
type Repository interface {
	Insert(ctx context.Context, j Job) (string, error)
	// List returns all jobs, newest createdAt first.
	List(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	ListByPoster(ctx context.Context, email string) ([]Job, error)
	// DeleteByID returns the number of deleted documents (0 or 1).
	DeleteByID(ctx context.Context, id string) (int64, error)
}
