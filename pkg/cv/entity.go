package cv

import (
	"context"
	"time"
)

// Submission is one application to one job. Link submissions carry CVURL;
// uploaded documents carry the extracted Text and, when a judgment ran, Match.
type Submission struct {
	ID          string    `json:"_id"`
	JobID       string    `json:"jobId"`
	Email       string    `json:"email"`
	CVURL       string    `json:"cvUrl,omitempty"`
	Text        string    `json:"text,omitempty"`
	Match       *bool     `json:"match,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Repository is the cv collection port. Insert returns apperr.ErrInvalidInput
// when JobID is not a well-formed store identifier.
type Repository interface {
	Insert(ctx context.Context, s Submission) (string, error)
}
