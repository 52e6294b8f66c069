package cv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/job"
)

type jobsStub map[string]job.Job

func (s jobsStub) GetByID(_ context.Context, id string) (job.Job, error) {
	j, ok := s[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

type repoStub struct {
	saved []Submission
	err   error
}

func (r *repoStub) Insert(_ context.Context, s Submission) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.saved = append(r.saved, s)
	return "cv-1", nil
}

type extractorStub struct {
	text string
	err  error
}

func (e extractorStub) ExtractText(string) (string, error) { return e.text, e.err }

type modelStub struct {
	reply      string
	err        error
	userPrompt string
	calls      int
}

func (m *modelStub) Ask(_ context.Context, system, user string) (string, error) {
	m.calls++
	m.userPrompt = user
	if system != judgeSystemPrompt {
		return "", errors.New("unexpected system prompt " + system)
	}
	return m.reply, m.err
}

var engineer = job.Job{
	ID: "job-1",
	Fields: map[string]any{
		"title":  "Engineer",
		"skills": []any{map[string]any{"value": "SQL"}, map[string]any{"value": "Go"}},
	},
}

func tempUpload(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv-upload.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-stub"), 0o600))
	return path
}

func assertRemoved(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "upload %s must be removed", path)
}

func newPipeline(repo Repository, ex Extractor, model *modelStub) UseCase {
	if model == nil {
		return NewService(jobsStub{"job-1": engineer}, repo, ex, nil, Settings{})
	}
	return NewService(jobsStub{"job-1": engineer}, repo, ex, model, Settings{})
}

func TestSubmitDocument_Verdicts(t *testing.T) {
	for reply, want := range map[string]bool{
		"Yes, the candidate matches 80% of skills": true,
		"No, only 20% match":                       false,
	} {
		repo := &repoStub{}
		model := &modelStub{reply: reply}
		path := tempUpload(t)

		res, err := newPipeline(repo, extractorStub{text: "SQL and Go for 5 years"}, model).
			SubmitDocument(context.Background(), Upload{JobID: "job-1", Email: "c@x.com", Path: path})
		require.NoError(t, err)
		require.NotNil(t, res.Match)
		assert.Equal(t, want, *res.Match)
		assert.Equal(t, "cv-1", res.ID)

		require.Len(t, repo.saved, 1)
		saved := repo.saved[0]
		assert.Equal(t, "job-1", saved.JobID)
		assert.Equal(t, "c@x.com", saved.Email)
		assert.Equal(t, "SQL and Go for 5 years", saved.Text)
		assert.Equal(t, want, *saved.Match)
		assert.False(t, saved.SubmittedAt.IsZero())
		assert.Contains(t, model.userPrompt, "SQL, Go")
		assertRemoved(t, path)
	}
}

func TestSubmitDocument_TransportErrorPersistsNothing(t *testing.T) {
	repo := &repoStub{}
	path := tempUpload(t)
	model := &modelStub{err: errors.New("connection reset")}

	_, err := newPipeline(repo, extractorStub{text: "cv"}, model).
		SubmitDocument(context.Background(), Upload{JobID: "job-1", Path: path})
	assert.ErrorIs(t, err, apperr.ErrExternalService)
	assert.Empty(t, repo.saved)
	assertRemoved(t, path)
}

func TestSubmitDocument_FailuresStillRemoveUpload(t *testing.T) {
	cases := []struct {
		name  string
		jobID string
		ex    Extractor
		repo  *repoStub
		want  error
	}{
		{"unknown job", "job-404", extractorStub{text: "cv"}, &repoStub{}, apperr.ErrNotFound},
		{"extraction", "job-1", extractorStub{err: errors.New("bad xref")}, &repoStub{}, apperr.ErrExtraction},
		{"persistence", "job-1", extractorStub{text: "cv"}, &repoStub{err: errors.New("write concern")}, apperr.ErrPersistence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := tempUpload(t)
			_, err := newPipeline(tc.repo, tc.ex, &modelStub{reply: "yes"}).
				SubmitDocument(context.Background(), Upload{JobID: tc.jobID, Path: path})
			assert.ErrorIs(t, err, tc.want)
			assertRemoved(t, path)
		})
	}
}

func TestSubmitDocument_NoAttachment(t *testing.T) {
	_, err := newPipeline(&repoStub{}, extractorStub{text: "cv"}, nil).
		SubmitDocument(context.Background(), Upload{JobID: "job-1"})
	assert.ErrorIs(t, err, ErrNoAttachment)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestSubmitDocument_WithoutModelStoresNoVerdict(t *testing.T) {
	repo := &repoStub{}
	res, err := newPipeline(repo, extractorStub{text: "cv"}, nil).
		SubmitDocument(context.Background(), Upload{JobID: "job-1", Path: tempUpload(t)})
	require.NoError(t, err)
	assert.Nil(t, res.Match)
	require.Len(t, repo.saved, 1)
	assert.Nil(t, repo.saved[0].Match)
}

func TestSubmitDocument_TruncatesPromptButStoresFullText(t *testing.T) {
	repo := &repoStub{}
	model := &modelStub{reply: "yes"}
	long := strings.Repeat("a", 50)
	svc := NewService(jobsStub{"job-1": engineer}, repo, extractorStub{text: long}, model, Settings{MaxPromptChars: 10, JudgeTimeout: time.Second})

	_, err := svc.SubmitDocument(context.Background(), Upload{JobID: "job-1", Path: tempUpload(t)})
	require.NoError(t, err)
	assert.NotContains(t, model.userPrompt, strings.Repeat("a", 11))
	assert.Equal(t, long, repo.saved[0].Text)
}

func TestSubmitDocument_TruncatesOnRuneBoundary(t *testing.T) {
	repo := &repoStub{}
	model := &modelStub{reply: "yes"}
	accented := strings.Repeat("é", 10)
	svc := NewService(jobsStub{"job-1": engineer}, repo, extractorStub{text: accented}, model, Settings{MaxPromptChars: 5})

	_, err := svc.SubmitDocument(context.Background(), Upload{JobID: "job-1", Path: tempUpload(t)})
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(model.userPrompt))
	assert.Contains(t, model.userPrompt, strings.Repeat("é", 5))
	assert.NotContains(t, model.userPrompt, strings.Repeat("é", 6))
	assert.Equal(t, accented, repo.saved[0].Text)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("héllo", 0))
	assert.Equal(t, "hé", truncateRunes("héllo", 2))
	assert.Equal(t, "héllo", truncateRunes("héllo", 5))
	assert.Equal(t, "héllo", truncateRunes("héllo", 50))
	assert.Equal(t, "日本", truncateRunes("日本語", 2))
}

func TestSubmitDocument_SizeLimit(t *testing.T) {
	settings := Settings{MaxUploadBytes: 1 << 10}

	t.Run("oversized upload", func(t *testing.T) {
		repo := &repoStub{}
		model := &modelStub{reply: "yes"}
		path := tempUpload(t)
		svc := NewService(jobsStub{"job-1": engineer}, repo, extractorStub{text: "cv"}, model, settings)

		_, err := svc.SubmitDocument(context.Background(), Upload{JobID: "job-1", Path: path, Size: 2 << 10})
		assert.ErrorIs(t, err, ErrTooLarge)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Empty(t, repo.saved)
		assert.Zero(t, model.calls)
		assertRemoved(t, path)
	})

	t.Run("unknown job wins over size", func(t *testing.T) {
		path := tempUpload(t)
		svc := NewService(jobsStub{"job-1": engineer}, &repoStub{}, extractorStub{text: "cv"}, nil, settings)

		_, err := svc.SubmitDocument(context.Background(), Upload{JobID: "job-404", Path: path, Size: 2 << 10})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assertRemoved(t, path)
	})

	t.Run("at the limit", func(t *testing.T) {
		repo := &repoStub{}
		svc := NewService(jobsStub{"job-1": engineer}, repo, extractorStub{text: "cv"}, nil, settings)

		_, err := svc.SubmitDocument(context.Background(), Upload{JobID: "job-1", Path: tempUpload(t), Size: 1 << 10})
		require.NoError(t, err)
		assert.Len(t, repo.saved, 1)
	})
}

func TestSubmitLink(t *testing.T) {
	repo := &repoStub{}
	svc := newPipeline(repo, nil, nil)

	id, err := svc.SubmitLink(context.Background(), "job-1", "https://cdn.example.com/cv.pdf", "c@x.com")
	require.NoError(t, err)
	assert.Equal(t, "cv-1", id)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "https://cdn.example.com/cv.pdf", repo.saved[0].CVURL)
	assert.Nil(t, repo.saved[0].Match)

	_, err = svc.SubmitLink(context.Background(), "job-1", " ", "c@x.com")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = newPipeline(&repoStub{err: errors.New("down")}, nil, nil).
		SubmitLink(context.Background(), "job-1", "https://x", "c@x.com")
	assert.ErrorIs(t, err, apperr.ErrPersistence)
}
