package cv

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/job"
	"github.com/kaytee124/jobserverapi/pkg/llm"
	"github.com/kaytee124/jobserverapi/pkg/nlp"
)

var (
	ErrNoAttachment = fmt.Errorf("%w: a CV document is required", apperr.ErrInvalidInput)
	ErrTooLarge     = fmt.Errorf("%w: CV document exceeds the upload limit", apperr.ErrInvalidInput)
)

// JobFinder resolves the job a CV is submitted to.
type JobFinder interface {
	GetByID(ctx context.Context, id string) (job.Job, error)
}

// Upload is a document-backed submission. Path points at a request-scoped
// temporary file that SubmitDocument always removes. Size is the uploaded
// byte count.
type Upload struct {
	JobID string
	Email string
	Path  string
	Size  int64
}

// Result of a document submission. Match is nil when no judgment ran.
type Result struct {
	ID    string
	Match *bool
}

// UseCase is the CV intake pipeline.
type UseCase interface {
	SubmitLink(ctx context.Context, jobID, cvURL, email string) (string, error)
	SubmitDocument(ctx context.Context, in Upload) (Result, error)
}

// Settings tunes the judgment step. MaxPromptChars counts runes.
type Settings struct {
	ThresholdPercent int
	JudgeTimeout     time.Duration
	MaxPromptChars   int
	MaxUploadBytes   int64
}

func DefaultSettings() Settings {
	return Settings{ThresholdPercent: 60, JudgeTimeout: 30 * time.Second, MaxPromptChars: 12_000, MaxUploadBytes: 15 << 20}
}

type service struct {
	jobs      JobFinder
	repo      Repository
	extractor Extractor
	model     llm.ChatModel
	settings  Settings
	now       func() time.Time
}

// NewService wires the pipeline. A nil model disables the judgment step and
// submissions are stored without a verdict.
func NewService(jobs JobFinder, repo Repository, extractor Extractor, model llm.ChatModel, settings Settings) UseCase {
	def := DefaultSettings()
	if settings.ThresholdPercent <= 0 {
		settings.ThresholdPercent = def.ThresholdPercent
	}
	if settings.JudgeTimeout <= 0 {
		settings.JudgeTimeout = def.JudgeTimeout
	}
	if settings.MaxPromptChars <= 0 {
		settings.MaxPromptChars = def.MaxPromptChars
	}
	if settings.MaxUploadBytes <= 0 {
		settings.MaxUploadBytes = def.MaxUploadBytes
	}
	if extractor == nil {
		extractor = FileExtractor{}
	}
	return &service{
		jobs:      jobs,
		repo:      repo,
		extractor: extractor,
		model:     model,
		settings:  settings,
		now:       time.Now,
	}
}

func (s *service) SubmitLink(ctx context.Context, jobID, cvURL, email string) (string, error) {
	if strings.TrimSpace(cvURL) == "" {
		return "", fmt.Errorf("%w: cvUrl is required", apperr.ErrInvalidInput)
	}
	id, err := s.repo.Insert(ctx, Submission{
		JobID:       jobID,
		Email:       email,
		CVURL:       cvURL,
		SubmittedAt: s.now().UTC(),
	})
	if errors.Is(err, apperr.ErrInvalidInput) {
		return "", err
	}
	if err != nil || id == "" {
		return "", apperr.Persistence(err)
	}
	return id, nil
}

func (s *service) SubmitDocument(ctx context.Context, in Upload) (Result, error) {
	defer discard(in.Path)

	j, err := s.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		return Result{}, err
	}
	if in.Path == "" {
		return Result{}, ErrNoAttachment
	}
	if in.Size > s.settings.MaxUploadBytes {
		return Result{}, ErrTooLarge
	}
	text, err := s.extractor.ExtractText(in.Path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", apperr.ErrExtraction, err)
	}

	sub := Submission{
		JobID: j.ID,
		Email: in.Email,
		Text:  text,
	}
	if s.model != nil {
		skills := nlp.UniqueSkills(j.SkillNames())
		reply, err := s.judge(ctx, skills, text)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", apperr.ErrExternalService, err)
		}
		matched, pct := nlp.Coverage(skills, text)
		log.Printf("cv judgment for job %s: %q (keyword coverage %d%%, matched %v)", j.ID, reply, pct, matched)
		match := InterpretVerdict(reply)
		sub.Match = &match
	}
	sub.SubmittedAt = s.now().UTC()

	id, err := s.repo.Insert(ctx, sub)
	if err != nil || id == "" {
		return Result{}, apperr.Persistence(err)
	}
	log.Printf("cv submission stored: id=%s job=%s acknowledged=true", id, j.ID)
	return Result{ID: id, Match: sub.Match}, nil
}

func (s *service) judge(ctx context.Context, skills []string, text string) (string, error) {
	text = truncateRunes(text, s.settings.MaxPromptChars)
	ctx, cancel := context.WithTimeout(ctx, s.settings.JudgeTimeout)
	defer cancel()
	return s.model.Ask(ctx, judgeSystemPrompt, buildJudgePrompt(skills, text, s.settings.ThresholdPercent))
}

// truncateRunes keeps at most n runes of s without splitting one.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func discard(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("remove upload %s: %v", path, err)
	}
}
