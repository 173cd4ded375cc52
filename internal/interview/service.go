package interview

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
	"go.uber.org/zap"
)

// Store is the persistence contract the lifecycle needs. The Mongo repository
// implements it in production; tests use an in-memory fake.
type Store interface {
	Create(ctx context.Context, iv *model.Interview) error
	// FindByID returns ErrNotFound (wrapped or bare) when no record exists.
	FindByID(ctx context.Context, id string) (*model.Interview, error)
	// FindCompletedByOwner returns submitted interviews plus legacy records
	// that lack a status but show completion evidence, newest first.
	FindCompletedByOwner(ctx context.Context, userID string) ([]model.InterviewSummary, error)
	// ConditionalUpdate applies update only if the record's current status
	// equals expected. matched is false when the record exists but the status
	// check failed, which is how racing transitions lose.
	ConditionalUpdate(ctx context.Context, id string, expected model.InterviewStatus, update map[string]interface{}) (matched bool, err error)
}

// Service owns the interview state machine: in_progress is the only state that
// transitions, submitted and abandoned are terminal.
type Service struct {
	store     Store
	generator *QuestionGenerator
	allocator *TimeAllocator
	grader    *GradingEngine
	log       *zap.SugaredLogger
	now       func() time.Time
}

func NewService(store Store, generator *QuestionGenerator, allocator *TimeAllocator, grader *GradingEngine, log *zap.Logger) *Service {
	return &Service{
		store:     store,
		generator: generator,
		allocator: allocator,
		grader:    grader,
		log:       log.Sugar(),
		now:       time.Now,
	}
}

// Start creates a new in_progress interview with generated questions and an
// allocated time budget.
func (s *Service) Start(ctx context.Context, userID, field, difficulty string) (*model.Interview, error) {
	if strings.TrimSpace(field) == "" {
		return nil, &ValidationError{Field: "field"}
	}
	if strings.TrimSpace(difficulty) == "" {
		return nil, &ValidationError{Field: "difficulty"}
	}
	diff := model.Difficulty(strings.ToLower(strings.TrimSpace(difficulty)))

	questions := s.generator.Generate(ctx, field, diff)
	total, per := s.allocator.Allocate(diff, len(questions))
	for i := range questions {
		questions[i].TimeLimitSec = per[i]
	}

	iv := &model.Interview{
		ID:               uuid.NewString(),
		UserID:           userID,
		Field:            field,
		Difficulty:       diff,
		Status:           model.StatusInProgress,
		Questions:        questions,
		Answers:          []model.Answer{},
		Score:            0,
		TotalTimeSeconds: total,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.store.Create(ctx, iv); err != nil {
		return nil, err
	}
	s.log.Infow("interview started", "interview_id", iv.ID, "user_id", userID, "field", field, "difficulty", diff)
	return iv, nil
}

// Submit normalizes and grades answers, then moves the interview to submitted.
// The write is conditional on the record still being in_progress so a racing
// abandon cannot be overwritten.
func (s *Service) Submit(ctx context.Context, id, userID string, raw []model.RawAnswer) (*model.SubmitInterviewRes, error) {
	iv, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if iv.Status == model.StatusAbandoned || iv.Status == model.StatusSubmitted {
		return nil, ErrInvalidState
	}

	answers := NormalizeAnswers(iv.Questions, raw)
	score, feedback := s.grader.Grade(ctx, iv, answers)

	matched, err := s.store.ConditionalUpdate(ctx, id, model.StatusInProgress, map[string]interface{}{
		"answers":      answers,
		"score":        score,
		"feedback":     feedback,
		"status":       model.StatusSubmitted,
		"submitted_at": s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost a race against another transition on the same record.
		return nil, ErrInvalidState
	}

	s.log.Infow("interview submitted", "interview_id", id, "user_id", userID, "score", score)
	return &model.SubmitInterviewRes{Score: score, Feedback: feedback}, nil
}

// Abandon moves an in_progress interview to abandoned. Re-abandoning is an
// idempotent no-op; a submitted interview cannot be abandoned.
func (s *Service) Abandon(ctx context.Context, id, userID string) error {
	iv, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	switch iv.Status {
	case model.StatusSubmitted:
		return ErrInvalidState
	case model.StatusAbandoned:
		return nil
	}

	matched, err := s.store.ConditionalUpdate(ctx, id, model.StatusInProgress, map[string]interface{}{
		"status":       model.StatusAbandoned,
		"abandoned_at": s.now().UTC(),
	})
	if err != nil {
		return err
	}
	if !matched {
		// Raced with another transition; re-read to tell abandon from submit.
		current, err := s.store.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Status == model.StatusAbandoned {
			return nil
		}
		return ErrInvalidState
	}

	s.log.Infow("interview abandoned", "interview_id", id, "user_id", userID)
	return nil
}

// GetByID returns the full record, owner-scoped.
func (s *Service) GetByID(ctx context.Context, id, userID string) (*model.Interview, error) {
	return s.findOwned(ctx, id, userID)
}

// ListMine returns the caller's completed interview history. In-progress and
// abandoned records are excluded.
func (s *Service) ListMine(ctx context.Context, userID string) ([]model.InterviewSummary, error) {
	return s.store.FindCompletedByOwner(ctx, userID)
}

func (s *Service) findOwned(ctx context.Context, id, userID string) (*model.Interview, error) {
	iv, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv.UserID != userID {
		return nil, ErrForbidden
	}
	return iv, nil
}
