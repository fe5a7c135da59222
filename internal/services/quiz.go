package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/repos"
	"github.com/yungbote/studyplan-backend/internal/types"
)

// QuizResult reports whether the user has submitted the quiz for a plan,
// and the recorded outcome when they have.
type QuizResult struct {
	Attempted      bool           `json:"attempted"`
	Score          int            `json:"score,omitempty"`
	TotalQuestions int            `json:"total_questions,omitempty"`
	Answers        map[int]string `json:"answers,omitempty"`
	SubmittedAt    *time.Time     `json:"submitted_at,omitempty"`
}

type QuizService interface {
	// Submit records the user's single attempt for a plan. A second
	// submission, concurrent or not, fails with ErrConflict and leaves the
	// first attempt untouched.
	Submit(ctx context.Context, userID, planID uuid.UUID, answers map[int]string, score, total int) (*types.QuizAttempt, error)
	Result(ctx context.Context, userID, planID uuid.UUID) (*QuizResult, error)
}

type quizService struct {
	db          *gorm.DB
	log         *logger.Logger
	planRepo    repos.StudyPlanRepo
	attemptRepo repos.QuizAttemptRepo
}

func NewQuizService(db *gorm.DB, log *logger.Logger, planRepo repos.StudyPlanRepo, attemptRepo repos.QuizAttemptRepo) QuizService {
	return &quizService{
		db:          db,
		log:         log.With("service", "QuizService"),
		planRepo:    planRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *quizService) Submit(ctx context.Context, userID, planID uuid.UUID, answers map[int]string, score, total int) (*types.QuizAttempt, error) {
	if score < 0 || total <= 0 || score > total {
		return nil, fmt.Errorf("%w: score must be between 0 and total questions", ErrInvalidInput)
	}

	if _, err := s.planRepo.GetByIDForUser(ctx, nil, planID, userID); err != nil {
		if repos.IsNotFound(err) {
			return nil, fmt.Errorf("%w: plan not found", ErrNotFound)
		}
		return nil, fmt.Errorf("resolve plan: %w", err)
	}

	encoded, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	attempt := &types.QuizAttempt{
		ID:             uuid.New(),
		UserID:         userID,
		PlanID:         planID,
		Answers:        encoded,
		Score:          score,
		TotalQuestions: total,
		CreatedAt:      time.Now(),
	}
	if err := s.attemptRepo.Create(ctx, nil, attempt); err != nil {
		if repos.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: quiz already submitted", ErrConflict)
		}
		return nil, fmt.Errorf("record attempt: %w", err)
	}
	return attempt, nil
}

func (s *quizService) Result(ctx context.Context, userID, planID uuid.UUID) (*QuizResult, error) {
	if _, err := s.planRepo.GetByIDForUser(ctx, nil, planID, userID); err != nil {
		if repos.IsNotFound(err) {
			return nil, fmt.Errorf("%w: plan not found", ErrNotFound)
		}
		return nil, fmt.Errorf("resolve plan: %w", err)
	}

	attempt, err := s.attemptRepo.GetByUserAndPlan(ctx, nil, userID, planID)
	if err != nil {
		if repos.IsNotFound(err) {
			return &QuizResult{Attempted: false}, nil
		}
		return nil, fmt.Errorf("load attempt: %w", err)
	}

	var answers map[int]string
	if err := json.Unmarshal(attempt.Answers, &answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	submitted := attempt.CreatedAt
	return &QuizResult{
		Attempted:      true,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		Answers:        answers,
		SubmittedAt:    &submitted,
	}, nil
}
