package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/plangen"
	"github.com/yungbote/studyplan-backend/internal/repos"
	"github.com/yungbote/studyplan-backend/internal/types"
)

// PlanGenerator produces a study plan for a subject and level. It never
// fails: upstream trouble resolves to a locally synthesized plan.
type PlanGenerator interface {
	Generate(ctx context.Context, subject, level string) *plangen.GeneratedPlan
}

// PlanResult is the plan as returned to clients, with the owning subject's
// name and level folded in.
type PlanResult struct {
	ID             uuid.UUID              `json:"id"`
	Subject        string                 `json:"subject"`
	EducationLevel string                 `json:"education_level"`
	Summary        string                 `json:"summary"`
	Roadmap        []plangen.WeekEntry    `json:"roadmap"`
	QuizQuestions  []plangen.QuizQuestion `json:"quiz_questions"`
}

type PlanService interface {
	// GetOrCreate returns the stored plan for the named subject, generating
	// and persisting one first if none exists. Repeat calls return the
	// stored plan byte for byte.
	GetOrCreate(ctx context.Context, userID uuid.UUID, subjectName, level string) (*PlanResult, error)
	GetByID(ctx context.Context, userID, planID uuid.UUID) (*PlanResult, error)
}

type planService struct {
	db          *gorm.DB
	log         *logger.Logger
	subjectRepo repos.SubjectRepo
	planRepo    repos.StudyPlanRepo
	generator   PlanGenerator
}

func NewPlanService(db *gorm.DB, log *logger.Logger, subjectRepo repos.SubjectRepo, planRepo repos.StudyPlanRepo, generator PlanGenerator) PlanService {
	return &planService{
		db:          db,
		log:         log.With("service", "PlanService"),
		subjectRepo: subjectRepo,
		planRepo:    planRepo,
		generator:   generator,
	}
}

func (s *planService) GetOrCreate(ctx context.Context, userID uuid.UUID, subjectName, level string) (*PlanResult, error) {
	subjectName = strings.TrimSpace(subjectName)
	if subjectName == "" {
		return nil, fmt.Errorf("%w: subject required", ErrInvalidInput)
	}
	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultEducationLevel
	}

	subject, err := s.subjectRepo.GetByNameLevel(ctx, nil, userID, subjectName, level)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, fmt.Errorf("%w: subject not registered", ErrNotFound)
		}
		return nil, fmt.Errorf("resolve subject: %w", err)
	}

	existing, err := s.planRepo.GetBySubjectID(ctx, nil, subject.ID)
	if err == nil {
		return planResult(existing, subject.SubjectName, subject.EducationLevel)
	}
	if !repos.IsNotFound(err) {
		return nil, fmt.Errorf("load plan: %w", err)
	}

	generated := s.generator.Generate(ctx, subject.SubjectName, subject.EducationLevel)
	plan, err := s.persist(ctx, userID, subject.ID, generated)
	if err != nil {
		if repos.IsDuplicateKey(err) {
			// A concurrent request won the insert; its plan is canonical.
			winner, rerr := s.planRepo.GetBySubjectID(ctx, nil, subject.ID)
			if rerr != nil {
				return nil, fmt.Errorf("load winning plan: %w", rerr)
			}
			s.log.Info("Concurrent plan generation lost insert race, returning stored plan",
				"subject_id", subject.ID)
			return planResult(winner, subject.SubjectName, subject.EducationLevel)
		}
		return nil, fmt.Errorf("persist plan: %w", err)
	}

	return planResult(plan, subject.SubjectName, subject.EducationLevel)
}

func (s *planService) GetByID(ctx context.Context, userID, planID uuid.UUID) (*PlanResult, error) {
	row, err := s.planRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, fmt.Errorf("%w: plan not found", ErrNotFound)
		}
		return nil, fmt.Errorf("load plan: %w", err)
	}
	return planResult(&row.StudyPlan, row.SubjectName, row.EducationLevel)
}

// persist encodes the generated content into JSON columns and inserts the
// row. Duplicate-key errors pass through untranslated for the caller's race
// resolution.
func (s *planService) persist(ctx context.Context, userID, subjectID uuid.UUID, generated *plangen.GeneratedPlan) (*types.StudyPlan, error) {
	roadmap, err := json.Marshal(generated.Roadmap)
	if err != nil {
		return nil, fmt.Errorf("encode roadmap: %w", err)
	}
	quiz, err := json.Marshal(generated.QuizQuestions)
	if err != nil {
		return nil, fmt.Errorf("encode quiz questions: %w", err)
	}

	plan := &types.StudyPlan{
		ID:            uuid.New(),
		SubjectID:     subjectID,
		UserID:        userID,
		Summary:       generated.Summary,
		Roadmap:       roadmap,
		QuizQuestions: quiz,
		Source:        generated.Source,
		CreatedAt:     time.Now(),
	}
	if err := s.planRepo.Create(ctx, nil, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// planResult decodes the stored JSON columns back into the response shape.
// The stored bytes are the source of truth, so what was persisted is what
// every later read returns.
func planResult(plan *types.StudyPlan, subjectName, level string) (*PlanResult, error) {
	var roadmap []plangen.WeekEntry
	if err := json.Unmarshal(plan.Roadmap, &roadmap); err != nil {
		return nil, fmt.Errorf("decode roadmap: %w", err)
	}
	var quiz []plangen.QuizQuestion
	if err := json.Unmarshal(plan.QuizQuestions, &quiz); err != nil {
		return nil, fmt.Errorf("decode quiz questions: %w", err)
	}
	return &PlanResult{
		ID:             plan.ID,
		Subject:        subjectName,
		EducationLevel: level,
		Summary:        plan.Summary,
		Roadmap:        roadmap,
		QuizQuestions:  quiz,
	}, nil
}
