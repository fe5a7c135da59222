package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/repos"
	"github.com/yungbote/studyplan-backend/internal/types"
)

// DefaultEducationLevel is used when a subject is created without a level.
const DefaultEducationLevel = "General"

type SubjectService interface {
	List(ctx context.Context, userID uuid.UUID) ([]repos.SubjectWithPlan, error)
	Create(ctx context.Context, userID uuid.UUID, name, level string) (*types.Subject, error)
	Rename(ctx context.Context, userID, subjectID uuid.UUID, name string) error
	Delete(ctx context.Context, userID, subjectID uuid.UUID) error
}

type subjectService struct {
	db          *gorm.DB
	log         *logger.Logger
	subjectRepo repos.SubjectRepo
}

func NewSubjectService(db *gorm.DB, log *logger.Logger, subjectRepo repos.SubjectRepo) SubjectService {
	return &subjectService{
		db:          db,
		log:         log.With("service", "SubjectService"),
		subjectRepo: subjectRepo,
	}
}

func (s *subjectService) List(ctx context.Context, userID uuid.UUID) ([]repos.SubjectWithPlan, error) {
	rows, err := s.subjectRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return rows, nil
}

func (s *subjectService) Create(ctx context.Context, userID uuid.UUID, name, level string) (*types.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: subject name required", ErrInvalidInput)
	}
	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultEducationLevel
	}

	subject := &types.Subject{
		ID:             uuid.New(),
		UserID:         userID,
		SubjectName:    name,
		EducationLevel: level,
	}
	if err := s.subjectRepo.Create(ctx, nil, subject); err != nil {
		if repos.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: subject already exists", ErrConflict)
		}
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return subject, nil
}

func (s *subjectService) Rename(ctx context.Context, userID, subjectID uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	n, err := s.subjectRepo.Rename(ctx, nil, userID, subjectID, name, time.Now())
	if err != nil {
		if repos.IsDuplicateKey(err) {
			return fmt.Errorf("%w: subject already exists", ErrConflict)
		}
		return fmt.Errorf("rename subject: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: subject not found", ErrNotFound)
	}
	return nil
}

func (s *subjectService) Delete(ctx context.Context, userID, subjectID uuid.UUID) error {
	n, err := s.subjectRepo.Delete(ctx, nil, userID, subjectID)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: subject not found", ErrNotFound)
	}
	return nil
}
