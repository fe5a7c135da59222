package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/repos"
	"github.com/yungbote/studyplan-backend/internal/sessions"
	"github.com/yungbote/studyplan-backend/internal/types"
	"github.com/yungbote/studyplan-backend/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*types.User, error)
	Login(ctx context.Context, email, password string) (*types.User, *sessions.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	ResolveSession(ctx context.Context, token string) (*sessions.Session, error)
}

type authService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	store    sessions.Store
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, store sessions.Store) AuthService {
	return &authService{
		db:       db,
		log:      log.With("service", "AuthService"),
		userRepo: userRepo,
		store:    store,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*types.User, error) {
	if problems := utils.ValidateRegistration(name, email, password); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &types.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, nil, user); err != nil {
		if repos.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered", "user_id", user.ID)
	return user, nil
}

// Login deliberately reports unknown emails and wrong passwords with the
// same error so the response cannot be used to probe for accounts.
func (s *authService) Login(ctx context.Context, email, password string) (*types.User, *sessions.Session, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, nil, normalized)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
		}
		return nil, nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	sess, err := s.store.Create(ctx, user.ID, user.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	return user, sess, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Delete(ctx, token)
}

// CurrentUser touches last_login as a side effect, matching the frontend's
// use of this call as an activity ping.
func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	if err := s.userRepo.TouchLastLogin(ctx, nil, userID, time.Now()); err != nil {
		return nil, fmt.Errorf("touch last login: %w", err)
	}
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user no longer exists", ErrUnauthorized)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func (s *authService) ResolveSession(ctx context.Context, token string) (*sessions.Session, error) {
	sess, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, fmt.Errorf("%w: session expired or missing", ErrUnauthorized)
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return sess, nil
}
