package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	apperrors "paygate-onboarding-gateway/internal/common/errors"
	"paygate-onboarding-gateway/internal/common/logger"
	"paygate-onboarding-gateway/internal/features/auth/models"
	"paygate-onboarding-gateway/internal/features/auth/repository"
)

// Authenticator is the upstream side of the signup/login pass-throughs.
type Authenticator interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type AuthService interface {
	CreateSession(ctx context.Context) (*models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	// Signup forwards account creation upstream; the session stays logged out
	// until an explicit login.
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	// Login forwards upstream and marks the session logged-in on success.
	Login(ctx context.Context, sessionID string, req *models.LoginRequest) (*models.AuthResponse, error)
	// TelegramLogin validates Mini App init data locally and marks the
	// session logged-in without an upstream round-trip.
	TelegramLogin(ctx context.Context, sessionID, initDataRaw string) (*models.Session, error)
}

type authService struct {
	repo     repository.SessionRepository
	upstream Authenticator
	botToken string
}

func NewAuthService(repo repository.SessionRepository, upstream Authenticator, botToken string) AuthService {
	return &authService{repo: repo, upstream: upstream, botToken: botToken}
}

func (s *authService) CreateSession(ctx context.Context) (*models.Session, error) {
	session := &models.Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, apperrors.NewCacheError("save session", err)
	}
	return session, nil
}

func (s *authService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.New(apperrors.ErrCodeSessionNotFound, "session not found or expired")
	}
	if err != nil {
		return nil, apperrors.NewCacheError("load session", err)
	}
	return session, nil
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	return s.upstream.Signup(ctx, req)
}

func (s *authService) Login(ctx context.Context, sessionID string, req *models.LoginRequest) (*models.AuthResponse, error) {
	resp, err := s.upstream.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.LoggedIn = true
	session.Email = req.Email
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, apperrors.NewCacheError("save session", err)
	}

	logger.Info().Str("session_id", sessionID).Msg("session logged in")
	return resp, nil
}

func (s *authService) TelegramLogin(ctx context.Context, sessionID, initDataRaw string) (*models.Session, error) {
	if s.botToken == "" {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "Telegram login is not configured")
	}

	// Expiration left to the session TTL, not the init data timestamp.
	if err := initdata.Validate(initDataRaw, s.botToken, 0); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "invalid Telegram init data")
	}

	parsed, err := initdata.Parse(initDataRaw)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "failed to parse Telegram init data")
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.LoggedIn = true
	session.TelegramID = parsed.User.ID
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, apperrors.NewCacheError("save session", err)
	}

	logger.Info().
		Str("session_id", sessionID).
		Int64("telegram_id", parsed.User.ID).
		Msg("session logged in via Telegram")
	return session, nil
}
