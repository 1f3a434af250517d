package repository

import (
	"context"
	"errors"

	"paygate-onboarding-gateway/internal/features/auth/models"
)

var ErrNotFound = errors.New("session not found")

type SessionRepository interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
}
