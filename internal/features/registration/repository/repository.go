package repository

import (
	"context"
	"errors"
	"time"

	"paygate-onboarding-gateway/internal/features/registration/models"
)

var (
	// ErrNotFound is returned when no draft or result exists for a session.
	ErrNotFound = errors.New("not found")
	// ErrLocked is returned when a submission is already in flight.
	ErrLocked = errors.New("submission in flight")
)

// DraftRepository stores the per-session form state. A draft lives and dies
// with its session: created empty, mutated by updates, consumed exactly once
// by a successful submit.
type DraftRepository interface {
	GetDraft(ctx context.Context, sessionID string) (*models.RegistrationDraft, error)
	SaveDraft(ctx context.Context, sessionID string, draft *models.RegistrationDraft) error
	DeleteDraft(ctx context.Context, sessionID string) error

	GetResult(ctx context.Context, sessionID string) (*models.RegistrationResult, error)
	SaveResult(ctx context.Context, sessionID string, result *models.RegistrationResult) error

	// AcquireSubmitLock guards against concurrent submits for one session.
	// Returns ErrLocked when a submission is already running.
	AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) error
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}
