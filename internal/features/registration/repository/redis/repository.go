package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"paygate-onboarding-gateway/internal/features/registration/models"
	"paygate-onboarding-gateway/internal/features/registration/repository"
)

const (
	draftKeyPrefix  = "onboarding:draft:"
	resultKeyPrefix = "onboarding:result:"
	submitKeyPrefix = "onboarding:submit:"
)

type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

func (r *Repository) GetDraft(ctx context.Context, sessionID string) (*models.RegistrationDraft, error) {
	data, err := r.client.Get(ctx, draftKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var draft models.RegistrationDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

func (r *Repository) SaveDraft(ctx context.Context, sessionID string, draft *models.RegistrationDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return r.client.Set(ctx, draftKeyPrefix+sessionID, data, r.ttl).Err()
}

func (r *Repository) DeleteDraft(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, draftKeyPrefix+sessionID).Err()
}

func (r *Repository) GetResult(ctx context.Context, sessionID string) (*models.RegistrationResult, error) {
	data, err := r.client.Get(ctx, resultKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load result: %w", err)
	}

	var result models.RegistrationResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &result, nil
}

func (r *Repository) SaveResult(ctx context.Context, sessionID string, result *models.RegistrationResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return r.client.Set(ctx, resultKeyPrefix+sessionID, data, r.ttl).Err()
}

func (r *Repository) AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) error {
	ok, err := r.client.SetNX(ctx, submitKeyPrefix+sessionID, "1", ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	if !ok {
		return repository.ErrLocked
	}
	return nil
}

func (r *Repository) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, submitKeyPrefix+sessionID).Err()
}
