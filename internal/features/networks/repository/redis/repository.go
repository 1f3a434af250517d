package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"paygate-onboarding-gateway/internal/features/networks/models"
	"paygate-onboarding-gateway/internal/features/networks/repository"
)

const mappingsKey = "onboarding:network_mappings"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context) ([]models.NetworkCurrencyMapping, error) {
	data, err := c.client.Get(ctx, mappingsKey).Result()
	if err == redis.Nil {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}

	var mappings []models.NetworkCurrencyMapping
	if err := json.Unmarshal([]byte(data), &mappings); err != nil {
		return nil, fmt.Errorf("failed to decode mappings: %w", err)
	}
	return mappings, nil
}

func (c *Cache) Set(ctx context.Context, mappings []models.NetworkCurrencyMapping) error {
	data, err := json.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("failed to encode mappings: %w", err)
	}
	return c.client.Set(ctx, mappingsKey, data, c.ttl).Err()
}
