package repository

import (
	"context"
	"errors"

	"paygate-onboarding-gateway/internal/features/networks/models"
)

// ErrCacheMiss is returned when no mappings are cached yet.
var ErrCacheMiss = errors.New("mappings not cached")

// MappingsCache stores the fetched network/currency reference list for the
// session lifetime of the gateway.
type MappingsCache interface {
	Get(ctx context.Context) ([]models.NetworkCurrencyMapping, error)
	Set(ctx context.Context, mappings []models.NetworkCurrencyMapping) error
}
