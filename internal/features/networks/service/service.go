package service

import (
	"context"

	"paygate-onboarding-gateway/internal/common/logger"
	"paygate-onboarding-gateway/internal/features/networks/models"
	"paygate-onboarding-gateway/internal/features/networks/repository"
)

// MappingsFetcher is the upstream side of the reference data flow.
type MappingsFetcher interface {
	NetworkMappings(ctx context.Context) ([]models.NetworkCurrencyMapping, error)
}

type NetworksService interface {
	// Mappings returns the cached reference list, fetching it on first use.
	Mappings(ctx context.Context) ([]models.NetworkCurrencyMapping, error)
	Networks(ctx context.Context) ([]models.Network, error)
	CurrenciesFor(ctx context.Context, networkCode string) ([]models.Currency, error)
	// Supports reports whether the currency belongs to the network's mapped set.
	Supports(ctx context.Context, networkCode, currencyCode string) (bool, error)
	// Refresh re-fetches the mappings and replaces the cache.
	Refresh(ctx context.Context) error
}

type networksService struct {
	fetcher MappingsFetcher
	cache   repository.MappingsCache
}

func NewNetworksService(fetcher MappingsFetcher, cache repository.MappingsCache) NetworksService {
	return &networksService{fetcher: fetcher, cache: cache}
}

func (s *networksService) Mappings(ctx context.Context) ([]models.NetworkCurrencyMapping, error) {
	mappings, err := s.cache.Get(ctx)
	if err == nil {
		return mappings, nil
	}
	if err != repository.ErrCacheMiss {
		logger.Warn().Err(err).Msg("mappings cache read failed, falling back to upstream")
	}

	mappings, err = s.fetcher.NetworkMappings(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, mappings); err != nil {
		logger.Warn().Err(err).Msg("failed to cache network mappings")
	}
	return mappings, nil
}

func (s *networksService) Networks(ctx context.Context) ([]models.Network, error) {
	mappings, err := s.Mappings(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctNetworks(mappings), nil
}

func (s *networksService) CurrenciesFor(ctx context.Context, networkCode string) ([]models.Currency, error) {
	mappings, err := s.Mappings(ctx)
	if err != nil {
		return nil, err
	}
	return CurrenciesForNetwork(mappings, networkCode), nil
}

func (s *networksService) Supports(ctx context.Context, networkCode, currencyCode string) (bool, error) {
	mappings, err := s.Mappings(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range mappings {
		if m.NetworkCode == networkCode && m.CurrencyCode == currencyCode {
			return true, nil
		}
	}
	return false, nil
}

func (s *networksService) Refresh(ctx context.Context) error {
	mappings, err := s.fetcher.NetworkMappings(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, mappings); err != nil {
		return err
	}
	logger.Info().Int("mappings", len(mappings)).Msg("network mappings refreshed")
	return nil
}

// DistinctNetworks deduplicates networks by code, first name wins, preserving
// the upstream order.
func DistinctNetworks(mappings []models.NetworkCurrencyMapping) []models.Network {
	seen := make(map[string]bool, len(mappings))
	networks := make([]models.Network, 0, len(mappings))
	for _, m := range mappings {
		if seen[m.NetworkCode] {
			continue
		}
		seen[m.NetworkCode] = true
		networks = append(networks, models.Network{Code: m.NetworkCode, Name: m.NetworkName})
	}
	return networks
}

// CurrenciesForNetwork lists the currencies mapped to one network. Only these
// may ever be offered for that network, which is what keeps an off-network
// currency structurally impossible to select.
func CurrenciesForNetwork(mappings []models.NetworkCurrencyMapping, networkCode string) []models.Currency {
	currencies := make([]models.Currency, 0, 4)
	for _, m := range mappings {
		if m.NetworkCode == networkCode {
			currencies = append(currencies, models.Currency{Code: m.CurrencyCode, Name: m.CurrencyName})
		}
	}
	return currencies
}

// DistinctCurrencies deduplicates currencies by code across all networks.
func DistinctCurrencies(mappings []models.NetworkCurrencyMapping) []models.Currency {
	seen := make(map[string]bool, len(mappings))
	currencies := make([]models.Currency, 0, len(mappings))
	for _, m := range mappings {
		if seen[m.CurrencyCode] {
			continue
		}
		seen[m.CurrencyCode] = true
		currencies = append(currencies, models.Currency{Code: m.CurrencyCode, Name: m.CurrencyName})
	}
	return currencies
}
