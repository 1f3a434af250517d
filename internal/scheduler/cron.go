package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"paygate-onboarding-gateway/internal/common/logger"
	"paygate-onboarding-gateway/internal/common/metrics"
	networksservice "paygate-onboarding-gateway/internal/features/networks/service"
)

const jobTimeout = 2 * time.Minute

// CronScheduler keeps the cached network/currency mappings fresh so the
// defensive submit check never works off stale reference data.
type CronScheduler struct {
	cron           *cron.Cron
	networks       networksservice.NetworksService
	refreshSpec    string
	activeJobs     sync.WaitGroup
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

func NewCronScheduler(networks networksservice.NetworksService, refreshSpec string) *CronScheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &CronScheduler{
		cron:           cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		networks:       networks,
		refreshSpec:    refreshSpec,
		shutdownCtx:    ctx,
		shutdownCancel: cancel,
	}
}

func (s *CronScheduler) Start() error {
	_, err := s.cron.AddFunc(s.refreshSpec, s.wrap("mappings refresh", func(ctx context.Context) error {
		if err := s.networks.Refresh(ctx); err != nil {
			metrics.RecordMappingsRefresh(false)
			return err
		}
		metrics.RecordMappingsRefresh(true)
		return nil
	}))
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("spec", s.refreshSpec).Msg("cron scheduler started")
	return nil
}

func (s *CronScheduler) wrap(name string, job func(context.Context) error) func() {
	return func() {
		s.activeJobs.Add(1)
		defer s.activeJobs.Done()

		ctx, cancel := context.WithTimeout(s.shutdownCtx, jobTimeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				logger.Error().Str("job", name).Interface("panic", r).Msg("scheduled job panicked")
			}
		}()

		start := time.Now()
		if err := job(ctx); err != nil {
			logger.Error().Str("job", name).Dur("duration", time.Since(start)).Err(err).Msg("scheduled job failed")
			return
		}
		logger.Debug().Str("job", name).Dur("duration", time.Since(start)).Msg("scheduled job completed")
	}
}

// Stop waits briefly for running jobs before giving up.
func (s *CronScheduler) Stop() {
	ctx := s.cron.Stop()
	s.shutdownCancel()

	done := make(chan struct{})
	go func() {
		s.activeJobs.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
		logger.Warn().Msg("timeout waiting for scheduled jobs to finish")
	}
	logger.Info().Msg("cron scheduler stopped")
}
