package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "paygate-onboarding-gateway/docs"
	"paygate-onboarding-gateway/internal/common/config"
	"paygate-onboarding-gateway/internal/common/logger"
	"paygate-onboarding-gateway/internal/common/metrics"
	"paygate-onboarding-gateway/internal/common/middleware"
	authhttp "paygate-onboarding-gateway/internal/features/auth/delivery/http"
	authredis "paygate-onboarding-gateway/internal/features/auth/repository/redis"
	authservice "paygate-onboarding-gateway/internal/features/auth/service"
	networkshttp "paygate-onboarding-gateway/internal/features/networks/delivery/http"
	networksredis "paygate-onboarding-gateway/internal/features/networks/repository/redis"
	networksservice "paygate-onboarding-gateway/internal/features/networks/service"
	registrationhttp "paygate-onboarding-gateway/internal/features/registration/delivery/http"
	registrationredis "paygate-onboarding-gateway/internal/features/registration/repository/redis"
	registrationservice "paygate-onboarding-gateway/internal/features/registration/service"
	"paygate-onboarding-gateway/internal/platform/paygate"
	"paygate-onboarding-gateway/internal/platform/recaptcha"
	"paygate-onboarding-gateway/internal/platform/redis"
	"paygate-onboarding-gateway/internal/scheduler"
)

const warmUpInterval = 15 * time.Second

// @title PayGate Onboarding Gateway API
// @version 1.0
// @description Session-scoped registration drafts, validation and submission for channel onboarding
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	logger.Init("paygate-onboarding-gateway", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	draftRepo := registrationredis.NewRepository(redisClient, sessionTTL)
	sessionRepo := authredis.NewRepository(redisClient, sessionTTL)
	mappingsCache := networksredis.NewCache(redisClient, time.Duration(cfg.Networks.CacheTTLMinutes)*time.Minute)

	upstream := paygate.NewClient(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second)

	captcha := newCaptchaProvider(ctx, cfg)

	networksService := networksservice.NewNetworksService(upstream, mappingsCache)
	registrationService := registrationservice.NewRegistrationService(draftRepo, upstream, captcha, networksService)
	authService := authservice.NewAuthService(sessionRepo, upstream, cfg.Telegram.BotToken)

	cron := scheduler.NewCronScheduler(networksService, cfg.Networks.RefreshSpec)
	if err := cron.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer cron.Stop()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.ErrorHandler(),
		metrics.GinMiddleware(),
		cors.New(cors.Config{
			AllowOrigins:     []string{cfg.Server.Origin},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-ID", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	router.GET("/health", healthHandler(upstream))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	requireSession := middleware.SessionRequired(authService)

	authhttp.NewAuthHandler(authService, registrationService).RegisterRoutes(api, requireSession)
	registrationhttp.NewRegistrationHandler(registrationService).RegisterRoutes(api, requireSession)
	networkshttp.NewNetworksHandler(networksService).RegisterRoutes(api)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}

// newCaptchaProvider picks the HTTP challenge service when configured and
// keeps probing it in the background until it reports ready.
func newCaptchaProvider(ctx context.Context, cfg *config.Config) recaptcha.Provider {
	if cfg.Captcha.ServiceURL == "" {
		logger.Warn().Msg("no challenge service configured, using static captcha tokens")
		return &recaptcha.StaticProvider{Token: "static-dev-token"}
	}

	provider := recaptcha.NewHTTPProvider(cfg.Captcha.ServiceURL, time.Duration(cfg.Captcha.TimeoutSeconds)*time.Second)

	go func() {
		ticker := time.NewTicker(warmUpInterval)
		defer ticker.Stop()

		for {
			if err := provider.WarmUp(ctx); err != nil {
				logger.Warn().Err(err).Msg("challenge service warm-up failed, retrying")
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return provider
}

func healthHandler(upstream *paygate.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok"}

		probeCtx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := upstream.Health(probeCtx); err != nil {
			status["upstream"] = "unreachable"
		} else {
			status["upstream"] = "ok"
		}

		c.JSON(http.StatusOK, status)
	}
}
