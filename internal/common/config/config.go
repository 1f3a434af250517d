package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Upstream struct {
		// Base URL of the registration API, e.g. https://api.paygate.example
		BaseURL        string `env:"UPSTREAM_BASE_URL,required"`
		TimeoutSeconds int    `env:"UPSTREAM_TIMEOUT_SECONDS" envDefault:"10"`
	}

	Captcha struct {
		ServiceURL     string `env:"CAPTCHA_SERVICE_URL"`
		TimeoutSeconds int    `env:"CAPTCHA_TIMEOUT_SECONDS" envDefault:"5"`
	}

	Session struct {
		// Draft and result records expire together with the session.
		TTLMinutes int `env:"SESSION_TTL_MINUTES" envDefault:"120"`
	}

	Networks struct {
		CacheTTLMinutes int `env:"NETWORKS_CACHE_TTL_MINUTES" envDefault:"60"`
		// Cron spec for the background mappings refresh.
		RefreshSpec string `env:"NETWORKS_REFRESH_SPEC" envDefault:"*/30 * * * *"`
	}

	Telegram struct {
		BotToken string `env:"BOT_TOKEN"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env is optional; in production the variables are set directly.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
