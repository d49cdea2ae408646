package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"PORT" envDefault:"3000"`

	SupabaseURL        string `env:"SUPABASE_URL"`
	SupabaseAnonKey    string `env:"SUPABASE_ANON_KEY"`
	SupabaseServiceKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`

	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.SupabaseURL == "" {
		return Config{}, errors.New("config: SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return Config{}, errors.New("config: SUPABASE_ANON_KEY is required")
	}
	if cfg.SupabaseServiceKey == "" {
		return Config{}, errors.New("config: SUPABASE_SERVICE_ROLE_KEY is required")
	}

	return cfg, nil
}
