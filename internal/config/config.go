// Package config читает конфигурацию сервиса из переменных окружения.
package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config — полная конфигурация сервиса.
// DSN пустой — реестр живёт в памяти и сбрасывается при рестарте;
// непустой — реестр хранится в Postgres.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	DSN             string        `env:"DB_DSN"`
}

// Load подхватывает .env (если он есть) и разбирает переменные окружения.
func Load() (Config, error) {
	// .env опционален, его отсутствие не ошибка
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
