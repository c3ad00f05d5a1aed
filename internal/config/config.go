package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"3000"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath       string `env:"LOG_PATH"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	SeedOnStart   bool   `env:"SEED_ON_START" envDefault:"true"`
	// Intervalo en minutos para reconciliar likes_count contra la tabla likes.
	// Cero desactiva el reconciliador.
	ReconcileIntervalMinutes int `env:"RECONCILE_INTERVAL_MINUTES" envDefault:"15"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
