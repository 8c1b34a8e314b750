package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	AI       AI     `yaml:"ai"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type AI struct {
	// ThinkingDelay is a cosmetic pause before a computer move is applied.
	ThinkingDelay time.Duration `yaml:"thinking-delay" env:"AI_THINKING_DELAY" env-default:"0s"`
	TrainingGames int           `yaml:"training-games" env:"AI_TRAINING_GAMES" env-default:"100"`
	Seed          int64         `yaml:"seed" env:"AI_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// SeedOrNow returns the configured seed, or the current time when none is set.
func (that *AI) SeedOrNow() uint64 {
	if that.Seed != 0 {
		return uint64(that.Seed)
	}

	return uint64(time.Now().UnixNano())
}
