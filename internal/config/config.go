package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrNoToken = errors.New("DISCORD_BOT_TOKEN was not set")

// Config is read from the environment, after an optional .env file.
type Config struct {
	Token    string `env:"DISCORD_BOT_TOKEN"`
	DevToken string `env:"DISCORD_DEV_BOT_TOKEN"`

	Prefix  string `env:"ARONA_PREFIX" envDefault:"!"`
	CDNRoot string `env:"ARONA_CDN_ROOT" envDefault:"https://rerollcdn.com/BlueArchive"`

	Banner              string        `env:"ARONA_BANNER" envDefault:"2021-02-25-izuna"`
	BannerDir           string        `env:"ARONA_BANNER_DIR"`
	BannerWatchInterval time.Duration `env:"ARONA_BANNER_WATCH_INTERVAL" envDefault:"30s"`

	FetchTimeout     time.Duration `env:"ARONA_FETCH_TIMEOUT" envDefault:"10s"`
	FetchRate        float64       `env:"ARONA_FETCH_RATE" envDefault:"0"`
	FetchConcurrency int           `env:"ARONA_FETCH_CONCURRENCY" envDefault:"4"`

	CacheTTL      time.Duration `env:"ARONA_CACHE_TTL" envDefault:"0"`
	CacheCoalesce bool          `env:"ARONA_CACHE_COALESCE" envDefault:"false"`

	HealthAddr   string `env:"ARONA_HEALTH_ADDR"`
	OTelEndpoint string `env:"ARONA_OTEL_ENDPOINT"`

	LogLevel  string `env:"ARONA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ARONA_LOG_FORMAT" envDefault:"json"`
}

// Load reads dotenv files (missing files are fine) and then the environment.
// Variables already set in the environment win over the files.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BotToken picks the dev token when present.
func (c Config) BotToken() (token string, dev bool, err error) {
	if c.DevToken != "" {
		return c.DevToken, true, nil
	}
	if c.Token == "" {
		return "", false, ErrNoToken
	}
	return c.Token, false, nil
}

func (c Config) validate() error {
	switch {
	case c.Prefix == "":
		return errors.New("ARONA_PREFIX must not be empty")
	case c.FetchConcurrency <= 0:
		return fmt.Errorf("ARONA_FETCH_CONCURRENCY must be positive, got %d", c.FetchConcurrency)
	case c.FetchRate < 0:
		return fmt.Errorf("ARONA_FETCH_RATE must not be negative, got %v", c.FetchRate)
	case c.CacheTTL < 0:
		return fmt.Errorf("ARONA_CACHE_TTL must not be negative, got %s", c.CacheTTL)
	case c.BannerDir != "" && c.BannerWatchInterval <= 0:
		return errors.New("ARONA_BANNER_WATCH_INTERVAL must be positive")
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("ARONA_LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}
