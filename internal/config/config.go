// Package config loads settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"GO-dungeon/internal/game"
	"GO-dungeon/internal/logger"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the whole application configuration.
type Config struct {
	// GeminiAPIKey may be empty; the game then reports a credential error
	// when the player starts an adventure.
	GeminiAPIKey      string   `envconfig:"GEMINI_API_KEY"`
	GeminiModel       string   `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	GeminiTemperature *float32 `envconfig:"GEMINI_TEMPERATURE"`

	FailurePolicy string `envconfig:"DM_FAILURE_POLICY" default:"rollback"`
	HTTPAddr      string `envconfig:"DM_HTTP_ADDR" default:":8080"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console"`
	LogOutput   string `envconfig:"LOG_OUTPUT"`

	SupabaseURL   string `envconfig:"SUPABASE_URL"`
	SupabaseKey   string `envconfig:"SUPABASE_KEY"`
	SupabaseTable string `envconfig:"SUPABASE_TABLE" default:"dm_transcript"`
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing .env files are not an error; variables that
// are already set win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if _, err := game.ParseFailurePolicy(cfg.FailurePolicy); err != nil {
		return nil, fmt.Errorf("DM_FAILURE_POLICY: %w", err)
	}
	return &cfg, nil
}

// Policy returns the parsed failure policy.
func (c *Config) Policy() game.FailurePolicy {
	p, _ := game.ParseFailurePolicy(c.FailurePolicy)
	return p
}

// Logger returns the logger settings.
func (c *Config) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Encoding: c.LogEncoding, OutputPath: c.LogOutput}
}

// ArchiveEnabled reports whether a Supabase transcript is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}
