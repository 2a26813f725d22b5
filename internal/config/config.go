package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	TMDB     TMDBConfig     `yaml:"tmdb"`
	// SecretKey signs form tokens. Required; there is no baked-in default.
	SecretKey string `yaml:"secret_key"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig configures SQLite storage.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// TMDBConfig configures the external metadata service.
type TMDBConfig struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	ImageBaseURL string `yaml:"image_base_url"`
}

// Default returns a Config with sensible defaults. The API key and the
// secret key have none and must come from the file or the environment.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://www.themoviedb.org/t/p/original",
		},
	}
}

// Load reads configuration from a YAML file and applies env var overrides.
// An empty path skips the file and uses defaults plus environment only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot serve requests.
func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return fmt.Errorf("config: tmdb api_key is required (set TMDB_API_KEY)")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("config: secret_key is required (set MOVIEHUB_SECRET_KEY)")
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOVIEHUB_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("MOVIEHUB_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		cfg.TMDB.APIKey = v
	}
	if v := os.Getenv("MOVIEHUB_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
}
