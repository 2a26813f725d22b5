package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Setenv("MOVIEHUB_SECRET_KEY", "env-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDB.BaseURL = %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.ImageBaseURL != "https://www.themoviedb.org/t/p/original" {
		t.Errorf("TMDB.ImageBaseURL = %q", cfg.TMDB.ImageBaseURL)
	}
	if cfg.TMDB.APIKey != "env-key" {
		t.Errorf("TMDB.APIKey = %q, want env-key", cfg.TMDB.APIKey)
	}
	if cfg.SecretKey != "env-secret" {
		t.Errorf("SecretKey = %q, want env-secret", cfg.SecretKey)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("MOVIEHUB_SECRET_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9090"
database:
  path: /tmp/movies.db
tmdb:
  api_key: file-key
secret_key: file-secret
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Database.Path != "/tmp/movies.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.TMDB.APIKey != "file-key" {
		t.Errorf("TMDB.APIKey = %q, want file-key", cfg.TMDB.APIKey)
	}
	// file value survives when the env var is unset
	if cfg.SecretKey != "file-secret" {
		t.Errorf("SecretKey = %q, want file-secret", cfg.SecretKey)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Setenv("MOVIEHUB_SECRET_KEY", "env-secret")
	t.Setenv("MOVIEHUB_ADDR", ":7777")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
tmdb:
  api_key: file-key
secret_key: file-secret
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TMDB.APIKey != "env-key" {
		t.Errorf("TMDB.APIKey = %q, want env-key", cfg.TMDB.APIKey)
	}
	if cfg.SecretKey != "env-secret" {
		t.Errorf("SecretKey = %q, want env-secret", cfg.SecretKey)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("Server.Addr = %q, want :7777", cfg.Server.Addr)
	}
}

func TestLoad_MissingRequiredKeys(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("MOVIEHUB_SECRET_KEY", "")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error when api key and secret are missing")
	}

	t.Setenv("TMDB_API_KEY", "env-key")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error when secret_key is missing")
	}
}
