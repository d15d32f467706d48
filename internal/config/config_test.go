package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnvOr(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnvOr("CFG_VALUE", "file", "default"); got != "custom" {
		t.Fatalf("getEnvOr returned %q, want custom", got)
	}

	// Empty env falls back to the file value, then the default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnvOr("CFG_EMPTY", "file", "default"); got != "file" {
		t.Fatalf("getEnvOr returned %q, want file", got)
	}
	if got := getEnvOr("CFG_EMPTY", "", "default"); got != "default" {
		t.Fatalf("getEnvOr returned %q, want default", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("ENGINE_VERSION", "")
	t.Setenv("RECOMPUTE_CRON", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_ADVICE_MODEL", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.EngineVersion != "v2" {
		t.Fatalf("expected engine default v2, got %q", cfg.EngineVersion)
	}
	if cfg.RecomputeCron == "" {
		t.Fatalf("expected a default recompute cron spec")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("ENGINE_VERSION", "v1")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_ADVICE_MODEL", "model")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.EngineVersion != "v1" {
		t.Fatalf("engine override missing: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIAdviceModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "port: \"7070\"\nlog_level: warn\nrecompute_cron: \"0 0 4 * * *\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RECOMPUTE_CRON", "")

	cfg := Load()
	if cfg.Port != "7070" || cfg.LogLevel != "warn" {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
	if cfg.RecomputeCron != "0 0 4 * * *" {
		t.Fatalf("yaml cron not applied: %+v", cfg)
	}

	// Environment still wins over the file
	t.Setenv("PORT", "6060")
	cfg = Load()
	if cfg.Port != "6060" {
		t.Fatalf("env should override yaml: %+v", cfg)
	}
}
