package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
log:
  level: warn
ai:
  gemini_model: gemini-2.0-flash-exp
  timeout: 90s
  moderation_fail_open: false
  generate_per_minute: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if cfg.AI.GeminiModel != "gemini-2.0-flash-exp" {
		t.Fatalf("unexpected gemini model: %s", cfg.AI.GeminiModel)
	}
	if cfg.AI.Timeout != 90*time.Second {
		t.Fatalf("unexpected ai timeout: %s", cfg.AI.Timeout)
	}
	if cfg.AI.ModerationFailOpen {
		t.Fatalf("moderation_fail_open yaml override not applied")
	}
	if cfg.AI.GeneratePerMinute != 5 {
		t.Fatalf("unexpected generate_per_minute: %d", cfg.AI.GeneratePerMinute)
	}
	// Untouched sections keep their defaults.
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.AI.Temperature != 0.7 {
		t.Fatalf("unexpected temperature default: %v", cfg.AI.Temperature)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearConfigEnv(t)

	t.Setenv("GEMINI_API_KEY", "env-gemini-key")
	t.Setenv("HF_TOKEN", "env-hf-token")
	t.Setenv("AI_TIMEOUT", "45s")
	t.Setenv("POSTGRES_DSN", "postgres://x:y@db:5432/artygen")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.AI.GeminiAPIKey != "env-gemini-key" {
		t.Fatalf("gemini key not taken from env")
	}
	if cfg.AI.HFToken != "env-hf-token" {
		t.Fatalf("hf token not taken from env")
	}
	if cfg.AI.Timeout != 45*time.Second {
		t.Fatalf("unexpected ai timeout: %s", cfg.AI.Timeout)
	}
	if cfg.Postgres.DSN != "postgres://x:y@db:5432/artygen" {
		t.Fatalf("postgres dsn not taken from env")
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AI.Timeout != 120*time.Second {
		t.Fatalf("defaults not applied: %s", cfg.AI.Timeout)
	}
	if !cfg.AI.ModerationFailOpen {
		t.Fatalf("moderation should fail open by default")
	}
}

func TestLoadRejectsBadEnvValue(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("AI_TIMEOUT", "not-a-duration")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for invalid AI_TIMEOUT")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_ENV", "HTTP_ADDR", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL", "POSTGRES_DSN", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_USE_SSL",
		"JWT_SECRET", "JWT_ACCESS_TTL", "REFRESH_TTL",
		"GEMINI_API_KEY", "HF_TOKEN", "GEMINI_BASE_URL", "GEMINI_MODEL", "HF_MODEL_URL",
		"AI_TIMEOUT", "AI_MODERATION_FAIL_OPEN", "AI_GENERATE_PER_MINUTE", "AI_GENERATE_PER_10SEC",
	}
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}
