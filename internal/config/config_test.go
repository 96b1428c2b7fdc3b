package config

import (
	"os"
	"testing"
)

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()

	if l.MaxIterationsPerRequest != 10_000 {
		t.Errorf("expected default MaxIterationsPerRequest 10000, got %d", l.MaxIterationsPerRequest)
	}
	if l.MaxDispatchQueue != 4096 {
		t.Errorf("expected default MaxDispatchQueue 4096, got %d", l.MaxDispatchQueue)
	}
}

func TestLimitsFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("MAX_ITERATIONS_PER_REQUEST", "50")
	t.Setenv("MAX_DISPATCH_QUEUE", "0")

	l := LimitsFromEnv()

	if l.MaxIterationsPerRequest != 50 {
		t.Errorf("expected overridden MaxIterationsPerRequest 50, got %d", l.MaxIterationsPerRequest)
	}
	if l.MaxDispatchQueue != 0 {
		t.Errorf("expected overridden MaxDispatchQueue 0, got %d", l.MaxDispatchQueue)
	}
}

func TestLimitsFromEnvIgnoresUnsetVars(t *testing.T) {
	os.Unsetenv("MAX_ITERATIONS_PER_REQUEST")
	os.Unsetenv("MAX_DISPATCH_QUEUE")

	l := LimitsFromEnv()
	want := DefaultLimits()

	if l != want {
		t.Errorf("expected defaults when env vars are unset, got %+v want %+v", l, want)
	}
}

func TestServerFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WORKER_COUNT", "16")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := ServerFromEnv()

	if cfg.Port != 8080 {
		t.Errorf("expected overridden port 8080, got %d", cfg.Port)
	}
	if cfg.WorkerCount != 16 {
		t.Errorf("expected overridden worker count 16, got %d", cfg.WorkerCount)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected overridden log level debug, got %s", cfg.LogLevel)
	}
}

func TestLoadComposesServerAndLimits(t *testing.T) {
	for _, key := range []string{"PORT", "WORKER_COUNT", "LOG_LEVEL", "MAX_ITERATIONS_PER_REQUEST", "MAX_DISPATCH_QUEUE"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Server != DefaultServer() {
		t.Errorf("expected default server config with no env vars set, got %+v", cfg.Server)
	}
	if cfg.Limits != DefaultLimits() {
		t.Errorf("expected default limits with no env vars set, got %+v", cfg.Limits)
	}
}
