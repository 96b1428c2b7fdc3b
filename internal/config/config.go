// Package config provides centralized configuration management.
// This is the SINGLE SOURCE OF TRUTH for all server and batch-run settings.
//
// IMPORTANT: When changing values, only modify this file.
// All other parts of the codebase should reference these values.
package config

import (
	"os"
	"strconv"
)

// =============================================================================
// SIMULATION RESOURCE LIMITS
// =============================================================================

// Limits controls DoS protection and batch-size caps on the HTTP surface.
type Limits struct {
	MaxIterationsPerRequest int // Hard cap on runs requested in one /api/simulate call
	MaxDispatchQueue        int // Ring buffer capacity for the dispatch channel (0 disables it)
}

// DefaultLimits returns the default resource limits.
func DefaultLimits() Limits {
	return Limits{
		MaxIterationsPerRequest: 10_000,
		MaxDispatchQueue:        4096,
	}
}

// LimitsFromEnv returns resource limits with environment variable overrides.
func LimitsFromEnv() Limits {
	cfg := DefaultLimits()

	if n := getEnvInt("MAX_ITERATIONS_PER_REQUEST", 0); n > 0 {
		cfg.MaxIterationsPerRequest = n
	}
	if q := getEnvInt("MAX_DISPATCH_QUEUE", -1); q >= 0 {
		cfg.MaxDispatchQueue = q
	}

	return cfg
}

// =============================================================================
// SERVER CONFIGURATION
// =============================================================================

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int
	WorkerCount int // goroutines used by internal/sim.RunBatch
	LogLevel    string
}

// DefaultServer returns the default server configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Port:        3000,
		WorkerCount: 4,
		LogLevel:    "info",
	}
}

// ServerFromEnv returns server configuration with environment variable overrides.
func ServerFromEnv() ServerConfig {
	cfg := DefaultServer()

	if p := getEnvInt("PORT", 0); p > 0 {
		cfg.Port = p
	}
	if w := getEnvInt("WORKER_COUNT", 0); w > 0 {
		cfg.WorkerCount = w
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Server ServerConfig
	Limits Limits
}

// Load returns the complete configuration with environment overrides.
func Load() AppConfig {
	return AppConfig{
		Server: ServerFromEnv(),
		Limits: LimitsFromEnv(),
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
