// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearConfigEnv unsets every mapped environment variable for the duration
// of the test and restores the previous values afterwards.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for k := range envMappings {
		keys = append(keys, strings.ToUpper(k))
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			k, old := k, old
			t.Cleanup(func() { os.Setenv(k, old) })
		}
		os.Unsetenv(k)
	}
}

// setEnv sets environment variables for the duration of the test.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if cfg.Recommend.EmbeddingsPath != "data/embeddings.json" {
		t.Errorf("Recommend.EmbeddingsPath = %q", cfg.Recommend.EmbeddingsPath)
	}
	if cfg.Recommend.DefaultK != 4 {
		t.Errorf("Recommend.DefaultK = %d, want 4", cfg.Recommend.DefaultK)
	}
	if cfg.Leaderboard.Capacity != 0 {
		t.Errorf("Leaderboard.Capacity = %d, want 0 (unbounded)", cfg.Leaderboard.Capacity)
	}
	if cfg.Leaderboard.SubmitBurst != 3 || cfg.Leaderboard.SubmitInterval != 10*time.Second {
		t.Errorf("Leaderboard throttle = %d per %v, want 3 per 10s", cfg.Leaderboard.SubmitBurst, cfg.Leaderboard.SubmitInterval)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name mapping
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"http_port", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"EMBEDDINGS_PATH", "recommend.embeddings_path"},
		{"RECOMMEND_DIVERSITY_LAMBDA", "recommend.diversity_lambda"},
		{"LEADERBOARD_CAPACITY", "leaderboard.capacity"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	clearConfigEnv(t)
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		if err := os.WriteFile("config.yaml", []byte("logging: {}"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove("config.yaml")

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := writeConfigFile(t, "logging: {}")
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	setEnv(t, map[string]string{
		"HTTP_PORT":                   "9000",
		"LOG_LEVEL":                   "debug",
		"EMBEDDINGS_PATH":             "/srv/ecobee/embeddings.json",
		"RECOMMEND_DIVERSITY_ENABLED": "true",
		"RECOMMEND_DIVERSITY_LAMBDA":  "0.5",
		"LEADERBOARD_CAPACITY":        "100",
		"LEADERBOARD_SUBMIT_INTERVAL": "30s",
		"CORS_ORIGINS":                "https://ecobee.example, https://admin.ecobee.example",
	})

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.EmbeddingsPath != "/srv/ecobee/embeddings.json" {
		t.Errorf("Recommend.EmbeddingsPath = %q", cfg.Recommend.EmbeddingsPath)
	}
	if !cfg.Recommend.DiversityEnabled || cfg.Recommend.DiversityLambda != 0.5 {
		t.Errorf("Diversity = %v/%v, want true/0.5", cfg.Recommend.DiversityEnabled, cfg.Recommend.DiversityLambda)
	}
	if cfg.Leaderboard.Capacity != 100 {
		t.Errorf("Leaderboard.Capacity = %d, want 100", cfg.Leaderboard.Capacity)
	}
	if cfg.Leaderboard.SubmitInterval != 30*time.Second {
		t.Errorf("Leaderboard.SubmitInterval = %v, want 30s", cfg.Leaderboard.SubmitInterval)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://admin.ecobee.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}

	// Defaults are still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.MaxK != 20 {
		t.Errorf("Recommend.MaxK = %d, want 20 (default)", cfg.Recommend.MaxK)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	clearConfigEnv(t)
	configPath := writeConfigFile(t, `
server:
  port: 8888
  host: "127.0.0.1"

logging:
  level: "warn"

recommend:
  default_k: 3
  max_k: 10

security:
  cors_origins:
    - "https://ecobee.example"
`)
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %s, want 127.0.0.1:8888", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Recommend.DefaultK != 3 || cfg.Recommend.MaxK != 10 {
		t.Errorf("Recommend k = %d/%d, want 3/10", cfg.Recommend.DefaultK, cfg.Recommend.MaxK)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://ecobee.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Recommend.EmbeddingsPath != "data/embeddings.json" {
		t.Errorf("Recommend.EmbeddingsPath = %q, want default", cfg.Recommend.EmbeddingsPath)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	configPath := writeConfigFile(t, `
server:
  port: 8888
logging:
  level: "warn"
leaderboard:
  capacity: 50
`)
	setEnv(t, map[string]string{
		ConfigPathEnvVar: configPath,
		"HTTP_PORT":      "9999",
		"LOG_LEVEL":      "error",
	})

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}
	if cfg.Leaderboard.Capacity != 50 {
		t.Errorf("Leaderboard.Capacity = %d, want 50 (from file)", cfg.Leaderboard.Capacity)
	}
}

// TestLoadWithKoanfValidation tests that invalid values are rejected
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"invalid log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"invalid log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"max k below default", map[string]string{"RECOMMEND_MAX_K": "2"}, "RECOMMEND_MAX_K"},
		{"lambda above one", map[string]string{"RECOMMEND_DIVERSITY_LAMBDA": "1.5"}, "RECOMMEND_DIVERSITY_LAMBDA"},
		{"negative capacity", map[string]string{"LEADERBOARD_CAPACITY": "-1"}, "LEADERBOARD_CAPACITY"},
		{"zero burst", map[string]string{"LEADERBOARD_SUBMIT_BURST": "0"}, "LEADERBOARD_SUBMIT_BURST"},
		{"rate limit window too small", map[string]string{"RATE_LIMIT_WINDOW": "10ms"}, "RATE_LIMIT_WINDOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Chdir(t.TempDir())
			setEnv(t, tt.envVars)

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want it to mention %s", err, tt.errMsg)
			}
		})
	}

	t.Run("rate limit bounds skipped when disabled", func(t *testing.T) {
		clearConfigEnv(t)
		t.Chdir(t.TempDir())
		setEnv(t, map[string]string{"DISABLE_RATE_LIMIT": "true", "RATE_LIMIT_REQUESTS": "0"})

		if _, err := LoadWithKoanf(); err != nil {
			t.Errorf("LoadWithKoanf() error = %v", err)
		}
	})
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", got)
	}
}
