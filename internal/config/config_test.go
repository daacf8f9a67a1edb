package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				Port:               "8080",
				GeminiModel:        "gemini-2.0-flash",
				AITimeout:          30 * time.Second,
				SummaryCacheSize:   64,
				SummaryCacheTTL:    15 * time.Minute,
				RateLimitPerMinute: 60,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:               "abc",
				GeminiModel:        "gemini-2.0-flash",
				AITimeout:          30 * time.Second,
				SummaryCacheSize:   64,
				SummaryCacheTTL:    15 * time.Minute,
				RateLimitPerMinute: 60,
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:               "70000",
				GeminiModel:        "gemini-2.0-flash",
				AITimeout:          30 * time.Second,
				SummaryCacheSize:   64,
				SummaryCacheTTL:    15 * time.Minute,
				RateLimitPerMinute: 60,
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "empty model name",
			config: Config{
				Port:               "8080",
				GeminiModel:        "",
				AITimeout:          30 * time.Second,
				SummaryCacheSize:   64,
				SummaryCacheTTL:    15 * time.Minute,
				RateLimitPerMinute: 60,
			},
			wantErr:     true,
			errorString: "Gemini model name cannot be empty",
		},
		{
			name: "AI timeout too short",
			config: Config{
				Port:               "8080",
				GeminiModel:        "gemini-2.0-flash",
				AITimeout:          100 * time.Millisecond,
				SummaryCacheSize:   64,
				SummaryCacheTTL:    15 * time.Minute,
				RateLimitPerMinute: 60,
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "cache size too small",
			config: Config{
				Port:               "8080",
				GeminiModel:        "gemini-2.0-flash",
				AITimeout:          30 * time.Second,
				SummaryCacheSize:   0,
				SummaryCacheTTL:    15 * time.Minute,
				RateLimitPerMinute: 60,
			},
			wantErr:     true,
			errorString: "invalid summary cache size 0",
		},
		{
			name: "multiple errors collected",
			config: Config{
				Port:               "abc",
				GeminiModel:        "",
				AITimeout:          30 * time.Second,
				SummaryCacheSize:   64,
				SummaryCacheTTL:    15 * time.Minute,
				RateLimitPerMinute: 0,
			},
			wantErr:     true,
			errorString: "invalid port 'abc'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "AI_TIMEOUT", "SUMMARY_CACHE_SIZE", "SUMMARY_CACHE_TTL", "RATE_LIMIT_PER_MINUTE"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %s, want gemini-2.0-flash", cfg.GeminiModel)
	}
	if cfg.AITimeout != 30*time.Second {
		t.Errorf("AITimeout = %v, want 30s", cfg.AITimeout)
	}
	if cfg.AIEnabled() {
		t.Error("AIEnabled() = true without an API key")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("AI_TIMEOUT", "45s")
	t.Setenv("SUMMARY_CACHE_SIZE", "128")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if !cfg.AIEnabled() {
		t.Error("AIEnabled() = false with an API key set")
	}
	if cfg.AITimeout != 45*time.Second {
		t.Errorf("AITimeout = %v, want 45s", cfg.AITimeout)
	}
	if cfg.SummaryCacheSize != 128 {
		t.Errorf("SummaryCacheSize = %d, want 128", cfg.SummaryCacheSize)
	}
}
