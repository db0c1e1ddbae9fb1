package main

import (
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "ENV", "LIMITER_RPS", "LIMITER_BURST", "LIMITER_ENABLED"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := loadConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.port != 9000 || cfg.environment != "development" {
		t.Errorf("unexpected defaults: port=%d env=%s", cfg.port, cfg.environment)
	}
	if cfg.limiter.rps != 2 || cfg.limiter.burst != 4 || cfg.limiter.enabled {
		t.Errorf("unexpected limiter defaults: %+v", cfg.limiter)
	}
}

func TestLoadConfigEnvironmentAndFlags(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("ENV", "staging")
	t.Setenv("LIMITER_ENABLED", "true")
	t.Setenv("LIMITER_BURST", "not-a-number")

	cfg, err := loadConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-port", "6000", "-limiter-rps", "7.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.port != 6000 {
		t.Errorf("flag should override environment, got port %d", cfg.port)
	}
	if cfg.environment != "staging" {
		t.Errorf("expected staging from environment, got %s", cfg.environment)
	}
	if !cfg.limiter.enabled {
		t.Error("expected limiter enabled from environment")
	}
	if cfg.limiter.rps != 7.5 {
		t.Errorf("expected rps 7.5, got %v", cfg.limiter.rps)
	}
	if cfg.limiter.burst != 4 {
		t.Errorf("malformed LIMITER_BURST should fall back to 4, got %d", cfg.limiter.burst)
	}
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	clearConfigEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-no-such-flag"}},
		{"malformed port", []string{"-port", "ninety"}},
		{"malformed rps", []string{"-limiter-rps", "fast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)

			_, err := loadConfig(fs, tt.args)
			if err == nil {
				t.Fatalf("expected an error for %v", tt.args)
			}
		})
	}
}

func TestDefaultConfigServesBurst(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := loadConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app := newTestApplication(t)
	app.config = cfg
	h := app.routes(testContext(t))

	for i := 0; i < 8; i++ {
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 under default config, got %d", i, rec.Code)
		}
	}
}
