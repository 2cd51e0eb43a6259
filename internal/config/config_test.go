package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.ServiceName != "matchday-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected ReadTimeout: %s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected WriteTimeout: %s", cfg.WriteTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DBURL by default, got %q", cfg.DBURL)
	}
	if cfg.SimRandSeed != 0 {
		t.Fatalf("expected zero SimRandSeed by default, got %d", cfg.SimRandSeed)
	}
}

func TestLoad_AccessTokens(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_ACCESS_TOKENS", "tok-a:user-admin:admin, tok-c:user-coach:coach:team-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.AccessTokens) != 2 {
		t.Fatalf("expected 2 access tokens, got %d", len(cfg.AccessTokens))
	}

	admin := cfg.AccessTokens[0]
	if admin.Token != "tok-a" || admin.UserID != "user-admin" || admin.Role != "admin" || admin.TeamID != "" {
		t.Fatalf("unexpected admin entry: %+v", admin)
	}

	coach := cfg.AccessTokens[1]
	if coach.Token != "tok-c" || coach.Role != "coach" || coach.TeamID != "team-1" {
		t.Fatalf("unexpected coach entry: %+v", coach)
	}
}

func TestLoad_AccessTokensRejectsMalformedEntries(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing role", "tok-a:user-admin"},
		{"too many segments", "tok:u:r:t:x"},
		{"empty token", ":user-admin:admin"},
		{"empty user", "tok-a::admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("API_ACCESS_TOKENS", tc.raw)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %q", tc.raw)
			}
		})
	}
}

func TestLoad_SimRandSeed(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SIM_RAND_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SimRandSeed != 42 {
		t.Fatalf("unexpected SimRandSeed: %d", cfg.SimRandSeed)
	}
}
