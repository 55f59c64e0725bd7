package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"hashScheme":        "md5",
			"minPasswordLength": 6,
		},
		"portal": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_HASHSCHEME", want: "auth.hashScheme"},
		{envKey: "AUTH_MINPASSWORDLENGTH", want: "auth.minPasswordLength"},
		{envKey: "PORTAL_BASEURL", want: "portal.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Auth == nil {
		t.Fatal("Auth section must be populated")
	}
	if cfg.Auth.HashScheme != "md5" {
		t.Fatalf("default hash scheme = %q, want md5", cfg.Auth.HashScheme)
	}
	if cfg.Auth.MinPasswordLength != 6 {
		t.Fatalf("default min password length = %d, want 6", cfg.Auth.MinPasswordLength)
	}
	if cfg.Auth.ResetTokenTTL != time.Hour {
		t.Fatalf("default reset token TTL = %s, want 1h", cfg.Auth.ResetTokenTTL)
	}
	if cfg.Auth.VerifyTimeout != 5*time.Second {
		t.Fatalf("default verify timeout = %s, want 5s", cfg.Auth.VerifyTimeout)
	}
	if cfg.HTTP.Timeouts.ReadTimeout <= 0 {
		t.Fatalf("default read timeout = %s, want > 0", cfg.HTTP.Timeouts.ReadTimeout)
	}
	if cfg.HTTP.Timeouts.ReadHeaderTimeout <= 0 {
		t.Fatalf("default read header timeout = %s, want > 0", cfg.HTTP.Timeouts.ReadHeaderTimeout)
	}
	if cfg.HTTP.Timeouts.WriteTimeout <= 0 {
		t.Fatalf("default write timeout = %s, want > 0", cfg.HTTP.Timeouts.WriteTimeout)
	}
	if cfg.HTTP.Timeouts.IdleTimeout <= 0 {
		t.Fatalf("default idle timeout = %s, want > 0", cfg.HTTP.Timeouts.IdleTimeout)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{
			HashScheme:        "bcrypt",
			MinPasswordLength: 10,
			VerifyTimeout:     2 * time.Second,
			ResetTokenTTL:     30 * time.Minute,
		},
	}
	applyDefaults(cfg)

	if cfg.Auth.HashScheme != "bcrypt" {
		t.Fatalf("configured hash scheme overwritten: %q", cfg.Auth.HashScheme)
	}
	if cfg.Auth.ResetTokenTTL != 30*time.Minute {
		t.Fatalf("configured TTL overwritten: %s", cfg.Auth.ResetTokenTTL)
	}
}
