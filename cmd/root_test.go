package cmd

import (
	"testing"

	"github.com/traveloka/gsuite-go/internal/google"
	"github.com/traveloka/gsuite-go/internal/groups"
)

func TestAuthConfigFromFlags_Defaults(t *testing.T) {
	cfg := authConfigFromFlags()

	if cfg.Mode != google.AuthModeServerSide {
		t.Errorf("expected default mode %q, got %q", google.AuthModeServerSide, cfg.Mode)
	}
	if cfg.LocalServerPort != 8089 {
		t.Errorf("expected default port 8089, got %d", cfg.LocalServerPort)
	}
	if cfg.Account != "default" {
		t.Errorf("expected default account 'default', got %q", cfg.Account)
	}
}

func TestAuthConfigFromFlags_EnvFallback(t *testing.T) {
	t.Setenv("GSUITE_AUTH_MODE", "service_account")
	t.Setenv("GSUITE_CREDENTIALS_FILE", "/etc/gsuite/key.json")
	t.Setenv("GSUITE_DELEGATED_EMAIL", "admin@example.com")
	t.Setenv("GSUITE_LOCAL_SERVER_PORT", "9999")

	cfg := authConfigFromFlags()

	if cfg.Mode != google.AuthModeServiceAccount {
		t.Errorf("expected mode service_account, got %q", cfg.Mode)
	}
	if cfg.CredentialsFile != "/etc/gsuite/key.json" {
		t.Errorf("expected credentials file from env, got %q", cfg.CredentialsFile)
	}
	if cfg.DelegatedEmail != "admin@example.com" {
		t.Errorf("expected delegated email from env, got %q", cfg.DelegatedEmail)
	}
	if cfg.LocalServerPort != 9999 {
		t.Errorf("expected port 9999 from env, got %d", cfg.LocalServerPort)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	var settings groups.GroupSettings

	if err := unmarshalStrict(`{"whoCanJoin": "INVITED_CAN_JOIN"}`, &settings); err != nil {
		t.Fatalf("unmarshalStrict returned error for valid settings: %v", err)
	}
	if settings.WhoCanJoin != "INVITED_CAN_JOIN" {
		t.Errorf("expected whoCanJoin to be set, got %q", settings.WhoCanJoin)
	}

	if err := unmarshalStrict(`{"whoCanJion": "oops"}`, &settings); err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}
