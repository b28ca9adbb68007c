package google

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "service account with delegated email",
			cfg: Config{
				Mode:            AuthModeServiceAccount,
				CredentialsFile: "key.json",
				DelegatedEmail:  "admin@example.com",
			},
		},
		{
			name: "service account missing delegated email",
			cfg: Config{
				Mode:            AuthModeServiceAccount,
				CredentialsFile: "key.json",
			},
			wantErr: "DelegatedEmail",
		},
		{
			name: "server side with port",
			cfg: Config{
				Mode:            AuthModeServerSide,
				CredentialsFile: "secrets.json",
				LocalServerPort: 8089,
			},
		},
		{
			name: "server side missing port",
			cfg: Config{
				Mode:            AuthModeServerSide,
				CredentialsFile: "secrets.json",
			},
			wantErr: "LocalServerPort",
		},
		{
			name: "unknown mode",
			cfg: Config{
				Mode:            "magic",
				CredentialsFile: "secrets.json",
			},
			wantErr: "invalid auth mode",
		},
		{
			name: "missing credentials file",
			cfg: Config{
				Mode:           AuthModeServiceAccount,
				DelegatedEmail: "admin@example.com",
			},
			wantErr: "CredentialsFile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"valid default", "default", false},
		{"valid work", "work", false},
		{"valid with hyphen", "work-email", false},
		{"valid with underscore", "personal_email", false},
		{"valid alphanumeric", "account123", false},
		{"empty", "", true},
		{"with spaces", "my account", true},
		{"with special chars", "account@work", true},
		{"with slash", "work/personal", true},
		{"with dot", "work.email", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAccountName(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAccountName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenFileForAccount(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    string
	}{
		{"default account", "default", "default.token"},
		{"work account", "work", "work.token"},
		{"personal account", "personal", "personal.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenFileForAccount(tt.account)
			if filepath.Base(got) != tt.want {
				t.Errorf("TokenFileForAccount() = %v, want base %v", got, tt.want)
			}
		})
	}
}

func TestHasTokenForAccount(t *testing.T) {
	// Invalid account names never have a token
	if HasTokenForAccount("invalid account") {
		t.Error("HasTokenForAccount() should return false for invalid account name")
	}
	if HasTokenForAccount("") {
		t.Error("HasTokenForAccount() should return false for empty account name")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cache", "test.token")

	want := &oauth2.Token{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
	}

	if err := writeToken(file, want); err != nil {
		t.Fatalf("writeToken() error: %v", err)
	}

	// Token caches must not be world readable
	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file permissions = %o, want 0600", perm)
	}

	got, err := loadToken(file)
	if err != nil {
		t.Fatalf("loadToken() error: %v", err)
	}
	if got.AccessToken != want.AccessToken {
		t.Errorf("AccessToken = %q, want %q", got.AccessToken, want.AccessToken)
	}
	if got.RefreshToken != want.RefreshToken {
		t.Errorf("RefreshToken = %q, want %q", got.RefreshToken, want.RefreshToken)
	}
	if got.TokenType != want.TokenType {
		t.Errorf("TokenType = %q, want %q", got.TokenType, want.TokenType)
	}
}

func TestLoadTokenInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bad.token")
	if err := os.WriteFile(file, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadToken(file); err == nil {
		t.Error("loadToken() expected error for corrupt cache")
	}
}

func TestConfigWithAccount(t *testing.T) {
	base := &Config{
		Mode:            AuthModeServerSide,
		CredentialsFile: "secrets.json",
		LocalServerPort: 8089,
	}

	work := base.WithAccount("work")
	if work.Account != "work" {
		t.Errorf("WithAccount() Account = %q, want %q", work.Account, "work")
	}
	if base.Account != "" {
		t.Error("WithAccount() must not mutate the receiver")
	}
	if work.LocalServerPort != base.LocalServerPort {
		t.Error("WithAccount() should preserve other fields")
	}
}

func TestAccountName(t *testing.T) {
	cfg := &Config{}
	if got := cfg.AccountName(); got != "default" {
		t.Errorf("AccountName() = %q, want %q", got, "default")
	}

	cfg.Account = "work"
	if got := cfg.AccountName(); got != "work" {
		t.Errorf("AccountName() = %q, want %q", got, "work")
	}
}

func TestTokenSourceRequiresValidation(t *testing.T) {
	_, err := TokenSource(t.Context(), &Config{Mode: "magic", CredentialsFile: "x"}, GroupsScopes...)
	if err == nil {
		t.Fatal("TokenSource() expected validation error for unknown mode")
	}
	if !strings.Contains(err.Error(), "invalid auth mode") {
		t.Errorf("TokenSource() error = %v, want invalid auth mode", err)
	}
}

func TestAuthorizeServiceAccountMode(t *testing.T) {
	cfg := &Config{
		Mode:            AuthModeServiceAccount,
		CredentialsFile: filepath.Join(t.TempDir(), "missing-key.json"),
		DelegatedEmail:  "admin@example.com",
	}

	_, err := Authorize(t.Context(), cfg, GroupsScopes...)
	if err == nil {
		t.Fatal("Authorize() expected error for a missing key file")
	}
	if strings.Contains(err.Error(), "server_side") {
		t.Errorf("Authorize() routed service_account mode into the redirect flow: %v", err)
	}
	if !strings.Contains(err.Error(), "credentials file") {
		t.Errorf("Authorize() error = %v, want a credentials file read error", err)
	}
}
