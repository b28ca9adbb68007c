package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthMode selects how credentials are obtained.
type AuthMode string

const (
	// AuthModeServiceAccount uses a service account JSON key with
	// domain-wide delegation. Requires DelegatedEmail.
	AuthModeServiceAccount AuthMode = "service_account"

	// AuthModeServerSide uses a 3-legged installed-app OAuth2 flow with a
	// local redirect server. Requires LocalServerPort.
	AuthModeServerSide AuthMode = "server_side"
)

// ErrNoToken is returned when the server_side mode has no cached token and
// the flow cannot be run non-interactively.
var ErrNoToken = errors.New("no cached OAuth token")

// Config holds the credential configuration for a Google Workspace account.
type Config struct {
	// Mode is the authentication mode: service_account or server_side.
	Mode AuthMode

	// CredentialsFile is the path to the credentials JSON file: a service
	// account key for service_account mode, an OAuth client secrets file
	// for server_side mode.
	CredentialsFile string

	// DelegatedEmail is the email address of the admin user to impersonate
	// via domain-wide delegation. Required for service_account mode.
	DelegatedEmail string

	// LocalServerPort is the port for the local redirect server during the
	// authorization flow. Required for server_side mode.
	LocalServerPort int

	// Account names the token cache slot for server_side mode. Empty means
	// "default". It allows multiple Google accounts side by side.
	Account string

	// TokenFile overrides the token cache location for server_side mode.
	// Empty means the per-account file in the user cache directory.
	TokenFile string
}

// Validate checks that the configuration is complete for its mode.
func (c *Config) Validate() error {
	switch c.Mode {
	case AuthModeServiceAccount:
		if c.DelegatedEmail == "" {
			return fmt.Errorf("DelegatedEmail must be set when Mode is %q", AuthModeServiceAccount)
		}
	case AuthModeServerSide:
		if c.LocalServerPort == 0 {
			return fmt.Errorf("LocalServerPort must be set when Mode is %q", AuthModeServerSide)
		}
	default:
		return fmt.Errorf("invalid auth mode %q: must be %q or %q", c.Mode, AuthModeServerSide, AuthModeServiceAccount)
	}
	if c.CredentialsFile == "" {
		return fmt.Errorf("CredentialsFile must be set")
	}
	return nil
}

// WithAccount returns a copy of the config bound to the given account name.
func (c *Config) WithAccount(account string) *Config {
	clone := *c
	clone.Account = account
	return &clone
}

// AccountName returns the account name, defaulting to "default".
func (c *Config) AccountName() string {
	if c.Account == "" {
		return "default"
	}
	return c.Account
}

// tokenFile returns the token cache path for this config.
func (c *Config) tokenFile() string {
	if c.TokenFile != "" {
		return c.TokenFile
	}
	return TokenFileForAccount(c.AccountName())
}

// TokenFileForAccount returns the default token cache path for an account.
func TokenFileForAccount(account string) string {
	return filepath.Join(userCacheDir(), "gsuite", account+".token")
}

// validateAccountName rejects account names that would produce unsafe or
// surprising token cache paths.
func validateAccountName(account string) error {
	if account == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	for _, r := range account {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("account name %q contains invalid character %q", account, r)
		}
	}
	return nil
}

// HasTokenForAccount checks if a cached OAuth token exists for the account.
func HasTokenForAccount(account string) bool {
	if err := validateAccountName(account); err != nil {
		return false
	}
	_, err := os.Stat(TokenFileForAccount(account))
	return err == nil
}

// HasToken checks if a cached token exists for this config. Service account
// mode needs no cached token; there it only checks the key file.
func (c *Config) HasToken() bool {
	if c.Mode == AuthModeServiceAccount {
		_, err := os.Stat(c.CredentialsFile)
		return err == nil
	}
	_, err := os.Stat(c.tokenFile())
	return err == nil
}

// TokenSource returns an OAuth2 token source for the configured mode.
//
// For service_account mode the source mints JWT-grant tokens on demand from
// the key file. For server_side mode the cached token is loaded and wrapped
// in a refreshing source; ErrNoToken is returned when no cache exists.
func TokenSource(ctx context.Context, cfg *Config, scopes ...string) (oauth2.TokenSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	switch cfg.Mode {
	case AuthModeServiceAccount:
		jwtConf, err := google.JWTConfigFromJSON(data, scopes...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse service account key: %w", err)
		}
		// Domain-wide delegation: act as the delegated admin user.
		jwtConf.Subject = cfg.DelegatedEmail
		return jwtConf.TokenSource(ctx), nil

	case AuthModeServerSide:
		conf, err := oauthConfig(data, cfg, scopes)
		if err != nil {
			return nil, err
		}
		tok, err := loadToken(cfg.tokenFile())
		if err != nil {
			return nil, fmt.Errorf("%w for account %q: run the authorization flow first", ErrNoToken, cfg.AccountName())
		}
		return conf.TokenSource(ctx, tok), nil
	}

	return nil, fmt.Errorf("invalid auth mode %q", cfg.Mode)
}

// HTTPClient returns an HTTP client configured with OAuth2 authentication.
// The client is configured to use HTTP/1.1 to avoid HTTP/2 protocol errors.
func HTTPClient(ctx context.Context, cfg *Config, scopes ...string) (*http.Client, error) {
	ts, err := TokenSource(ctx, cfg, scopes...)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client, nil
}

// AuthURL returns the authorization URL for the server_side flow.
// The returned state must be passed to SaveToken along with the code when
// the redirect is handled out of band.
func AuthURL(cfg *Config, scopes ...string) (url, state string, err error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to read credentials file: %w", err)
	}
	conf, err := oauthConfig(data, cfg, scopes)
	if err != nil {
		return "", "", err
	}
	state, err = randomState()
	if err != nil {
		return "", "", err
	}
	return conf.AuthCodeURL(state, oauth2.AccessTypeOffline), state, nil
}

// SaveToken exchanges an authorization code and caches the resulting token
// for the config's account.
func SaveToken(ctx context.Context, cfg *Config, authCode string, scopes ...string) error {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return fmt.Errorf("failed to read credentials file: %w", err)
	}
	conf, err := oauthConfig(data, cfg, scopes)
	if err != nil {
		return err
	}

	tok, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	return writeToken(cfg.tokenFile(), tok)
}

// Authorize obtains a verified token for the configured mode.
//
// In service_account mode the key file and delegated email are verified by
// minting an access token from the JWT grant. In server_side mode the
// authorization flow runs end to end: a redirect server is started on the
// configured local port, the consent URL is printed, the browser redirect is
// awaited, and the exchanged token is cached.
func Authorize(ctx context.Context, cfg *Config, scopes ...string) (*oauth2.Token, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Mode == AuthModeServiceAccount {
		ts, err := TokenSource(ctx, cfg, scopes...)
		if err != nil {
			return nil, err
		}
		tok, err := ts.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to obtain token for delegated email %s: %w", cfg.DelegatedEmail, err)
		}
		return tok, nil
	}

	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	conf, err := oauthConfig(data, cfg, scopes)
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", cfg.LocalServerPort))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on local redirect port %d: %w", cfg.LocalServerPort, err)
	}
	defer ln.Close()

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	type callback struct {
		code string
		err  error
	}
	results := make(chan callback, 1)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				results <- callback{err: fmt.Errorf("authorization response state mismatch")}
				return
			}
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "missing code", http.StatusBadRequest)
				results <- callback{err: fmt.Errorf("authorization response missing code")}
				return
			}
			fmt.Fprintln(w, "Authorization complete. You may close this window.")
			results <- callback{code: code}
		}),
	}
	go func() { _ = srv.Serve(ln) }()
	defer func() { _ = srv.Close() }()

	fmt.Printf("Visit this URL to authorize access:\n\n  %s\n\nWaiting for the redirect on port %d...\n",
		conf.AuthCodeURL(state, oauth2.AccessTypeOffline), cfg.LocalServerPort)

	var code string
	select {
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		code = res.code
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}

	if err := writeToken(cfg.tokenFile(), tok); err != nil {
		return nil, err
	}

	return tok, nil
}

// oauthConfig builds the oauth2.Config for the server_side mode from a
// client secrets file, pointing the redirect at the local server port.
func oauthConfig(secrets []byte, cfg *Config, scopes []string) (*oauth2.Config, error) {
	conf, err := google.ConfigFromJSON(secrets, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secrets file: %w", err)
	}
	if cfg.LocalServerPort != 0 {
		conf.RedirectURL = fmt.Sprintf("http://localhost:%d/", cfg.LocalServerPort)
	}
	return conf, nil
}

// loadToken reads a cached token from disk.
func loadToken(file string) (*oauth2.Token, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("invalid token cache %s: %w", file, err)
	}
	return &tok, nil
}

// writeToken caches a token to disk, creating the cache directory if needed.
func writeToken(file string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return fmt.Errorf("failed to create token cache directory: %w", err)
	}
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(file, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
