package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/traveloka/gsuite-go/internal/google"
	"github.com/traveloka/gsuite-go/internal/groups"
	"github.com/traveloka/gsuite-go/internal/instrumentation"
	"github.com/traveloka/gsuite-go/internal/logging"
	"github.com/traveloka/gsuite-go/internal/sheets"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx           context.Context
	cancel        context.CancelFunc
	authCfg       *google.Config
	tokenProvider google.TokenProvider
	groupsClients map[string]*groups.Client // Maps account name to Groups client
	sheetsClients map[string]*sheets.Client // Maps account name to Sheets client
	metrics       *instrumentation.Metrics
	auditLogger   *instrumentation.AuditLogger
	mu            sync.RWMutex
	shutdown      bool
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context, authCfg *google.Config) (*ServerContext, error) {
	if authCfg == nil {
		return nil, fmt.Errorf("auth config must not be nil")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	tokenProvider := google.NewFileTokenProvider(authCfg)

	// Initialize client maps
	groupsClients := make(map[string]*groups.Client)
	sheetsClients := make(map[string]*sheets.Client)

	// Try to create default Groups client, but don't fail if credentials are
	// missing. Clients will be lazily initialized when first needed.
	if tokenProvider.HasTokenForAccount("default") {
		groupsClient, err := groups.NewClient(shutdownCtx, authCfg.WithAccount("default"))
		if err != nil {
			// Log but don't fail - will be re-attempted on first use
			slog.Warn("failed to create Groups client",
				logging.Account("default"), logging.Err(err))
		} else {
			groupsClients["default"] = groupsClient
		}
	}

	return &ServerContext{
		ctx:           shutdownCtx,
		cancel:        cancel,
		authCfg:       authCfg,
		tokenProvider: tokenProvider,
		groupsClients: groupsClients,
		sheetsClients: sheetsClients,
		shutdown:      false,
	}, nil
}

// TokenProvider returns the token provider used to decide whether a client
// can be constructed for an account without user interaction.
func (sc *ServerContext) TokenProvider() google.TokenProvider {
	return sc.tokenProvider
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// AuthConfig returns the authentication configuration.
func (sc *ServerContext) AuthConfig() *google.Config {
	return sc.authCfg
}

// GroupsClientForAccount returns the Groups client for a specific account
// Creates and caches the client if it doesn't exist yet
// Returns nil if the account has no usable credentials
func (sc *ServerContext) GroupsClientForAccount(account string) *groups.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Check if client already exists
	if client, ok := sc.groupsClients[account]; ok {
		return client
	}

	// Try to create client if credentials exist
	if !sc.tokenProvider.HasTokenForAccount(account) {
		return nil
	}

	client, err := groups.NewClient(sc.ctx, sc.authCfg.WithAccount(account))
	if err != nil {
		slog.Warn("failed to create Groups client",
			logging.Account(account), logging.Err(err))
		return nil
	}

	sc.groupsClients[account] = client
	return client
}

// GroupsClient returns the Groups client for the default account
func (sc *ServerContext) GroupsClient() *groups.Client {
	return sc.GroupsClientForAccount("default")
}

// SetGroupsClientForAccount sets the Groups client for a specific account
func (sc *ServerContext) SetGroupsClientForAccount(account string, client *groups.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.groupsClients[account] = client
}

// SetGroupsClient sets the Groups client for the default account
func (sc *ServerContext) SetGroupsClient(client *groups.Client) {
	sc.SetGroupsClientForAccount("default", client)
}

// SheetsClientForAccount returns the Sheets client for a specific account
// Creates and caches the client if it doesn't exist yet
// Returns nil if the account has no usable credentials
func (sc *ServerContext) SheetsClientForAccount(account string) *sheets.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Check if client already exists
	if client, ok := sc.sheetsClients[account]; ok {
		return client
	}

	// Try to create client if credentials exist
	if !sc.tokenProvider.HasTokenForAccount(account) {
		return nil
	}

	client, err := sheets.NewClient(sc.ctx, sc.authCfg.WithAccount(account))
	if err != nil {
		slog.Warn("failed to create Sheets client",
			logging.Account(account), logging.Err(err))
		return nil
	}

	sc.sheetsClients[account] = client
	return client
}

// SheetsClient returns the Sheets client for the default account
func (sc *ServerContext) SheetsClient() *sheets.Client {
	return sc.SheetsClientForAccount("default")
}

// SetSheetsClientForAccount sets the Sheets client for a specific account
func (sc *ServerContext) SetSheetsClientForAccount(account string, client *sheets.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.sheetsClients[account] = client
}

// SetSheetsClient sets the Sheets client for the default account
func (sc *ServerContext) SetSheetsClient(client *sheets.Client) {
	sc.SetSheetsClientForAccount("default", client)
}

// Metrics returns the metrics recorder, or nil if instrumentation is not configured
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// AuditLogger returns the audit logger, or nil if audit logging is not configured
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger
func (sc *ServerContext) SetAuditLogger(logger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = logger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
