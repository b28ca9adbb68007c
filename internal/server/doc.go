// Package server provides the MCP server context and operational HTTP
// endpoints for the gsuite application.
//
// # Key Components
//
// ServerContext manages Google API clients with lazy initialization and caching.
// It supports multiple named accounts: clients for the Admin Directory, Groups
// Settings, and Sheets services are created on first use and reused for the
// lifetime of the server.
//
// HealthChecker exposes Kubernetes-style liveness and readiness probes
// (/healthz, /readyz, /healthz/detailed).
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolated from
// the main MCP traffic.
package server
