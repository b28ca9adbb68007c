// Package google provides credential loading and OAuth2 token management for
// the Google Workspace APIs used by this library.
//
// Two authentication modes are supported:
//
//   - service_account: a service account JSON key with domain-wide delegation.
//     The delegated email address (the impersonated admin user) is required.
//   - server_side: a 3-legged installed-app OAuth2 flow. The authorization
//     code is collected through a redirect server on a local port and the
//     resulting token is cached on disk per account.
//
// Tokens for the server_side mode are stored per-account in the user's cache
// directory and refreshed transparently. The TokenProvider interface allows
// other token sources to be plugged in, e.g. for MCP server deployments.
package google
