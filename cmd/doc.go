// Package cmd implements the command-line interface for gsuite.
//
// This package provides the following commands:
//   - auth: Run the OAuth authorization flow and cache a token for an account
//   - groups: Manage Google Groups, their members and settings
//   - sheets: Read and write Google Sheets spreadsheets
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// Authentication is configured through persistent flags (--auth-mode,
// --credentials-file, --delegated-email, --account) or their GSUITE_*
// environment variable equivalents.
package cmd
