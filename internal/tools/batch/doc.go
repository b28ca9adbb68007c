// Package batch provides common utilities for batch operations across all MCP tools.
//
// This package includes helpers for:
//   - Parsing parameters that accept both single values and arrays
//   - Formatting batch results in a consistent structure
//   - Processing batch operations with Google APIs
//   - Handling partial failures in batch operations
//
// Membership tools use these helpers to add or remove several members in a
// single call while reporting per-member success and failure.
package batch
