// Package sheets_tools provides MCP tools for working with Google Sheets.
//
// This package implements MCP (Model Context Protocol) tools that wrap the
// Sheets client functionality, providing spreadsheet read and write
// capabilities for AI assistants.
//
// # Available Tools
//
// Reading:
//   - sheets_get_values: Read a range of values
//   - sheets_batch_get_values: Read multiple ranges in one call
//   - sheets_get_spreadsheet: Get spreadsheet metadata
//
// Writing:
//   - sheets_update_values: Overwrite a range of values
//   - sheets_append_values: Append rows after a table
//   - sheets_clear_values: Clear a range of values
//   - sheets_create_spreadsheet: Create a new spreadsheet
//   - sheets_add_sheet: Add a sheet (tab) to a spreadsheet
//
// # Multi-Account Support
//
// All tools support an optional 'account' parameter to specify which Google account
// to use. If not provided, the 'default' account is used.
//
// # Read-Only Mode
//
// When the server runs in read-only mode only the read tools are registered.
//
// # Authentication
//
// With service account credentials all tools work immediately. With the
// server-side OAuth flow, tokens are loaded from the file system
// (~/.cache/gsuite/). If no valid token exists, tools will return an error
// with authentication instructions.
package sheets_tools
