// Package sheets provides a client for reading and writing Google Sheets.
//
// This package wraps the Google Sheets API (sheets/v4) and provides
// functionality for:
//   - Reading ranges of values in A1 notation, with configurable major
//     dimension and value rendering
//   - Writing, appending and clearing ranges
//   - Creating spreadsheets and sheets, and reading spreadsheet metadata
//
// Reads default to FORMATTED_VALUE rendering with ROWS as the major
// dimension; writes default to USER_ENTERED input parsing, so values are
// interpreted exactly as if typed into the Sheets UI.
//
// The client authenticates through the internal/google package; see the
// groups package documentation for the two supported auth modes.
package sheets
