package sheets_tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/traveloka/gsuite-go/internal/google"
	"github.com/traveloka/gsuite-go/internal/server"
	"github.com/traveloka/gsuite-go/internal/sheets"
	"github.com/traveloka/gsuite-go/internal/tools/common"
)

// getAccountFromArgs extracts the account name from request arguments, defaulting to "default"
func getAccountFromArgs(args map[string]interface{}) string {
	account := "default"
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}
	return account
}

// getSheetsClient retrieves or creates a sheets client for the specified account
func getSheetsClient(ctx context.Context, account string, sc *server.ServerContext) (*sheets.Client, error) {
	client := sc.SheetsClientForAccount(account)
	if client == nil {
		cfg := sc.AuthConfig()
		if cfg == nil {
			return nil, errors.New("no OAuth configuration available")
		}

		// Check if credentials exist before trying to create the client
		if cfg.Mode != google.AuthModeServiceAccount && !google.HasTokenForAccount(account) {
			return nil, errors.New(common.AuthRequiredMessage(cfg, account))
		}

		var err error
		client, err = sheets.NewClient(ctx, cfg.WithAccount(account))
		if err != nil {
			return nil, fmt.Errorf("failed to create Sheets client for account %s: %w", account, err)
		}
		sc.SetSheetsClientForAccount(account, client)
	}
	return client, nil
}

// parseValuesArg decodes the values parameter, which may arrive as a JSON
// array of arrays or as a JSON string depending on the MCP client
func parseValuesArg(arg interface{}) ([][]interface{}, error) {
	if arg == nil {
		return nil, fmt.Errorf("values is required")
	}

	switch v := arg.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("values is required")
		}
		var rows [][]interface{}
		if err := json.Unmarshal([]byte(v), &rows); err != nil {
			return nil, fmt.Errorf("invalid values JSON: %w", err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("values cannot be empty")
		}
		return rows, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("values cannot be empty")
		}
		rows := make([][]interface{}, 0, len(v))
		for i, item := range v {
			row, ok := item.([]interface{})
			if !ok {
				return nil, fmt.Errorf("values[%d] must be an array", i)
			}
			rows = append(rows, row)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("values must be an array of arrays or a JSON string")
	}
}

// countCells returns the total number of cells in a value matrix
func countCells(values [][]interface{}) int64 {
	var n int64
	for _, row := range values {
		n += int64(len(row))
	}
	return n
}

// recordCellsWritten records a sheet write metric if metrics are configured
func recordCellsWritten(ctx context.Context, sc *server.ServerContext, operation string, values [][]interface{}) {
	metrics := sc.Metrics()
	if metrics == nil {
		return
	}
	metrics.RecordSheetCellsWritten(ctx, operation, countCells(values))
}

// RegisterSheetsTools registers all Sheets-related tools with the MCP server
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Register read tools (always available)
	if err := registerReadTools(s, sc); err != nil {
		return fmt.Errorf("failed to register sheet read tools: %w", err)
	}

	// Register write tools (require !readOnly)
	if !readOnly {
		if err := registerWriteTools(s, sc); err != nil {
			return fmt.Errorf("failed to register sheet write tools: %w", err)
		}
	}

	return nil
}

// registerReadTools registers spreadsheet read tools
func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Get values tool
	getValuesTool := mcp.NewTool("sheets_get_values",
		mcp.WithDescription("Read a range of values from a Google Sheets spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("The A1 notation range to read, e.g. 'Sheet1!A1:C10'"),
		),
		mcp.WithString("majorDimension",
			mcp.Description("Major dimension of the result: ROWS or COLUMNS (default: ROWS)"),
		),
		mcp.WithString("valueRenderOption",
			mcp.Description("How values are rendered: FORMATTED_VALUE, UNFORMATTED_VALUE or FORMULA (default: FORMATTED_VALUE)"),
		),
	)

	s.AddTool(getValuesTool, common.InstrumentedToolHandlerWithService(
		"sheets_get_values", "sheets", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetValues(ctx, request, sc)
		}))

	// Batch get values tool
	batchGetValuesTool := mcp.NewTool("sheets_batch_get_values",
		mcp.WithDescription("Read multiple ranges of values from a Google Sheets spreadsheet in one call"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("ranges",
			mcp.Required(),
			mcp.Description("A1 notation range (string) or array of ranges to read"),
		),
	)

	s.AddTool(batchGetValuesTool, common.InstrumentedToolHandlerWithService(
		"sheets_batch_get_values", "sheets", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleBatchGetValues(ctx, request, sc)
		}))

	// Get spreadsheet tool
	getSpreadsheetTool := mcp.NewTool("sheets_get_spreadsheet",
		mcp.WithDescription("Get metadata of a Google Sheets spreadsheet, including its sheets"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
	)

	s.AddTool(getSpreadsheetTool, common.InstrumentedToolHandlerWithService(
		"sheets_get_spreadsheet", "sheets", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetSpreadsheet(ctx, request, sc)
		}))

	return nil
}

// registerWriteTools registers spreadsheet mutation tools
func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Update values tool
	updateValuesTool := mcp.NewTool("sheets_update_values",
		mcp.WithDescription("Write values to a range of a Google Sheets spreadsheet, overwriting existing cells"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("The A1 notation range to write, e.g. 'Sheet1!A1'"),
		),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description("Array of row arrays to write, e.g. [[\"a\", 1], [\"b\", 2]]"),
		),
		mcp.WithString("valueInputOption",
			mcp.Description("How input is parsed: RAW or USER_ENTERED (default: USER_ENTERED)"),
		),
	)

	s.AddTool(updateValuesTool, common.InstrumentedToolHandlerWithService(
		"sheets_update_values", "sheets", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateValues(ctx, request, sc)
		}))

	// Append values tool
	appendValuesTool := mcp.NewTool("sheets_append_values",
		mcp.WithDescription("Append rows of values after the last row of a table in a Google Sheets spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("The A1 notation range locating the table to append to, e.g. 'Sheet1!A1'"),
		),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description("Array of row arrays to append, e.g. [[\"a\", 1], [\"b\", 2]]"),
		),
		mcp.WithString("valueInputOption",
			mcp.Description("How input is parsed: RAW or USER_ENTERED (default: USER_ENTERED)"),
		),
	)

	s.AddTool(appendValuesTool, common.InstrumentedToolHandlerWithService(
		"sheets_append_values", "sheets", "append", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAppendValues(ctx, request, sc)
		}))

	// Clear values tool
	clearValuesTool := mcp.NewTool("sheets_clear_values",
		mcp.WithDescription("Clear a range of values in a Google Sheets spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("The A1 notation range to clear, e.g. 'Sheet1!A1:C10'"),
		),
	)

	s.AddTool(clearValuesTool, common.InstrumentedToolHandlerWithService(
		"sheets_clear_values", "sheets", "clear", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleClearValues(ctx, request, sc)
		}))

	// Create spreadsheet tool
	createSpreadsheetTool := mcp.NewTool("sheets_create_spreadsheet",
		mcp.WithDescription("Create a new Google Sheets spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the new spreadsheet"),
		),
		mcp.WithString("sheetTitles",
			mcp.Description("Sheet title (string) or array of sheet titles to create in the new spreadsheet"),
		),
	)

	s.AddTool(createSpreadsheetTool, common.InstrumentedToolHandlerWithService(
		"sheets_create_spreadsheet", "sheets", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateSpreadsheet(ctx, request, sc)
		}))

	// Add sheet tool
	addSheetTool := mcp.NewTool("sheets_add_sheet",
		mcp.WithDescription("Add a new sheet (tab) to an existing Google Sheets spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the new sheet"),
		),
	)

	s.AddTool(addSheetTool, common.InstrumentedToolHandlerWithService(
		"sheets_add_sheet", "sheets", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAddSheet(ctx, request, sc)
		}))

	return nil
}
