package sheets_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/traveloka/gsuite-go/internal/server"
	"github.com/traveloka/gsuite-go/internal/sheets"
	"github.com/traveloka/gsuite-go/internal/tools/batch"
)

func handleGetValues(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	readRange, ok := args["range"].(string)
	if !ok || readRange == "" {
		return mcp.NewToolResultError("range is required"), nil
	}

	opts := sheets.ReadOptions{}
	if md, ok := args["majorDimension"].(string); ok {
		opts.MajorDimension = md
	}
	if vro, ok := args["valueRenderOption"].(string); ok {
		opts.ValueRenderOption = vro
	}

	client, err := getSheetsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	values, err := client.GetValues(spreadsheetID, readRange, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get values: %v", err)), nil
	}

	result, _ := json.MarshalIndent(values, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleBatchGetValues(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	ranges, err := batch.ParseStringOrArray(args["ranges"], "ranges")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getSheetsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	values, err := client.BatchGetValues(spreadsheetID, ranges, sheets.ReadOptions{})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get values: %v", err)), nil
	}

	result, _ := json.MarshalIndent(values, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleGetSpreadsheet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	client, err := getSheetsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	spreadsheet, err := client.GetSpreadsheet(spreadsheetID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get spreadsheet: %v", err)), nil
	}

	result, _ := json.MarshalIndent(spreadsheet, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleUpdateValues(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	writeRange, ok := args["range"].(string)
	if !ok || writeRange == "" {
		return mcp.NewToolResultError("range is required"), nil
	}

	values, err := parseValuesArg(args["values"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := sheets.WriteOptions{}
	if vio, ok := args["valueInputOption"].(string); ok {
		opts.ValueInputOption = vio
	}

	client, err := getSheetsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated, err := client.UpdateValues(spreadsheetID, writeRange, values, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update values: %v", err)), nil
	}
	recordCellsWritten(ctx, sc, "update", values)

	result, _ := json.MarshalIndent(updated, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Values updated successfully:\n%s", string(result))), nil
}

func handleAppendValues(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	appendRange, ok := args["range"].(string)
	if !ok || appendRange == "" {
		return mcp.NewToolResultError("range is required"), nil
	}

	values, err := parseValuesArg(args["values"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := sheets.WriteOptions{}
	if vio, ok := args["valueInputOption"].(string); ok {
		opts.ValueInputOption = vio
	}

	client, err := getSheetsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	appended, err := client.AppendValues(spreadsheetID, appendRange, values, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to append values: %v", err)), nil
	}
	recordCellsWritten(ctx, sc, "append", values)

	result, _ := json.MarshalIndent(appended, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Values appended successfully:\n%s", string(result))), nil
}

func handleClearValues(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	clearRange, ok := args["range"].(string)
	if !ok || clearRange == "" {
		return mcp.NewToolResultError("range is required"), nil
	}

	client, err := getSheetsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.ClearValues(spreadsheetID, clearRange); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear values: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Range %s cleared successfully", clearRange)), nil
}

func handleCreateSpreadsheet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	var sheetTitles []string
	if st, ok := args["sheetTitles"]; ok && st != nil {
		parsed, err := batch.ParseStringOrArray(st, "sheetTitles")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sheetTitles = parsed
	}

	client, err := getSheetsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	spreadsheet, err := client.CreateSpreadsheet(title, sheetTitles...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create spreadsheet: %v", err)), nil
	}

	result, _ := json.MarshalIndent(spreadsheet, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Spreadsheet created successfully:\n%s", string(result))), nil
}

func handleAddSheet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	client, err := getSheetsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sheet, err := client.AddSheet(spreadsheetID, title)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add sheet: %v", err)), nil
	}

	result, _ := json.MarshalIndent(sheet, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Sheet added successfully:\n%s", string(result))), nil
}
