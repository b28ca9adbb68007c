package groups_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/traveloka/gsuite-go/internal/groups"
	"github.com/traveloka/gsuite-go/internal/server"
	"github.com/traveloka/gsuite-go/internal/tools/common"
)

// registerSettingsTools registers Groups Settings API tools
func registerSettingsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Get settings tool (read-only, always available)
	getSettingsTool := mcp.NewTool("groups_get_settings",
		mcp.WithDescription("Get the Groups Settings configuration of a Google Group (access, posting, moderation)"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("groupKey",
			mcp.Required(),
			mcp.Description("The group's email address"),
		),
	)

	s.AddTool(getSettingsTool, common.InstrumentedToolHandlerWithService(
		"groups_get_settings", "groupssettings", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetSettings(ctx, request, sc)
		}))

	// Register update settings tool only if not in read-only mode
	if !readOnly {
		updateSettingsTool := mcp.NewTool("groups_update_settings",
			mcp.WithDescription("Update the Groups Settings configuration of a Google Group. Accepts a JSON object of settings fields, e.g. {\"whoCanJoin\": \"INVITED_CAN_JOIN\", \"allowExternalMembers\": false}"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("groupKey",
				mcp.Required(),
				mcp.Description("The group's email address"),
			),
			mcp.WithString("settings",
				mcp.Required(),
				mcp.Description("JSON object with the settings fields to change"),
			),
		)

		s.AddTool(updateSettingsTool, common.InstrumentedToolHandlerWithService(
			"groups_update_settings", "groupssettings", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateSettings(ctx, request, sc)
			}))
	}

	return nil
}

func handleGetSettings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	groupKey, ok := args["groupKey"].(string)
	if !ok || groupKey == "" {
		return mcp.NewToolResultError("groupKey is required"), nil
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	settings, err := client.GetGroupSettings(groupKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get group settings: %v", err)), nil
	}

	result, _ := json.MarshalIndent(settings, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleUpdateSettings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	groupKey, ok := args["groupKey"].(string)
	if !ok || groupKey == "" {
		return mcp.NewToolResultError("groupKey is required"), nil
	}

	settings, err := parseSettingsArg(args["settings"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated, err := client.UpdateGroupSettings(groupKey, settings)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update group settings: %v", err)), nil
	}

	result, _ := json.MarshalIndent(updated, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Group settings updated successfully:\n%s", string(result))), nil
}

// parseSettingsArg decodes the settings parameter, which may arrive as a JSON
// object or as a JSON string depending on the MCP client
func parseSettingsArg(arg interface{}) (*groups.GroupSettings, error) {
	if arg == nil {
		return nil, fmt.Errorf("settings is required")
	}

	var raw []byte
	switch v := arg.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("settings is required")
		}
		raw = []byte(v)
	case map[string]interface{}:
		var err error
		raw, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("invalid settings object: %w", err)
		}
	default:
		return nil, fmt.Errorf("settings must be a JSON object or JSON string")
	}

	settings := &groups.GroupSettings{}
	if err := json.Unmarshal(raw, settings); err != nil {
		return nil, fmt.Errorf("invalid settings JSON: %w", err)
	}
	return settings, nil
}
