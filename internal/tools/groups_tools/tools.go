package groups_tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/traveloka/gsuite-go/internal/google"
	"github.com/traveloka/gsuite-go/internal/groups"
	"github.com/traveloka/gsuite-go/internal/server"
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

// getGroupsClient retrieves or creates a groups client for the specified account
func getGroupsClient(ctx context.Context, account string, sc *server.ServerContext) (*groups.Client, error) {
	client := sc.GroupsClientForAccount(account)
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
		client, err = groups.NewClient(ctx, cfg.WithAccount(account))
		if err != nil {
			return nil, fmt.Errorf("failed to create Groups client for account %s: %w", account, err)
		}
		sc.SetGroupsClientForAccount(account, client)
	}
	return client, nil
}

// RegisterGroupsTools registers all Groups-related tools with the MCP server
func RegisterGroupsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Register group management tools (some operations require !readOnly)
	if err := registerGroupTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register group tools: %w", err)
	}

	// Register membership tools (some operations require !readOnly)
	if err := registerMemberTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register member tools: %w", err)
	}

	// Register group settings tools (some operations require !readOnly)
	if err := registerSettingsTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register settings tools: %w", err)
	}

	return nil
}

// registerGroupTools registers group management tools
func registerGroupTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List groups tool (read-only, always available)
	listGroupsTool := mcp.NewTool("groups_list_groups",
		mcp.WithDescription("List Google Groups in the domain or customer account, with an optional search query"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("domain",
			mcp.Description("Restrict results to groups of this domain"),
		),
		mcp.WithString("customer",
			mcp.Description("Customer ID to list groups for (default: 'my_customer' when no domain is given)"),
		),
		mcp.WithString("query",
			mcp.Description("Directory API search query, e.g. 'email:devops-*'"),
		),
	)

	s.AddTool(listGroupsTool, common.InstrumentedToolHandlerWithService(
		"groups_list_groups", "groups", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListGroups(ctx, request, sc)
		}))

	// Get group tool
	getGroupTool := mcp.NewTool("groups_get_group",
		mcp.WithDescription("Get details of a specific Google Group"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("groupKey",
			mcp.Required(),
			mcp.Description("The group's email address or unique ID"),
		),
	)

	s.AddTool(getGroupTool, common.InstrumentedToolHandlerWithService(
		"groups_get_group", "groups", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetGroup(ctx, request, sc)
		}))

	// Register create/update/delete group tools only if not in read-only mode
	if !readOnly {
		// Create group tool
		createGroupTool := mcp.NewTool("groups_create_group",
			mcp.WithDescription("Create a new Google Group"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("email",
				mcp.Required(),
				mcp.Description("The email address of the new group"),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The display name of the new group"),
			),
			mcp.WithString("description",
				mcp.Description("A description of the group's purpose"),
			),
		)

		s.AddTool(createGroupTool, common.InstrumentedToolHandlerWithService(
			"groups_create_group", "groups", "create", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCreateGroup(ctx, request, sc)
			}))

		// Update group tool
		updateGroupTool := mcp.NewTool("groups_update_group",
			mcp.WithDescription("Update a Google Group's name or description"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("groupKey",
				mcp.Required(),
				mcp.Description("The group's email address or unique ID"),
			),
			mcp.WithString("name",
				mcp.Description("New display name for the group"),
			),
			mcp.WithString("description",
				mcp.Description("New description for the group"),
			),
		)

		s.AddTool(updateGroupTool, common.InstrumentedToolHandlerWithService(
			"groups_update_group", "groups", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateGroup(ctx, request, sc)
			}))

		// Delete group tool
		deleteGroupTool := mcp.NewTool("groups_delete_group",
			mcp.WithDescription("Delete a Google Group"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("groupKey",
				mcp.Required(),
				mcp.Description("The group's email address or unique ID"),
			),
		)

		s.AddTool(deleteGroupTool, common.InstrumentedToolHandlerWithService(
			"groups_delete_group", "groups", "delete", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleDeleteGroup(ctx, request, sc)
			}))
	}

	return nil
}

func handleListGroups(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	opts := groups.ListGroupsOptions{}
	if domain, ok := args["domain"].(string); ok {
		opts.Domain = domain
	}
	if customer, ok := args["customer"].(string); ok {
		opts.Customer = customer
	}
	if query, ok := args["query"].(string); ok {
		opts.Query = query
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	groupList, err := client.ListGroups(opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list groups: %v", err)), nil
	}

	result, _ := json.MarshalIndent(groupList, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleGetGroup(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	group, err := client.GetGroup(groupKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get group: %v", err)), nil
	}

	result, _ := json.MarshalIndent(group, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleCreateGroup(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	email, ok := args["email"].(string)
	if !ok || email == "" {
		return mcp.NewToolResultError("email is required"), nil
	}

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	description := ""
	if d, ok := args["description"].(string); ok {
		description = d
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	group, err := client.CreateGroup(email, name, description)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create group: %v", err)), nil
	}

	result, _ := json.MarshalIndent(group, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Group created successfully:\n%s", string(result))), nil
}

func handleUpdateGroup(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	groupKey, ok := args["groupKey"].(string)
	if !ok || groupKey == "" {
		return mcp.NewToolResultError("groupKey is required"), nil
	}

	name := ""
	if n, ok := args["name"].(string); ok {
		name = n
	}

	description := ""
	if d, ok := args["description"].(string); ok {
		description = d
	}

	if name == "" && description == "" {
		return mcp.NewToolResultError("at least one of 'name' or 'description' is required"), nil
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	group, err := client.UpdateGroup(groupKey, name, description)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update group: %v", err)), nil
	}

	result, _ := json.MarshalIndent(group, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Group updated successfully:\n%s", string(result))), nil
}

func handleDeleteGroup(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	if err := client.DeleteGroup(groupKey); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete group: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Group %s deleted successfully", groupKey)), nil
}
