package groups_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/traveloka/gsuite-go/internal/groups"
	"github.com/traveloka/gsuite-go/internal/instrumentation"
	"github.com/traveloka/gsuite-go/internal/server"
	"github.com/traveloka/gsuite-go/internal/tools/batch"
	"github.com/traveloka/gsuite-go/internal/tools/common"
)

// recordMembershipChange records a membership mutation metric if metrics are configured
func recordMembershipChange(ctx context.Context, sc *server.ServerContext, action string, err error) {
	metrics := sc.Metrics()
	if metrics == nil {
		return
	}
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	metrics.RecordMembershipChange(ctx, action, status)
}

// registerMemberTools registers group membership tools
func registerMemberTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List members tool (read-only, always available)
	listMembersTool := mcp.NewTool("groups_list_members",
		mcp.WithDescription("List all members of a Google Group"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("groupKey",
			mcp.Required(),
			mcp.Description("The group's email address or unique ID"),
		),
	)

	s.AddTool(listMembersTool, common.InstrumentedToolHandlerWithService(
		"groups_list_members", "groups", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListMembers(ctx, request, sc)
		}))

	// Get member tool
	getMemberTool := mcp.NewTool("groups_get_member",
		mcp.WithDescription("Get details of a specific group member"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("groupKey",
			mcp.Required(),
			mcp.Description("The group's email address or unique ID"),
		),
		mcp.WithString("memberKey",
			mcp.Required(),
			mcp.Description("The member's email address or unique ID"),
		),
	)

	s.AddTool(getMemberTool, common.InstrumentedToolHandlerWithService(
		"groups_get_member", "groups", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMember(ctx, request, sc)
		}))

	// Has member tool
	hasMemberTool := mcp.NewTool("groups_has_member",
		mcp.WithDescription("Check whether a user is a member of a Google Group"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("groupKey",
			mcp.Required(),
			mcp.Description("The group's email address or unique ID"),
		),
		mcp.WithString("memberKey",
			mcp.Required(),
			mcp.Description("The member's email address or unique ID"),
		),
	)

	s.AddTool(hasMemberTool, common.InstrumentedToolHandlerWithService(
		"groups_has_member", "groups", "check", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleHasMember(ctx, request, sc)
		}))

	// Register add/update/remove member tools only if not in read-only mode
	if !readOnly {
		// Add members tool
		addMembersTool := mcp.NewTool("groups_add_members",
			mcp.WithDescription("Add one or more members to a Google Group"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("groupKey",
				mcp.Required(),
				mcp.Description("The group's email address or unique ID"),
			),
			mcp.WithString("emails",
				mcp.Required(),
				mcp.Description("Member email address (string) or array of email addresses to add"),
			),
			mcp.WithString("role",
				mcp.Description("Role for the new members: OWNER, MANAGER or MEMBER (default: MEMBER)"),
			),
			mcp.WithString("type",
				mcp.Description("Member type: USER, GROUP, CUSTOMER or EXTERNAL (default: USER)"),
			),
			mcp.WithString("deliverySettings",
				mcp.Description("Mail delivery: ALL_MAIL, DAILY, DIGEST, DISABLED or NONE (default: ALL_MAIL)"),
			),
		)

		s.AddTool(addMembersTool, common.InstrumentedToolHandlerWithService(
			"groups_add_members", "groups", "create", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleAddMembers(ctx, request, sc)
			}))

		// Update member tool
		updateMemberTool := mcp.NewTool("groups_update_member",
			mcp.WithDescription("Update a group member's role or delivery settings"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("groupKey",
				mcp.Required(),
				mcp.Description("The group's email address or unique ID"),
			),
			mcp.WithString("memberKey",
				mcp.Required(),
				mcp.Description("The member's email address or unique ID"),
			),
			mcp.WithString("role",
				mcp.Description("New role: OWNER, MANAGER or MEMBER"),
			),
			mcp.WithString("deliverySettings",
				mcp.Description("New mail delivery: ALL_MAIL, DAILY, DIGEST, DISABLED or NONE"),
			),
		)

		s.AddTool(updateMemberTool, common.InstrumentedToolHandlerWithService(
			"groups_update_member", "groups", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateMember(ctx, request, sc)
			}))

		// Remove members tool
		removeMembersTool := mcp.NewTool("groups_remove_members",
			mcp.WithDescription("Remove one or more members from a Google Group"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("groupKey",
				mcp.Required(),
				mcp.Description("The group's email address or unique ID"),
			),
			mcp.WithString("memberKeys",
				mcp.Required(),
				mcp.Description("Member email address (string) or array of email addresses to remove"),
			),
		)

		s.AddTool(removeMembersTool, common.InstrumentedToolHandlerWithService(
			"groups_remove_members", "groups", "delete", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleRemoveMembers(ctx, request, sc)
			}))
	}

	return nil
}

func handleListMembers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	members, err := client.ListMembers(groupKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list members: %v", err)), nil
	}

	result, _ := json.MarshalIndent(members, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleGetMember(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	groupKey, ok := args["groupKey"].(string)
	if !ok || groupKey == "" {
		return mcp.NewToolResultError("groupKey is required"), nil
	}

	memberKey, ok := args["memberKey"].(string)
	if !ok || memberKey == "" {
		return mcp.NewToolResultError("memberKey is required"), nil
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	member, err := client.GetMember(groupKey, memberKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get member: %v", err)), nil
	}

	result, _ := json.MarshalIndent(member, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleHasMember(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	groupKey, ok := args["groupKey"].(string)
	if !ok || groupKey == "" {
		return mcp.NewToolResultError("groupKey is required"), nil
	}

	memberKey, ok := args["memberKey"].(string)
	if !ok || memberKey == "" {
		return mcp.NewToolResultError("memberKey is required"), nil
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	isMember, err := client.HasMember(groupKey, memberKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to check membership: %v", err)), nil
	}

	if isMember {
		return mcp.NewToolResultText(fmt.Sprintf("%s is a member of %s", memberKey, groupKey)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s is not a member of %s", memberKey, groupKey)), nil
}

func handleAddMembers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	groupKey, ok := args["groupKey"].(string)
	if !ok || groupKey == "" {
		return mcp.NewToolResultError("groupKey is required"), nil
	}

	emails, err := batch.ParseStringOrArray(args["emails"], "emails")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	role := groups.RoleMember
	if r, ok := args["role"].(string); ok && r != "" {
		role = r
	}

	memberType := ""
	if t, ok := args["type"].(string); ok {
		memberType = t
	}

	deliverySettings := ""
	if d, ok := args["deliverySettings"].(string); ok {
		deliverySettings = d
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(emails, func(email string) (string, error) {
		input := groups.MemberInput{
			Email:            email,
			Role:             role,
			Type:             memberType,
			DeliverySettings: deliverySettings,
		}
		member, err := client.AddMember(groupKey, input)
		recordMembershipChange(ctx, sc, "add", err)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Member %s added to %s with role %s", member.Email, groupKey, member.Role), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleUpdateMember(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	groupKey, ok := args["groupKey"].(string)
	if !ok || groupKey == "" {
		return mcp.NewToolResultError("groupKey is required"), nil
	}

	memberKey, ok := args["memberKey"].(string)
	if !ok || memberKey == "" {
		return mcp.NewToolResultError("memberKey is required"), nil
	}

	role := ""
	if r, ok := args["role"].(string); ok {
		role = r
	}

	deliverySettings := ""
	if d, ok := args["deliverySettings"].(string); ok {
		deliverySettings = d
	}

	if role == "" && deliverySettings == "" {
		return mcp.NewToolResultError("at least one of 'role' or 'deliverySettings' is required"), nil
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	member, err := client.UpdateMember(groupKey, memberKey, role, deliverySettings)
	recordMembershipChange(ctx, sc, "update", err)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update member: %v", err)), nil
	}

	result, _ := json.MarshalIndent(member, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Member updated successfully:\n%s", string(result))), nil
}

func handleRemoveMembers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	groupKey, ok := args["groupKey"].(string)
	if !ok || groupKey == "" {
		return mcp.NewToolResultError("groupKey is required"), nil
	}

	memberKeys, err := batch.ParseStringOrArray(args["memberKeys"], "memberKeys")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGroupsClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(memberKeys, func(memberKey string) (string, error) {
		err := client.DeleteMember(groupKey, memberKey)
		recordMembershipChange(ctx, sc, "remove", err)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Member %s removed from %s", memberKey, groupKey), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}
