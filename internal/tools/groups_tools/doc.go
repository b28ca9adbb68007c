// Package groups_tools provides MCP tools for managing Google Groups.
//
// This package implements MCP (Model Context Protocol) tools that wrap the
// Admin Directory and Groups Settings client functionality, providing group,
// membership and settings management capabilities for AI assistants.
//
// # Available Tools
//
// Group Management:
//   - groups_list_groups: List groups in a domain or customer account
//   - groups_get_group: Get details of a specific group
//   - groups_create_group: Create a new group
//   - groups_update_group: Update a group's name or description
//   - groups_delete_group: Delete a group
//
// Membership Management:
//   - groups_list_members: List all members of a group
//   - groups_get_member: Get details of a specific member
//   - groups_has_member: Check whether a user is a member of a group
//   - groups_add_members: Add one or more members to a group
//   - groups_update_member: Update a member's role or delivery settings
//   - groups_remove_members: Remove one or more members from a group
//
// Group Settings:
//   - groups_get_settings: Get the Groups Settings configuration of a group
//   - groups_update_settings: Update the Groups Settings configuration
//
// # Multi-Account Support
//
// All tools support an optional 'account' parameter to specify which Google account
// to use. If not provided, the 'default' account is used.
//
// # Read-Only Mode
//
// When the server runs in read-only mode only the list, get and check tools
// are registered. All tools that create, change or delete groups, members or
// settings are left out.
//
// # Authentication
//
// With service account credentials all tools work immediately. With the
// server-side OAuth flow, tokens are loaded from the file system
// (~/.cache/gsuite/). If no valid token exists, tools will return an error
// with authentication instructions.
package groups_tools
