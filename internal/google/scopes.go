package google

import (
	admin "google.golang.org/api/admin/directory/v1"
	groupssettings "google.golang.org/api/groupssettings/v1"
	sheets "google.golang.org/api/sheets/v4"
)

// GroupsScopes are the OAuth2 scopes required for the Groups client.
//
// If these scopes change, cached server_side tokens must be deleted so the
// authorization flow runs again with the new consent.
var GroupsScopes = []string{
	admin.AdminDirectoryGroupScope,
	admin.AdminDirectoryGroupMemberScope,
	groupssettings.AppsGroupsSettingsScope,
}

// SheetsScopes are the OAuth2 scopes required for the Sheets client.
var SheetsScopes = []string{
	sheets.SpreadsheetsScope,
}

// AllScopes is the union of every scope this library can request. The MCP
// server authorizes once with the full set so one token covers all tools.
var AllScopes = []string{
	admin.AdminDirectoryGroupScope,
	admin.AdminDirectoryGroupMemberScope,
	groupssettings.AppsGroupsSettingsScope,
	sheets.SpreadsheetsScope,
}
