package cmd

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		expected string
	}{
		{
			name:     "groups tool",
			toolName: "groups_list_groups",
			expected: "Google Groups Tools",
		},
		{
			name:     "groups settings tool",
			toolName: "groups_update_settings",
			expected: "Google Groups Tools",
		},
		{
			name:     "sheets tool",
			toolName: "sheets_get_values",
			expected: "Google Sheets Tools",
		},
		{
			name:     "auth tool",
			toolName: "google_get_auth_url",
			expected: "Authentication Tools",
		},
		{
			name:     "unknown prefix",
			toolName: "calendar_list_events",
			expected: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := getCategoryFromToolName(tt.toolName)
			if result != tt.expected {
				t.Errorf("getCategoryFromToolName(%q) = %q, want %q", tt.toolName, result, tt.expected)
			}
		})
	}
}

func TestGenerateToolsMarkdown(t *testing.T) {
	tools := []mcp.Tool{
		{
			Name:        "groups_get_group",
			Description: "Get details of a Google Group",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"groupKey": map[string]interface{}{
						"type":        "string",
						"description": "Email address or unique ID of the group",
					},
					"account": map[string]interface{}{
						"type":        "string",
						"description": "Google account name",
					},
				},
				Required: []string{"groupKey"},
			},
		},
		{
			Name:        "sheets_get_values",
			Description: "Read values from a spreadsheet range",
		},
	}

	markdown := generateToolsMarkdown(tools)

	for _, want := range []string{
		"# MCP Tools Reference",
		"## Google Groups Tools",
		"## Google Sheets Tools",
		"### groups_get_group",
		"### sheets_get_values",
		"`groupKey` (required)",
		"`account` (optional)",
	} {
		if !strings.Contains(markdown, want) {
			t.Errorf("generated markdown missing %q", want)
		}
	}
}

func TestContains(t *testing.T) {
	slice := []string{"groupKey", "email"}

	if !contains(slice, "groupKey") {
		t.Error("expected contains to find groupKey")
	}
	if contains(slice, "account") {
		t.Error("expected contains to not find account")
	}
	if contains(nil, "anything") {
		t.Error("expected contains on nil slice to be false")
	}
}
