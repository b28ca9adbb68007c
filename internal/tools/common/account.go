package common

import (
	"fmt"

	"github.com/traveloka/gsuite-go/internal/google"
)

// GetAccountFromArgs extracts the account name from request arguments,
// defaulting to "default".
func GetAccountFromArgs(args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}

// AuthRequiredMessage builds the instruction text returned when a tool is
// called for an account that has no usable credentials yet.
func AuthRequiredMessage(cfg *google.Config, account string) string {
	if cfg != nil && cfg.Mode == google.AuthModeServiceAccount {
		return fmt.Sprintf("service account credentials for account %q are not usable: check that the key file exists and DelegatedEmail is set", account)
	}

	instructions := fmt.Sprintf(`Google OAuth token not found for account "%s". To authorize access:

1. Visit the authorization URL in your browser
2. Sign in with your Google account
3. Grant access to Google Workspace (Groups, Group Settings, Sheets)
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the google_save_auth_code tool with account="%s" to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, account, account)

	if cfg == nil {
		return instructions
	}

	url, _, err := google.AuthURL(cfg.WithAccount(account), google.AllScopes...)
	if err != nil {
		return instructions
	}

	return fmt.Sprintf(`Google OAuth token not found for account "%s". To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Google Workspace (Groups, Group Settings, Sheets)
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the google_save_auth_code tool with account="%s" to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, account, url, account)
}
