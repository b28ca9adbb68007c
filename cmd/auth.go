package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traveloka/gsuite-go/internal/google"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to Google Workspace",
		Long: `Run the configured authentication mode and verify that credentials work.

In service_account mode this validates the key file and delegated email by
obtaining an access token. In server_side mode this runs the 3-legged OAuth
flow: a local redirect server is started, the browser authorization URL is
printed, and the resulting token is cached for later runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := authConfigFromFlags()
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := context.Background()
			token, err := google.Authorize(ctx, cfg, google.AllScopes...)
			if err != nil {
				return fmt.Errorf("authorization failed for account %s: %w", cfg.AccountName(), err)
			}

			fmt.Printf("Authorization successful for account %q\n", cfg.AccountName())
			if !token.Expiry.IsZero() {
				fmt.Printf("Access token valid until %s\n", token.Expiry.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}
