package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/traveloka/gsuite-go/internal/google"
)

// rootCmd represents the base command for the gsuite application
var rootCmd = &cobra.Command{
	Use:   "gsuite",
	Short: "Manage Google Workspace groups and spreadsheets",
	Long: `gsuite is a thin client for the Google Workspace APIs. It manages
Google Groups (Admin Directory and Groups Settings APIs) and reads and
writes Google Sheets spreadsheets.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// Shared authentication flags, bound as persistent flags on the root command
var (
	authMode        string
	credentialsFile string
	delegatedEmail  string
	localServerPort int
	accountName     string
)

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gsuite version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&authMode, "auth-mode", "", "Authentication mode: service_account or server_side. Can also use GSUITE_AUTH_MODE env var. Default: server_side")
	rootCmd.PersistentFlags().StringVar(&credentialsFile, "credentials-file", "", "Path to the Google credentials JSON file (service account key or OAuth client secrets). Can also use GSUITE_CREDENTIALS_FILE env var.")
	rootCmd.PersistentFlags().StringVar(&delegatedEmail, "delegated-email", "", "Admin email to impersonate with domain-wide delegation (service_account mode). Can also use GSUITE_DELEGATED_EMAIL env var.")
	rootCmd.PersistentFlags().IntVar(&localServerPort, "local-server-port", 0, "Local port for the OAuth redirect server (server_side mode). Can also use GSUITE_LOCAL_SERVER_PORT env var. Default: 8089")
	rootCmd.PersistentFlags().StringVar(&accountName, "account", "default", "Google account name to use (default: 'default')")

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newGroupsCmd())
	rootCmd.AddCommand(newSheetsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gsuite version %s\n", version)
		},
	}
}

// authConfigFromFlags builds the auth configuration from flags, falling back
// to environment variables for values not set on the command line.
func authConfigFromFlags() *google.Config {
	mode := authMode
	if mode == "" {
		mode = os.Getenv("GSUITE_AUTH_MODE")
	}
	if mode == "" {
		mode = string(google.AuthModeServerSide)
	}

	creds := credentialsFile
	if creds == "" {
		creds = os.Getenv("GSUITE_CREDENTIALS_FILE")
	}

	delegated := delegatedEmail
	if delegated == "" {
		delegated = os.Getenv("GSUITE_DELEGATED_EMAIL")
	}

	port := localServerPort
	if port == 0 {
		if portStr := os.Getenv("GSUITE_LOCAL_SERVER_PORT"); portStr != "" {
			if p, err := strconv.Atoi(portStr); err == nil {
				port = p
			}
		}
	}
	if port == 0 {
		port = 8089
	}

	return &google.Config{
		Mode:            google.AuthMode(mode),
		CredentialsFile: creds,
		DelegatedEmail:  delegated,
		LocalServerPort: port,
		Account:         accountName,
	}
}

// printJSON writes v to stdout as indented JSON
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// unmarshalStrict decodes a JSON object into v, rejecting unknown fields so
// that typos in settings keys fail loudly instead of being silently dropped.
func unmarshalStrict(data string, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
