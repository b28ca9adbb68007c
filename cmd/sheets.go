package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traveloka/gsuite-go/internal/sheets"
)

// newSheetsClient builds a Sheets client from the shared auth flags
func newSheetsClient(ctx context.Context) (*sheets.Client, error) {
	cfg := authConfigFromFlags()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := sheets.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets client for account %s: %w", cfg.AccountName(), err)
	}
	return client, nil
}

// parseValuesJSON decodes a JSON array of rows like [["a","b"],[1,2]]
func parseValuesJSON(data string) ([][]interface{}, error) {
	var values [][]interface{}
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("invalid values JSON, expected an array of rows like [[\"a\",\"b\"]]: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("values must contain at least one row")
	}
	return values, nil
}

func newSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Read and write Google Sheets spreadsheets",
	}

	cmd.AddCommand(newSheetsGetCmd())
	cmd.AddCommand(newSheetsInfoCmd())
	cmd.AddCommand(newSheetsUpdateCmd())
	cmd.AddCommand(newSheetsAppendCmd())
	cmd.AddCommand(newSheetsClearCmd())
	cmd.AddCommand(newSheetsCreateCmd())
	cmd.AddCommand(newSheetsAddSheetCmd())

	return cmd
}

func newSheetsGetCmd() *cobra.Command {
	var majorDimension, valueRenderOption string

	cmd := &cobra.Command{
		Use:   "get <spreadsheet-id> <range>...",
		Short: "Read values from one or more ranges of a spreadsheet",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSheetsClient(cmd.Context())
			if err != nil {
				return err
			}

			opts := sheets.ReadOptions{
				MajorDimension:    majorDimension,
				ValueRenderOption: valueRenderOption,
			}

			spreadsheetID := args[0]
			ranges := args[1:]
			if len(ranges) == 1 {
				result, err := client.GetValues(spreadsheetID, ranges[0], opts)
				if err != nil {
					return fmt.Errorf("failed to get values: %w", err)
				}
				return printJSON(result)
			}

			results, err := client.BatchGetValues(spreadsheetID, ranges, opts)
			if err != nil {
				return fmt.Errorf("failed to get values: %w", err)
			}
			return printJSON(results)
		},
	}

	cmd.Flags().StringVar(&majorDimension, "major-dimension", "", "Major dimension of the result: ROWS or COLUMNS (default: ROWS)")
	cmd.Flags().StringVar(&valueRenderOption, "render", "", "How values are rendered: FORMATTED_VALUE, UNFORMATTED_VALUE or FORMULA")
	return cmd
}

func newSheetsInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <spreadsheet-id>",
		Short: "Show spreadsheet metadata and its sheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSheetsClient(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := client.GetSpreadsheet(args[0])
			if err != nil {
				return fmt.Errorf("failed to get spreadsheet: %w", err)
			}
			return printJSON(spreadsheet)
		},
	}
}

func newSheetsUpdateCmd() *cobra.Command {
	var valueInputOption, majorDimension string

	cmd := &cobra.Command{
		Use:   "update <spreadsheet-id> <range> <values-json>",
		Short: "Overwrite values in a range",
		Long: `Overwrite values in a range of a spreadsheet.

The values are given as a JSON array of rows, e.g.:

  gsuite sheets update 1abc... 'Sheet1!A1:B2' '[["name","count"],["alice",3]]'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValuesJSON(args[2])
			if err != nil {
				return err
			}

			client, err := newSheetsClient(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.UpdateValues(args[0], args[1], values, sheets.WriteOptions{
				ValueInputOption: valueInputOption,
				MajorDimension:   majorDimension,
			})
			if err != nil {
				return fmt.Errorf("failed to update values: %w", err)
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&valueInputOption, "input-option", "", "How input values are interpreted: RAW or USER_ENTERED (default: USER_ENTERED)")
	cmd.Flags().StringVar(&majorDimension, "major-dimension", "", "Major dimension of the input: ROWS or COLUMNS (default: ROWS)")
	return cmd
}

func newSheetsAppendCmd() *cobra.Command {
	var valueInputOption, majorDimension string

	cmd := &cobra.Command{
		Use:   "append <spreadsheet-id> <range> <values-json>",
		Short: "Append rows after the last row of data in a range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValuesJSON(args[2])
			if err != nil {
				return err
			}

			client, err := newSheetsClient(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.AppendValues(args[0], args[1], values, sheets.WriteOptions{
				ValueInputOption: valueInputOption,
				MajorDimension:   majorDimension,
			})
			if err != nil {
				return fmt.Errorf("failed to append values: %w", err)
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&valueInputOption, "input-option", "", "How input values are interpreted: RAW or USER_ENTERED (default: USER_ENTERED)")
	cmd.Flags().StringVar(&majorDimension, "major-dimension", "", "Major dimension of the input: ROWS or COLUMNS (default: ROWS)")
	return cmd
}

func newSheetsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <spreadsheet-id> <range>",
		Short: "Clear values from a range, keeping formatting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSheetsClient(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.ClearValues(args[0], args[1]); err != nil {
				return fmt.Errorf("failed to clear values: %w", err)
			}
			fmt.Printf("Cleared range %s\n", args[1])
			return nil
		},
	}
}

func newSheetsCreateCmd() *cobra.Command {
	var sheetTitles []string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSheetsClient(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := client.CreateSpreadsheet(args[0], sheetTitles...)
			if err != nil {
				return fmt.Errorf("failed to create spreadsheet: %w", err)
			}
			return printJSON(spreadsheet)
		},
	}

	cmd.Flags().StringSliceVar(&sheetTitles, "sheet", nil, "Title of a sheet to create (repeatable; default: a single 'Sheet1')")
	return cmd
}

func newSheetsAddSheetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-sheet <spreadsheet-id> <title>",
		Short: "Add a new sheet to an existing spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSheetsClient(cmd.Context())
			if err != nil {
				return err
			}

			sheet, err := client.AddSheet(args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add sheet: %w", err)
			}
			return printJSON(sheet)
		},
	}
}
