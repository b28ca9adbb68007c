package sheets

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/traveloka/gsuite-go/internal/google"
)

// Sheets API read quota is 300 requests per minute per user.
const (
	defaultRequestsPerSecond = 4
	defaultBurst             = 4
)

// Client wraps the Google Sheets service.
type Client struct {
	svc     *sheets.Service
	account string
	ctx     context.Context
	limiter *rate.Limiter
}

// Account returns the account name this client is associated with.
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the account.
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClient creates a new Sheets client for the given credential config.
func NewClient(ctx context.Context, cfg *google.Config) (*Client, error) {
	httpClient, err := google.HTTPClient(ctx, cfg, google.SheetsScopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain Google credentials for account %s: %w", cfg.AccountName(), err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: cfg.AccountName(),
		ctx:     ctx,
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurst),
	}, nil
}

func (c *Client) wait() error {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}

// GetValues returns a range of values from a spreadsheet. The range uses A1
// notation, e.g. "Sheet1!A1:D10".
func (c *Client) GetValues(spreadsheetID, readRange string, opts ReadOptions) (*ValueRange, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	res, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).
		MajorDimension(opts.MajorDimension).
		ValueRenderOption(opts.ValueRenderOption).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get values %s from spreadsheet %s: %w", readRange, spreadsheetID, err)
	}

	result := toValueRange(res)
	return &result, nil
}

// BatchGetValues returns multiple ranges of values from a spreadsheet in a
// single call.
func (c *Client) BatchGetValues(spreadsheetID string, ranges []string, opts ReadOptions) ([]ValueRange, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("at least one range is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	res, err := c.svc.Spreadsheets.Values.BatchGet(spreadsheetID).
		Ranges(ranges...).
		MajorDimension(opts.MajorDimension).
		ValueRenderOption(opts.ValueRenderOption).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to batch get values from spreadsheet %s: %w", spreadsheetID, err)
	}

	var result []ValueRange
	for _, vr := range res.ValueRanges {
		result = append(result, toValueRange(vr))
	}
	return result, nil
}

// UpdateValues writes values to a range of a spreadsheet, replacing the
// existing data.
func (c *Client) UpdateValues(spreadsheetID, writeRange string, values [][]interface{}, opts WriteOptions) (*ValueRange, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	res, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, &sheets.ValueRange{
		MajorDimension: opts.MajorDimension,
		Values:         values,
	}).ValueInputOption(opts.ValueInputOption).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update values %s in spreadsheet %s: %w", writeRange, spreadsheetID, err)
	}

	return &ValueRange{
		Range:          res.UpdatedRange,
		MajorDimension: opts.MajorDimension,
		Values:         values,
	}, nil
}

// AppendValues appends rows of values after a table found within the given
// range.
func (c *Client) AppendValues(spreadsheetID, appendRange string, values [][]interface{}, opts WriteOptions) (*ValueRange, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	res, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, appendRange, &sheets.ValueRange{
		MajorDimension: opts.MajorDimension,
		Values:         values,
	}).ValueInputOption(opts.ValueInputOption).InsertDataOption("INSERT_ROWS").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to append values to %s in spreadsheet %s: %w", appendRange, spreadsheetID, err)
	}

	result := ValueRange{MajorDimension: opts.MajorDimension, Values: values}
	if res.Updates != nil {
		result.Range = res.Updates.UpdatedRange
	}
	return &result, nil
}

// ClearValues clears a range of values from a spreadsheet. Only the values
// are cleared; formatting and other properties are kept.
func (c *Client) ClearValues(spreadsheetID, clearRange string) error {
	if err := c.wait(); err != nil {
		return err
	}

	_, err := c.svc.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Do()
	if err != nil {
		return fmt.Errorf("failed to clear values %s in spreadsheet %s: %w", clearRange, spreadsheetID, err)
	}
	return nil
}

// GetSpreadsheet retrieves spreadsheet metadata, including its sheets.
func (c *Client) GetSpreadsheet(spreadsheetID string) (*Spreadsheet, error) {
	if err := c.wait(); err != nil {
		return nil, err
	}

	res, err := c.svc.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	result := toSpreadsheet(res)
	return &result, nil
}

// CreateSpreadsheet creates a new spreadsheet with the given title and
// optional initial sheet titles.
func (c *Client) CreateSpreadsheet(title string, sheetTitles ...string) (*Spreadsheet, error) {
	if title == "" {
		return nil, fmt.Errorf("spreadsheet title is required")
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}
	for _, st := range sheetTitles {
		spreadsheet.Sheets = append(spreadsheet.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{Title: st},
		})
	}

	created, err := c.svc.Spreadsheets.Create(spreadsheet).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet %s: %w", title, err)
	}

	result := toSpreadsheet(created)
	return &result, nil
}

// AddSheet adds a new sheet to an existing spreadsheet.
func (c *Client) AddSheet(spreadsheetID, title string) (*Sheet, error) {
	if title == "" {
		return nil, fmt.Errorf("sheet title is required")
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	res, err := c.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: title},
				},
			},
		},
		IncludeSpreadsheetInResponse: false,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet %s to spreadsheet %s: %w", title, spreadsheetID, err)
	}

	for _, reply := range res.Replies {
		if reply.AddSheet != nil && reply.AddSheet.Properties != nil {
			result := toSheet(&sheets.Sheet{Properties: reply.AddSheet.Properties})
			return &result, nil
		}
	}
	return nil, fmt.Errorf("add sheet reply missing for spreadsheet %s", spreadsheetID)
}
