package sheets

import (
	"fmt"

	sheets "google.golang.org/api/sheets/v4"
)

// ValueRange holds data within a range of a spreadsheet. Values is an array
// of arrays, the outer array following the major dimension and each inner
// array holding one cell per entry.
type ValueRange struct {
	// Range is the range the values cover, in A1 notation
	Range string `json:"range"`

	// MajorDimension is the major dimension of the values (ROWS or COLUMNS)
	MajorDimension string `json:"majorDimension"`

	// Values is the data that was read or is to be written
	Values [][]interface{} `json:"values"`
}

// Spreadsheet represents spreadsheet metadata.
type Spreadsheet struct {
	// ID is the spreadsheet ID
	ID string `json:"id"`

	// Title is the spreadsheet title
	Title string `json:"title"`

	// URL is the link for opening the spreadsheet in a browser
	URL string `json:"url,omitempty"`

	// Locale is the locale of the spreadsheet
	Locale string `json:"locale,omitempty"`

	// TimeZone is the time zone of the spreadsheet
	TimeZone string `json:"timeZone,omitempty"`

	// Sheets are the sheets within the spreadsheet
	Sheets []Sheet `json:"sheets,omitempty"`
}

// Sheet represents a single sheet within a spreadsheet.
type Sheet struct {
	// ID is the numeric sheet ID
	ID int64 `json:"id"`

	// Title is the sheet title
	Title string `json:"title"`

	// Index is the position of the sheet within the spreadsheet
	Index int64 `json:"index"`

	// RowCount is the number of rows in the sheet grid
	RowCount int64 `json:"rowCount,omitempty"`

	// ColumnCount is the number of columns in the sheet grid
	ColumnCount int64 `json:"columnCount,omitempty"`
}

// Major dimensions.
const (
	DimensionRows    = "ROWS"
	DimensionColumns = "COLUMNS"
)

// Value render options for reads.
const (
	RenderFormattedValue   = "FORMATTED_VALUE"
	RenderUnformattedValue = "UNFORMATTED_VALUE"
	RenderFormula          = "FORMULA"
)

// Value input options for writes.
const (
	InputRaw         = "RAW"
	InputUserEntered = "USER_ENTERED"
)

// ReadOptions controls how values are read from a spreadsheet.
type ReadOptions struct {
	// MajorDimension of the result (default ROWS)
	MajorDimension string

	// ValueRenderOption controls how values are represented (default
	// FORMATTED_VALUE)
	ValueRenderOption string
}

// Validate checks the options and applies the documented defaults.
func (o *ReadOptions) Validate() error {
	if o.MajorDimension == "" {
		o.MajorDimension = DimensionRows
	}
	switch o.MajorDimension {
	case DimensionRows, DimensionColumns:
	default:
		return fmt.Errorf("invalid major dimension %q: must be ROWS or COLUMNS", o.MajorDimension)
	}

	if o.ValueRenderOption == "" {
		o.ValueRenderOption = RenderFormattedValue
	}
	switch o.ValueRenderOption {
	case RenderFormattedValue, RenderUnformattedValue, RenderFormula:
	default:
		return fmt.Errorf("invalid value render option %q: must be one of FORMATTED_VALUE, UNFORMATTED_VALUE, FORMULA", o.ValueRenderOption)
	}
	return nil
}

// WriteOptions controls how values are written to a spreadsheet.
type WriteOptions struct {
	// ValueInputOption controls input parsing (default USER_ENTERED)
	ValueInputOption string

	// MajorDimension of the written values (default ROWS)
	MajorDimension string
}

// Validate checks the options and applies the documented defaults.
func (o *WriteOptions) Validate() error {
	if o.ValueInputOption == "" {
		o.ValueInputOption = InputUserEntered
	}
	switch o.ValueInputOption {
	case InputRaw, InputUserEntered:
	default:
		return fmt.Errorf("invalid value input option %q: must be RAW or USER_ENTERED", o.ValueInputOption)
	}

	if o.MajorDimension == "" {
		o.MajorDimension = DimensionRows
	}
	switch o.MajorDimension {
	case DimensionRows, DimensionColumns:
	default:
		return fmt.Errorf("invalid major dimension %q: must be ROWS or COLUMNS", o.MajorDimension)
	}
	return nil
}

// toValueRange converts a Sheets API value range to our ValueRange type.
func toValueRange(vr *sheets.ValueRange) ValueRange {
	if vr == nil {
		return ValueRange{}
	}
	return ValueRange{
		Range:          vr.Range,
		MajorDimension: vr.MajorDimension,
		Values:         vr.Values,
	}
}

// toSpreadsheet converts a Sheets API spreadsheet to our Spreadsheet type.
func toSpreadsheet(s *sheets.Spreadsheet) Spreadsheet {
	if s == nil {
		return Spreadsheet{}
	}

	result := Spreadsheet{
		ID:  s.SpreadsheetId,
		URL: s.SpreadsheetUrl,
	}
	if s.Properties != nil {
		result.Title = s.Properties.Title
		result.Locale = s.Properties.Locale
		result.TimeZone = s.Properties.TimeZone
	}
	for _, sh := range s.Sheets {
		result.Sheets = append(result.Sheets, toSheet(sh))
	}
	return result
}

// toSheet converts a Sheets API sheet to our Sheet type.
func toSheet(s *sheets.Sheet) Sheet {
	if s == nil || s.Properties == nil {
		return Sheet{}
	}

	result := Sheet{
		ID:    s.Properties.SheetId,
		Title: s.Properties.Title,
		Index: s.Properties.Index,
	}
	if s.Properties.GridProperties != nil {
		result.RowCount = s.Properties.GridProperties.RowCount
		result.ColumnCount = s.Properties.GridProperties.ColumnCount
	}
	return result
}
