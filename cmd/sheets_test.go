package cmd

import (
	"testing"
)

func TestParseValuesJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRows int
		wantErr  bool
	}{
		{
			name:     "single row",
			input:    `[["alice@example.com", "owner"]]`,
			wantRows: 1,
		},
		{
			name:     "multiple rows with mixed types",
			input:    `[["name", "count"], ["alice", 3], ["bob", 7]]`,
			wantRows: 3,
		},
		{
			name:    "empty array",
			input:   `[]`,
			wantErr: true,
		},
		{
			name:    "flat array instead of rows",
			input:   `["a", "b"]`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			input:   `a,b,c`,
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := parseValuesJSON(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseValuesJSON(%q) expected error, got %v", tt.input, values)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseValuesJSON(%q) returned error: %v", tt.input, err)
			}
			if len(values) != tt.wantRows {
				t.Errorf("parseValuesJSON(%q) = %d rows, want %d", tt.input, len(values), tt.wantRows)
			}
		})
	}
}
