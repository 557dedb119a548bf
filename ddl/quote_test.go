package ddl

import (
	"fmt"
	"testing"
)

func TestNeedsQuoting(t *testing.T) {
	type testCase struct {
		name       string
		identifier string
		expected   bool
	}
	tests := []testCase{
		{"simple lowercase", "users", false},
		{"reserved word", "table", true},
		{"select keyword", "select", true},
		{"location keyword", "location", true},
		{"partition keyword", "partition", true},
		{"bigint type", "bigint", true},
		{"string type", "string", true},
		{"reserved regardless of case", "SELECT", true},
		{"with underscore", "user_name", false},
		{"starts with underscore", "_private", false},
		{"starts with number", "1table", true},
		{"contains dash", "user-table", true},
		{"contains space", "my table", true},
		{"empty string", "", false},
	}

	// adding all keywords as test cases to ensure all values are checked
	for reservedWord := range reservedWords {
		tests = append(tests, testCase{
			name:       fmt.Sprintf("reserved word: %q", reservedWord),
			identifier: reservedWord,
			expected:   true,
		})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NeedsQuoting(tt.identifier)
			if result != tt.expected {
				t.Errorf("NeedsQuoting(%q) = %v; want %v", tt.identifier, result, tt.expected)
			}
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"users", "users"},
		{"table", "`table`"},
		{"my col", "`my col`"},
		{"_ok", "_ok"},
	}
	for _, tt := range tests {
		if got := QuoteIdentifier(tt.identifier); got != tt.want {
			t.Errorf("QuoteIdentifier(%q) = %q; want %q", tt.identifier, got, tt.want)
		}
	}
}
