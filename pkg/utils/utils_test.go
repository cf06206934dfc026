package utils

import (
	"testing"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		length   int
		expected string
	}{
		{"hello world", 5, "he..."},
		{"short", 10, "short"},
		{"exact", 5, "exact"},
		{"", 5, ""},
		{"abc", 2, "ab"},
		{"abc", 3, "abc"},
	}

	for _, tt := range tests {
		result := TruncateString(tt.input, tt.length)
		if result != tt.expected {
			t.Errorf("TruncateString(%q, %d) = %q; want %q", tt.input, tt.length, result, tt.expected)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		input    string
		sep      string
		expected string
	}{
		{"123", ",", "123"},
		{"1234", ",", "1,234"},
		{"123456", ",", "123,456"},
		{"1234567", ",", "1,234,567"},
		{"-1234", ",", "-1,234"},
		{"1234567", " ", "1 234 567"},
		{"1234567", "", "1234567"},
		{"abc1234", ",", "abc1,234"},
		{"1234abc", ",", "1234abc"},
		{"12 34567", ".", "12 34.567"},
		{"", ",", ""},
	}

	for _, tt := range tests {
		result := GroupDigits(tt.input, tt.sep)
		if result != tt.expected {
			t.Errorf("GroupDigits(%q, %q) = %q; want %q", tt.input, tt.sep, result, tt.expected)
		}
	}
}
