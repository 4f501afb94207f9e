package utils

import "testing"

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   \t ", true},
		{"plain word", "table", false},
		{"word with padding", "  table  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.want {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "table 1", "table 1"},
		{"mixed case", "Table 1", "table 1"},
		{"surrounding whitespace", "  TABLE 1  ", "table 1"},
		{"inner whitespace preserved", "green  tea", "green  tea"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExceedsLength(t *testing.T) {
	if ExceedsLength("abc", 3) {
		t.Error("ExceedsLength(\"abc\", 3) = true, want false")
	}
	if !ExceedsLength("abcd", 3) {
		t.Error("ExceedsLength(\"abcd\", 3) = false, want true")
	}
	// Padding does not count against the limit.
	if ExceedsLength("  abc  ", 3) {
		t.Error("ExceedsLength(\"  abc  \", 3) = true, want false")
	}
	// Multi-byte characters count once each, not per byte.
	if ExceedsLength("Среднее кафе", 12) {
		t.Error("ExceedsLength(\"Среднее кафе\", 12) = true, want false")
	}
	if !ExceedsLength("Среднее кафе", 11) {
		t.Error("ExceedsLength(\"Среднее кафе\", 11) = false, want true")
	}
}

func TestIsValidPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     bool
	}{
		{"first page", 1, 10, true},
		{"deep page", 50, 100, true},
		{"zero page", 0, 10, false},
		{"negative page", -1, 10, false},
		{"zero page size", 1, 0, false},
		{"negative page size", 1, -5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPagination(tt.page, tt.pageSize); got != tt.want {
				t.Errorf("IsValidPagination(%d, %d) = %v, want %v", tt.page, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	if !InRange(1, 1, 100) || !InRange(100, 1, 100) {
		t.Error("InRange should include both bounds")
	}
	if InRange(0, 1, 100) || InRange(101, 1, 100) {
		t.Error("InRange should exclude values outside the bounds")
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"User.Name+tag@example.co", true},
		{"no-at-sign.example.com", false},
		{"user@", false},
		{"@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsPositive(t *testing.T) {
	if !IsPositive(0.01) {
		t.Error("IsPositive(0.01) = false, want true")
	}
	if IsPositive(0) || IsPositive(-1.5) {
		t.Error("IsPositive should reject zero and negative values")
	}
}
