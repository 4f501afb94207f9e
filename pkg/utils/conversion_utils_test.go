package utils

import "testing"

func TestInt64ToStr(t *testing.T) {
	tests := []struct {
		num  int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-7, "-7"},
		{9223372036854775807, "9223372036854775807"},
	}
	for _, tt := range tests {
		if got := Int64ToStr(tt.num); got != tt.want {
			t.Errorf("Int64ToStr(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestStrToInt64(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"plain id", "42", 42, false},
		{"negative", "-7", -7, false},
		{"empty", "", 0, true},
		{"not a number", "abc", 0, true},
		{"trailing garbage", "42x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrToInt64(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("StrToInt64(%q) expected an error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("StrToInt64(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("StrToInt64(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
