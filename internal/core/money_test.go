package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"12.34", "12.34", nil},
		{"12,34", "12.34", nil},
		{" 100 ", "100", nil},
		{"0", "0", nil},
		{"1234567.8", "1234567.8", nil},
		{"", "", ErrInvalidAmount},
		{"   ", "", ErrInvalidAmount},
		{"abc", "", ErrInvalidAmount},
		{"12.3.4", "", ErrInvalidAmount},
		{"-5", "", ErrNegativeAmount},
		{"-0.01", "", ErrNegativeAmount},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseAmount(%q) expected %v, got %v", tc.in, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseBalance(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"500", "500"},
		{"12,5", "12.5"},
		{"-20", "-20"}, // negative opening balances are allowed
		{"", "0"},
		{"junk", "0"},
	}
	for _, tc := range cases {
		if got := ParseBalance(tc.in); got.String() != tc.want {
			t.Fatalf("ParseBalance(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
