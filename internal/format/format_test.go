package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"moneymgr/internal/core"
)

func TestCurrencyIndianGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{5, "₹5.00"},
		{999, "₹999.00"},
		{1000, "₹1,000.00"},
		{12345, "₹12,345.00"},
		{123456, "₹1,23,456.00"},
		{1234567.8, "₹12,34,567.80"},
		{12345678.9, "₹1,23,45,678.90"},
		{-1234.5, "-₹1,234.50"},
	}
	for _, tc := range cases {
		if got := Currency(decimal.NewFromFloat(tc.in)); got != tc.want {
			t.Fatalf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDateFormats(t *testing.T) {
	ts := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	if got := Date(ts); got != "Mar 7, 2025" {
		t.Fatalf("Date = %q", got)
	}
	if got := DateTime(ts); got != "Mar 7, 2025 2:30 PM" {
		t.Fatalf("DateTime = %q", got)
	}
	if got := InputDate(ts); got != "2025-03-07" {
		t.Fatalf("InputDate = %q", got)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"FUEL":     "Fuel",
		"PERSONAL": "Personal",
		"food":     "Food",
		"x":        "X",
		"":         "",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryStyleFallback(t *testing.T) {
	if got := CategoryStyle(core.CategoryFood); got != "food" {
		t.Fatalf("CategoryStyle(FOOD) = %q", got)
	}
	if got := CategoryStyle(core.Category("RENT")); got != "other" {
		t.Fatalf("unknown category should fall back to other, got %q", got)
	}
	if got := CategoryColor(core.Category("RENT")); got != CategoryColor(core.CategoryOther) {
		t.Fatalf("unknown category color should match OTHER, got %q", got)
	}
}
