// Package format turns raw domain values into display strings and style
// keys. Everything here is a pure function; no state, no I/O.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"moneymgr/internal/core"
)

// Currency renders an amount as Indian rupees with Indian digit grouping:
// the last three integer digits form one group, the rest pair up
// (1234567.8 -> "₹12,34,567.80").
func Currency(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	grouped := groupIndian(intPart)
	out := "₹" + grouped + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// Date renders a timestamp for table rows, e.g. "Jan 2, 2006".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DateTime renders a timestamp with the time of day, e.g.
// "Jan 2, 2006 3:04 PM".
func DateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// InputDate renders a timestamp for an HTML date input.
func InputDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Capitalize uppercases the first character and lowercases the rest:
// "FUEL" -> "Fuel". Enum values pass through this before display.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

var categoryStyles = map[core.Category]string{
	core.CategoryFuel:       "fuel",
	core.CategoryMovie:      "movie",
	core.CategoryFood:       "food",
	core.CategoryLoan:       "loan",
	core.CategoryMedical:    "medical",
	core.CategorySalary:     "salary",
	core.CategoryFreelance:  "freelance",
	core.CategoryInvestment: "investment",
	core.CategoryOther:      "other",
}

// CategoryStyle maps a category to its badge style key. Unknown
// categories fall back to the default treatment instead of failing.
func CategoryStyle(c core.Category) string {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return "other"
}

var categoryColors = map[core.Category]string{
	core.CategoryFuel:       "#FBBF24",
	core.CategoryMovie:      "#A855F7",
	core.CategoryFood:       "#FB923C",
	core.CategoryLoan:       "#EF4444",
	core.CategoryMedical:    "#EC4899",
	core.CategorySalary:     "#22C55E",
	core.CategoryFreelance:  "#3B82F6",
	core.CategoryInvestment: "#6366F1",
	core.CategoryOther:      "#6B7280",
}

// CategoryColor maps a category to its chart color, defaulting like
// CategoryStyle for unknown keys.
func CategoryColor(c core.Category) string {
	if s, ok := categoryColors[c]; ok {
		return s
	}
	return categoryColors[core.CategoryOther]
}
