package http

import (
	"testing"

	"github.com/shopspring/decimal"

	"moneymgr/internal/core"
	"moneymgr/internal/session"
)

func TestCategorySummaryExcludesZeroAmounts(t *testing.T) {
	v := session.View{
		Snapshot: &core.DashboardSnapshot{
			CategorySummary: map[core.Category]decimal.Decimal{
				core.CategoryFuel: decimal.NewFromFloat(120.50),
				core.CategoryFood: decimal.Zero,
			},
		},
	}

	d := buildCategorySummary(v)
	if len(d.Items) != 1 {
		t.Fatalf("expected exactly one segment, got %d: %+v", len(d.Items), d.Items)
	}
	if d.Items[0].Label != "Fuel" {
		t.Fatalf("segment label = %q, want Fuel", d.Items[0].Label)
	}
	if d.Items[0].Percent != 100 {
		t.Fatalf("sole segment should carry the full share, got %d%%", d.Items[0].Percent)
	}
}

func TestCategorySummarySortedByShare(t *testing.T) {
	v := session.View{
		Snapshot: &core.DashboardSnapshot{
			CategorySummary: map[core.Category]decimal.Decimal{
				core.CategoryFood:    decimal.NewFromInt(300),
				core.CategoryFuel:    decimal.NewFromInt(600),
				core.CategoryMedical: decimal.NewFromInt(100),
			},
		},
	}

	d := buildCategorySummary(v)
	want := []string{"Fuel", "Food", "Medical"}
	if len(d.Items) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(d.Items))
	}
	for i, w := range want {
		if d.Items[i].Label != w {
			t.Fatalf("position %d: want %q, got %q", i, w, d.Items[i].Label)
		}
	}
}

func TestCategorySummaryUnknownCategoryFallsBack(t *testing.T) {
	v := session.View{
		Snapshot: &core.DashboardSnapshot{
			CategorySummary: map[core.Category]decimal.Decimal{
				core.Category("RENT"): decimal.NewFromInt(50),
			},
		},
	}

	d := buildCategorySummary(v)
	if len(d.Items) != 1 {
		t.Fatalf("expected one segment, got %d", len(d.Items))
	}
	if d.Items[0].Style != "other" {
		t.Fatalf("unknown category should use the default style, got %q", d.Items[0].Style)
	}
}
