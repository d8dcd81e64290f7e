package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func draft() TransactionDraft {
	return TransactionDraft{
		Type:        TypeExpense,
		Amount:      decimal.NewFromInt(100),
		Description: "groceries",
		Category:    CategoryFood,
		Division:    DivisionPersonal,
		Date:        time.Now().Add(-time.Hour),
	}
}

func TestTransactionDraftValidate(t *testing.T) {
	if err := draft().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*TransactionDraft)
		want   error
	}{
		{"bad type", func(d *TransactionDraft) { d.Type = "TRANSFER" }, ErrInvalidType},
		{"negative amount", func(d *TransactionDraft) { d.Amount = decimal.NewFromInt(-1) }, ErrNegativeAmount},
		{"blank description", func(d *TransactionDraft) { d.Description = "   " }, ErrEmptyDescription},
		{"income category on expense", func(d *TransactionDraft) { d.Category = CategorySalary }, ErrInvalidCategory},
		{"unknown category", func(d *TransactionDraft) { d.Category = "RENT" }, ErrInvalidCategory},
		{"bad division", func(d *TransactionDraft) { d.Division = "SHARED" }, ErrInvalidDivision},
		{"future date", func(d *TransactionDraft) { d.Date = time.Now().Add(48 * time.Hour) }, ErrFutureDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := draft()
			tc.mutate(&d)
			if err := d.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestZeroAmountIsValid(t *testing.T) {
	d := draft()
	d.Amount = decimal.Zero
	if err := d.Validate(); err != nil {
		t.Fatalf("zero amount should validate, got %v", err)
	}
}

func TestCategoriesFor(t *testing.T) {
	income := CategoriesFor(TypeIncome)
	expense := CategoriesFor(TypeExpense)
	if len(income) != 4 {
		t.Fatalf("expected 4 income categories, got %d", len(income))
	}
	if len(expense) != 6 {
		t.Fatalf("expected 6 expense categories, got %d", len(expense))
	}
	if CategoriesFor("BOGUS") != nil {
		t.Fatalf("expected nil for unknown type")
	}

	// OTHER is the only shared category
	for _, c := range income {
		if c == CategoryOther {
			continue
		}
		if c.ValidFor(TypeExpense) {
			t.Fatalf("%s should not be valid for expense", c)
		}
	}
	if !CategoryOther.ValidFor(TypeIncome) || !CategoryOther.ValidFor(TypeExpense) {
		t.Fatalf("OTHER must be valid for both types")
	}
}

func TestAccountDraftValidate(t *testing.T) {
	if err := (AccountDraft{Name: "Cash"}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (AccountDraft{Name: "  "}).Validate(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName")
	}
}

func TestTransferRequestValidate(t *testing.T) {
	good := TransferRequest{FromAccountID: 1, ToAccountID: 2, Amount: decimal.NewFromInt(50)}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		req  TransferRequest
		want error
	}{
		{"missing from", TransferRequest{ToAccountID: 2, Amount: decimal.NewFromInt(1)}, ErrMissingAccount},
		{"missing to", TransferRequest{FromAccountID: 1, Amount: decimal.NewFromInt(1)}, ErrMissingAccount},
		{"same account", TransferRequest{FromAccountID: 3, ToAccountID: 3, Amount: decimal.NewFromInt(1)}, ErrSameAccount},
		{"zero amount", TransferRequest{FromAccountID: 1, ToAccountID: 2}, ErrNonPositiveAmount},
		{"negative amount", TransferRequest{FromAccountID: 1, ToAccountID: 2, Amount: decimal.NewFromInt(-5)}, ErrNonPositiveAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.req.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDraftRoundTrip(t *testing.T) {
	tx := Transaction{
		ID:          7,
		Type:        TypeIncome,
		Amount:      decimal.NewFromFloat(1234.56),
		Description: "invoice",
		Category:    CategoryFreelance,
		Division:    DivisionOffice,
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	d := tx.Draft()
	if d.Type != tx.Type || !d.Amount.Equal(tx.Amount) || d.Description != tx.Description ||
		d.Category != tx.Category || d.Division != tx.Division || !d.Date.Equal(tx.Date) {
		t.Fatalf("draft does not match transaction: %+v vs %+v", d, tx)
	}
}

func TestFilterCriteriaIsZero(t *testing.T) {
	if !(FilterCriteria{}).IsZero() {
		t.Fatalf("empty criteria should be zero")
	}
	now := time.Now()
	nonZero := []FilterCriteria{
		{Division: DivisionPersonal},
		{Category: CategoryFood},
		{StartDate: &now},
		{EndDate: &now},
	}
	for i, c := range nonZero {
		if c.IsZero() {
			t.Fatalf("case %d should not be zero", i)
		}
	}
}
