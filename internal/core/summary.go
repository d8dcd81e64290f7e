package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingAccount    = errors.New("both accounts must be selected")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// PeriodSummary holds backend-computed totals for one reporting period.
type PeriodSummary struct {
	Income      decimal.Decimal `json:"income"`
	Expenditure decimal.Decimal `json:"expenditure"`
	Balance     decimal.Decimal `json:"balance"`
}

// DashboardSnapshot is the backend's aggregate view. It is replace-only:
// every mutation triggers a full refetch, nothing is merged incrementally.
type DashboardSnapshot struct {
	MonthlySummary  PeriodSummary                `json:"monthlySummary"`
	WeeklySummary   PeriodSummary                `json:"weeklySummary"`
	YearlySummary   PeriodSummary                `json:"yearlySummary"`
	CategorySummary map[Category]decimal.Decimal `json:"categorySummary"`
	Transactions    []Transaction                `json:"transactions"`
}

// FilterCriteria narrows the transaction list. Every field is optional;
// the zero value means "no filter".
type FilterCriteria struct {
	Division  Division
	Category  Category
	StartDate *time.Time
	EndDate   *time.Time
}

// IsZero reports whether no dimension is constrained.
func (c FilterCriteria) IsZero() bool {
	return c.Division == "" && c.Category == "" && c.StartDate == nil && c.EndDate == nil
}

// TransferRequest moves funds between two accounts. Only the two rules
// below are checked client-side; balance and existence are backend-enforced.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	if r.FromAccountID == 0 || r.ToAccountID == 0 {
		return ErrMissingAccount
	}
	if r.FromAccountID == r.ToAccountID {
		return ErrSameAccount
	}
	if !r.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	return nil
}
