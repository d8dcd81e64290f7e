package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"

	DivisionPersonal Division = "PERSONAL"
	DivisionOffice   Division = "OFFICE"

	CategorySalary     Category = "SALARY"
	CategoryFreelance  Category = "FREELANCE"
	CategoryInvestment Category = "INVESTMENT"
	CategoryFuel       Category = "FUEL"
	CategoryMovie      Category = "MOVIE"
	CategoryFood       Category = "FOOD"
	CategoryLoan       Category = "LOAN"
	CategoryMedical    Category = "MEDICAL"
	CategoryOther      Category = "OTHER"
)

type (
	TransactionType string

	Division string

	Category string

	// Transaction mirrors the backend's transaction resource. The ID is
	// assigned by the backend; the client never invents one.
	Transaction struct {
		ID          int64           `json:"id"`
		Type        TransactionType `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
		Category    Category        `json:"category"`
		Division    Division        `json:"division"`
		Date        time.Time       `json:"date"`
	}

	// TransactionDraft is the payload for create and update calls.
	TransactionDraft struct {
		Type        TransactionType `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
		Category    Category        `json:"category"`
		Division    Division        `json:"division"`
		Date        time.Time       `json:"date"`
	}

	// Account balances are authoritative only on the backend; this client
	// never computes one locally.
	Account struct {
		ID      int64           `json:"id"`
		Name    string          `json:"name"`
		Balance decimal.Decimal `json:"balance"`
	}

	// AccountDraft is the payload for account creation.
	AccountDraft struct {
		Name    string          `json:"name"`
		Balance decimal.Decimal `json:"balance"`
	}
)

var (
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidDivision  = errors.New("invalid division")
	ErrInvalidCategory  = errors.New("category not valid for transaction type")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrEmptyDescription = errors.New("empty description")
	ErrFutureDate       = errors.New("date cannot be in the future")
	ErrEmptyName        = errors.New("empty account name")
)

var (
	incomeCategories  = []Category{CategorySalary, CategoryFreelance, CategoryInvestment, CategoryOther}
	expenseCategories = []Category{CategoryFuel, CategoryMovie, CategoryFood, CategoryLoan, CategoryMedical, CategoryOther}
)

// CategoriesFor returns the valid category set for a transaction type.
// The income and expense sets only share OTHER.
func CategoriesFor(t TransactionType) []Category {
	switch t {
	case TypeIncome:
		return append([]Category(nil), incomeCategories...)
	case TypeExpense:
		return append([]Category(nil), expenseCategories...)
	default:
		return nil
	}
}

// ValidFor reports whether the category belongs to the type's set.
func (c Category) ValidFor(t TransactionType) bool {
	for _, v := range CategoriesFor(t) {
		if v == c {
			return true
		}
	}
	return false
}

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (d Division) Valid() bool {
	return d == DivisionPersonal || d == DivisionOffice
}

func (d TransactionDraft) Validate() error {
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if d.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrEmptyDescription
	}
	if !d.Category.ValidFor(d.Type) {
		return ErrInvalidCategory
	}
	if !d.Division.Valid() {
		return ErrInvalidDivision
	}
	if d.Date.After(time.Now()) {
		return ErrFutureDate
	}
	return nil
}

func (d AccountDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Draft returns the transaction's fields as an update payload.
func (t Transaction) Draft() TransactionDraft {
	return TransactionDraft{
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Division:    t.Division,
		Date:        t.Date,
	}
}
