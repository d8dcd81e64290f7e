// Package memory is an in-process stand-in for the backend API. It lets
// the front-end run without a backend (demo mode) and backs the HTTP
// tests. It reproduces the backend's observable contract: assigned IDs,
// atomic transfers, and a recomputed dashboard snapshot on every read.
package memory

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"moneymgr/internal/core"
	"moneymgr/internal/gateway"
)

type Store struct {
	mu       sync.Mutex
	nextTxID int64
	nextAcID int64
	txns     map[int64]core.Transaction
	accounts map[int64]core.Account

	Transactions TransactionStore
	Accounts     AccountStore
}

// TransactionStore and AccountStore are the two resource views over one
// shared state, matching the backend's resource split.
type (
	TransactionStore struct{ s *Store }
	AccountStore     struct{ s *Store }
)

// interface checks
var (
	_ gateway.TransactionGateway = TransactionStore{}
	_ gateway.AccountGateway     = AccountStore{}
)

func New() *Store {
	s := &Store{
		nextTxID: 1,
		nextAcID: 1,
		txns:     map[int64]core.Transaction{},
		accounts: map[int64]core.Account{},
	}
	s.Transactions = TransactionStore{s: s}
	s.Accounts = AccountStore{s: s}
	return s
}

// NewSeeded returns a store with a couple of accounts and transactions so
// the demo dashboard is not empty.
func NewSeeded() *Store {
	s := New()
	ctx := context.Background()
	_, _ = s.Accounts.Create(ctx, core.AccountDraft{Name: "Cash", Balance: decimal.NewFromInt(5000)})
	_, _ = s.Accounts.Create(ctx, core.AccountDraft{Name: "Savings", Balance: decimal.NewFromInt(25000)})

	now := time.Now()
	seed := []core.TransactionDraft{
		{Type: core.TypeIncome, Amount: decimal.NewFromInt(45000), Description: "Monthly salary", Category: core.CategorySalary, Division: core.DivisionPersonal, Date: now.AddDate(0, 0, -3)},
		{Type: core.TypeExpense, Amount: decimal.NewFromFloat(1250.50), Description: "Groceries", Category: core.CategoryFood, Division: core.DivisionPersonal, Date: now.AddDate(0, 0, -2)},
		{Type: core.TypeExpense, Amount: decimal.NewFromInt(900), Description: "Petrol", Category: core.CategoryFuel, Division: core.DivisionOffice, Date: now.AddDate(0, 0, -1)},
	}
	for _, d := range seed {
		_, _ = s.Transactions.Create(ctx, d)
	}
	return s
}

func (t TransactionStore) ListAll(_ context.Context) ([]core.Transaction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.sortedTransactions(), nil
}

func (t TransactionStore) GetByID(_ context.Context, id int64) (core.Transaction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	tx, ok := t.s.txns[id]
	if !ok {
		return core.Transaction{}, &gateway.Error{StatusCode: http.StatusNotFound, Message: "Transaction not found"}
	}
	return tx, nil
}

func (t TransactionStore) Create(_ context.Context, draft core.TransactionDraft) (core.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, &gateway.Error{StatusCode: http.StatusBadRequest, Message: err.Error()}
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	tx := core.Transaction{
		ID:          t.s.nextTxID,
		Type:        draft.Type,
		Amount:      draft.Amount,
		Description: draft.Description,
		Category:    draft.Category,
		Division:    draft.Division,
		Date:        draft.Date,
	}
	t.s.nextTxID++
	t.s.txns[tx.ID] = tx
	return tx, nil
}

func (t TransactionStore) Update(_ context.Context, id int64, draft core.TransactionDraft) (core.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, &gateway.Error{StatusCode: http.StatusBadRequest, Message: err.Error()}
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.txns[id]; !ok {
		return core.Transaction{}, &gateway.Error{StatusCode: http.StatusNotFound, Message: "Transaction not found"}
	}
	tx := core.Transaction{
		ID:          id,
		Type:        draft.Type,
		Amount:      draft.Amount,
		Description: draft.Description,
		Category:    draft.Category,
		Division:    draft.Division,
		Date:        draft.Date,
	}
	t.s.txns[id] = tx
	return tx, nil
}

func (t TransactionStore) Delete(_ context.Context, id int64) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.txns[id]; !ok {
		return &gateway.Error{StatusCode: http.StatusNotFound, Message: "Transaction not found"}
	}
	delete(t.s.txns, id)
	return nil
}

func (t TransactionStore) Filter(_ context.Context, criteria core.FilterCriteria) ([]core.Transaction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	var out []core.Transaction
	for _, tx := range t.s.sortedTransactions() {
		if criteria.Division != "" && tx.Division != criteria.Division {
			continue
		}
		if criteria.Category != "" && tx.Category != criteria.Category {
			continue
		}
		if criteria.StartDate != nil && tx.Date.Before(*criteria.StartDate) {
			continue
		}
		if criteria.EndDate != nil && tx.Date.After(*criteria.EndDate) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

// Dashboard recomputes the aggregate snapshot from scratch. Period windows
// follow the backend: calendar month and year of "now", plus the trailing
// seven days for the weekly card.
func (t TransactionStore) Dashboard(_ context.Context) (core.DashboardSnapshot, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	now := time.Now()
	snap := core.DashboardSnapshot{
		CategorySummary: map[core.Category]decimal.Decimal{},
		Transactions:    t.s.sortedTransactions(),
	}
	weekStart := now.AddDate(0, 0, -7)

	for _, tx := range snap.Transactions {
		if tx.Date.Year() == now.Year() && tx.Date.Month() == now.Month() {
			addToSummary(&snap.MonthlySummary, tx)
		}
		if tx.Date.After(weekStart) {
			addToSummary(&snap.WeeklySummary, tx)
		}
		if tx.Date.Year() == now.Year() {
			addToSummary(&snap.YearlySummary, tx)
		}
		if tx.Type == core.TypeExpense {
			snap.CategorySummary[tx.Category] = snap.CategorySummary[tx.Category].Add(tx.Amount)
		}
	}
	return snap, nil
}

func addToSummary(sum *core.PeriodSummary, tx core.Transaction) {
	switch tx.Type {
	case core.TypeIncome:
		sum.Income = sum.Income.Add(tx.Amount)
	case core.TypeExpense:
		sum.Expenditure = sum.Expenditure.Add(tx.Amount)
	}
	sum.Balance = sum.Income.Sub(sum.Expenditure)
}

// sortedTransactions returns transactions newest first. Callers must hold mu.
func (s *Store) sortedTransactions() []core.Transaction {
	out := make([]core.Transaction, 0, len(s.txns))
	for _, tx := range s.txns {
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}
