package memory

import (
	"context"
	"net/http"
	"sort"

	"moneymgr/internal/core"
	"moneymgr/internal/gateway"
)

func (a AccountStore) ListAll(_ context.Context) ([]core.Account, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	out := make([]core.Account, 0, len(a.s.accounts))
	for _, ac := range a.s.accounts {
		out = append(out, ac)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (a AccountStore) Create(_ context.Context, draft core.AccountDraft) (core.Account, error) {
	if err := draft.Validate(); err != nil {
		return core.Account{}, &gateway.Error{StatusCode: http.StatusBadRequest, Message: err.Error()}
	}
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	ac := core.Account{ID: a.s.nextAcID, Name: draft.Name, Balance: draft.Balance}
	a.s.nextAcID++
	a.s.accounts[ac.ID] = ac
	return ac, nil
}

func (a AccountStore) Delete(_ context.Context, id int64) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.accounts[id]; !ok {
		return &gateway.Error{StatusCode: http.StatusNotFound, Message: "Account not found"}
	}
	delete(a.s.accounts, id)
	return nil
}

// Transfer applies the debit and credit under one lock, so a reader never
// observes the funds in flight.
func (a AccountStore) Transfer(_ context.Context, req core.TransferRequest) error {
	if err := req.Validate(); err != nil {
		return &gateway.Error{StatusCode: http.StatusBadRequest, Message: err.Error()}
	}
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	from, ok := a.s.accounts[req.FromAccountID]
	if !ok {
		return &gateway.Error{StatusCode: http.StatusNotFound, Message: "Source account not found"}
	}
	to, ok := a.s.accounts[req.ToAccountID]
	if !ok {
		return &gateway.Error{StatusCode: http.StatusNotFound, Message: "Destination account not found"}
	}
	if from.Balance.LessThan(req.Amount) {
		return &gateway.Error{StatusCode: http.StatusBadRequest, Message: "Insufficient balance in source account"}
	}

	from.Balance = from.Balance.Sub(req.Amount)
	to.Balance = to.Balance.Add(req.Amount)
	a.s.accounts[from.ID] = from
	a.s.accounts[to.ID] = to
	return nil
}
