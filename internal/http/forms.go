package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"moneymgr/internal/core"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// transactionForm carries the raw transaction form fields. Structural
// checks live in the tags; business rules (category/type pairing, future
// dates) stay in core where the session re-validates them.
type transactionForm struct {
	Type        string `validate:"required,oneof=INCOME EXPENSE"`
	Amount      string `validate:"required"`
	Description string `validate:"required,max=255"`
	Category    string `validate:"required"`
	Division    string `validate:"required,oneof=PERSONAL OFFICE"`
	Date        string `validate:"required,datetime=2006-01-02"`
}

func parseTransactionForm(r *http.Request) (core.TransactionDraft, error) {
	f := transactionForm{
		Type:        strings.TrimSpace(r.FormValue("type")),
		Amount:      strings.TrimSpace(r.FormValue("amount")),
		Description: sanitizeInput(r.FormValue("description")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Division:    strings.TrimSpace(r.FormValue("division")),
		Date:        strings.TrimSpace(r.FormValue("date")),
	}
	if err := validate.Struct(f); err != nil {
		return core.TransactionDraft{}, err
	}

	amount, err := core.ParseAmount(f.Amount)
	if err != nil {
		return core.TransactionDraft{}, err
	}
	date, err := time.ParseInLocation("2006-01-02", f.Date, time.Local)
	if err != nil {
		return core.TransactionDraft{}, err
	}

	return core.TransactionDraft{
		Type:        core.TransactionType(f.Type),
		Amount:      amount,
		Description: f.Description,
		Category:    core.Category(f.Category),
		Division:    core.Division(f.Division),
		Date:        date,
	}, nil
}

type accountForm struct {
	Name    string `validate:"required,max=100"`
	Balance string `validate:"omitempty,max=20"`
}

func parseAccountForm(r *http.Request) (accountForm, error) {
	f := accountForm{
		Name:    sanitizeInput(r.FormValue("name")),
		Balance: strings.TrimSpace(r.FormValue("balance")),
	}
	if err := validate.Struct(f); err != nil {
		return accountForm{}, err
	}
	return f, nil
}

type transferForm struct {
	FromAccountID int64  `validate:"required,gt=0"`
	ToAccountID   int64  `validate:"required,gt=0"`
	Amount        string `validate:"required"`
}

func parseTransferForm(r *http.Request) (core.TransferRequest, error) {
	f := transferForm{
		FromAccountID: formInt64(r, "fromAccountId"),
		ToAccountID:   formInt64(r, "toAccountId"),
		Amount:        strings.TrimSpace(r.FormValue("amount")),
	}
	if err := validate.Struct(f); err != nil {
		return core.TransferRequest{}, err
	}
	amount, err := core.ParseAmount(f.Amount)
	if err != nil {
		return core.TransferRequest{}, err
	}
	return core.TransferRequest{
		FromAccountID: f.FromAccountID,
		ToAccountID:   f.ToAccountID,
		Amount:        amount,
	}, nil
}

// parseFilterForm maps form fields to criteria. Absent fields stay at
// their zero value so the criteria can tell "unset" from "set to X".
func parseFilterForm(r *http.Request) (core.FilterCriteria, error) {
	var c core.FilterCriteria
	if d := strings.TrimSpace(r.FormValue("division")); d != "" {
		c.Division = core.Division(d)
		if !c.Division.Valid() {
			return core.FilterCriteria{}, core.ErrInvalidDivision
		}
	}
	if cat := strings.TrimSpace(r.FormValue("category")); cat != "" {
		c.Category = core.Category(cat)
	}
	if raw := strings.TrimSpace(r.FormValue("startDate")); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return core.FilterCriteria{}, err
		}
		c.StartDate = &t
	}
	if raw := strings.TrimSpace(r.FormValue("endDate")); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return core.FilterCriteria{}, err
		}
		// inclusive end of day
		end := t.Add(24*time.Hour - time.Second)
		c.EndDate = &end
	}
	return c, nil
}
