package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"moneymgr/internal/core"
)

// TransactionAPI is the /transactions resource group.
type TransactionAPI struct {
	c *Client
}

func (t TransactionAPI) ListAll(ctx context.Context) ([]core.Transaction, error) {
	var out []core.Transaction
	err := t.c.do(ctx, http.MethodGet, "/transactions", nil, nil, &out, "Failed to fetch transactions.")
	return out, err
}

func (t TransactionAPI) GetByID(ctx context.Context, id int64) (core.Transaction, error) {
	var out core.Transaction
	err := t.c.do(ctx, http.MethodGet, fmt.Sprintf("/transactions/%d", id), nil, nil, &out, "Transaction not found.")
	return out, err
}

func (t TransactionAPI) Create(ctx context.Context, draft core.TransactionDraft) (core.Transaction, error) {
	var out core.Transaction
	err := t.c.do(ctx, http.MethodPost, "/transactions", nil, draft, &out, "Failed to add transaction.")
	return out, err
}

func (t TransactionAPI) Update(ctx context.Context, id int64, draft core.TransactionDraft) (core.Transaction, error) {
	var out core.Transaction
	err := t.c.do(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), nil, draft, &out, "Failed to update transaction.")
	return out, err
}

func (t TransactionAPI) Delete(ctx context.Context, id int64) error {
	return t.c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil, nil, "Failed to delete transaction.")
}

// Filter serializes the criteria into query parameters. Absent fields are
// omitted entirely, never sent as empty values; dates go out as RFC 3339.
func (t TransactionAPI) Filter(ctx context.Context, criteria core.FilterCriteria) ([]core.Transaction, error) {
	params := url.Values{}
	if criteria.Division != "" {
		params.Add("division", string(criteria.Division))
	}
	if criteria.Category != "" {
		params.Add("category", string(criteria.Category))
	}
	if criteria.StartDate != nil {
		params.Add("startDate", criteria.StartDate.Format(time.RFC3339))
	}
	if criteria.EndDate != nil {
		params.Add("endDate", criteria.EndDate.Format(time.RFC3339))
	}

	var out []core.Transaction
	err := t.c.do(ctx, http.MethodGet, "/transactions/filter", params, nil, &out, "Failed to filter transactions.")
	return out, err
}

func (t TransactionAPI) Dashboard(ctx context.Context) (core.DashboardSnapshot, error) {
	var out core.DashboardSnapshot
	err := t.c.do(ctx, http.MethodGet, "/transactions/dashboard", nil, nil, &out, "Failed to fetch dashboard data.")
	return out, err
}
