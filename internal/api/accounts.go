package api

import (
	"context"
	"fmt"
	"net/http"

	"moneymgr/internal/core"
)

// AccountAPI is the /accounts resource group.
type AccountAPI struct {
	c *Client
}

func (a AccountAPI) ListAll(ctx context.Context) ([]core.Account, error) {
	var out []core.Account
	err := a.c.do(ctx, http.MethodGet, "/accounts", nil, nil, &out, "Failed to fetch accounts.")
	return out, err
}

func (a AccountAPI) Create(ctx context.Context, draft core.AccountDraft) (core.Account, error) {
	var out core.Account
	err := a.c.do(ctx, http.MethodPost, "/accounts", nil, draft, &out, "Failed to create account.")
	return out, err
}

func (a AccountAPI) Delete(ctx context.Context, id int64) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), nil, nil, nil, "Failed to delete account.")
}

func (a AccountAPI) Transfer(ctx context.Context, req core.TransferRequest) error {
	return a.c.do(ctx, http.MethodPost, "/accounts/transfer", nil, req, nil, "Transfer failed. Please try again.")
}
