package gateway

import (
	"context"

	"moneymgr/internal/core"
)

// Ports to the backend. The REST client is the real implementation; the
// memory backend stands in for local development and tests.
type (
	TransactionGateway interface {
		ListAll(ctx context.Context) ([]core.Transaction, error)
		GetByID(ctx context.Context, id int64) (core.Transaction, error)
		Create(ctx context.Context, draft core.TransactionDraft) (core.Transaction, error)
		Update(ctx context.Context, id int64, draft core.TransactionDraft) (core.Transaction, error)
		Delete(ctx context.Context, id int64) error
		Filter(ctx context.Context, criteria core.FilterCriteria) ([]core.Transaction, error)

		// Dashboard returns the full aggregate snapshot. Callers replace
		// their copy wholesale; there is no partial patching.
		Dashboard(ctx context.Context) (core.DashboardSnapshot, error)
	}

	AccountGateway interface {
		ListAll(ctx context.Context) ([]core.Account, error)
		Create(ctx context.Context, draft core.AccountDraft) (core.Account, error)
		Delete(ctx context.Context, id int64) error
		Transfer(ctx context.Context, req core.TransferRequest) error
	}
)
