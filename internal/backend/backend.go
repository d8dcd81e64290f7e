// Package backend selects the gateway implementation the session talks
// to: the REST client against a real backend, or the in-process memory
// store for demo use.
package backend

import (
	"fmt"
	"log/slog"
	"time"

	"moneymgr/internal/api"
	"moneymgr/internal/gateway"
	"moneymgr/internal/gateway/memory"
)

type Type string

const (
	APIBackend    Type = "api"
	MemoryBackend Type = "memory"
)

func (t Type) IsValid() bool {
	return t == APIBackend || t == MemoryBackend
}

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

type Config struct {
	Type Type

	// API backend specific
	BaseURL string
	Timeout time.Duration
}

// Result bundles the two gateways plus the API client when one was
// built (used by the startup readiness probe; nil for memory).
type Result struct {
	Transactions gateway.TransactionGateway
	Accounts     gateway.AccountGateway
	Client       *api.Client
}

func Create(cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch cfg.Type {
	case APIBackend:
		client := api.New(cfg.BaseURL, cfg.Timeout)
		logger.Info("Initialized API backend", "base_url", cfg.BaseURL, "timeout", cfg.Timeout)
		return &Result{
			Transactions: client.Transactions,
			Accounts:     client.Accounts,
			Client:       client,
		}, nil
	case MemoryBackend:
		store := memory.NewSeeded()
		logger.Info("Initialized memory backend")
		return &Result{
			Transactions: store.Transactions,
			Accounts:     store.Accounts,
		}, nil
	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}
}
