// Package session owns all front-end state for one running instance:
// dashboard snapshot, transaction list, accounts, active filter, the
// transaction form's edit target, and the theme flag. It is the only
// component that talks to the backend gateways; the HTTP layer hands it
// validated payloads and renders whatever View returns.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"moneymgr/internal/core"
	"moneymgr/internal/gateway"
)

type FormState int

const (
	FormClosed FormState = iota
	FormCreate
	FormEdit
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var (
	// ErrConfirmationRequired is returned by destructive operations that
	// were invoked without the user having confirmed them. No request is
	// sent in that case.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrBusy is returned when a mutation of the same kind is still
	// outstanding. The UI disables the submit affordance; this is the
	// server-side backstop.
	ErrBusy = errors.New("operation already in progress")
)

type Session struct {
	txns gateway.TransactionGateway
	acct gateway.AccountGateway

	mu       sync.Mutex
	snapshot *core.DashboardSnapshot
	list     []core.Transaction
	accounts []core.Account
	filter   *core.FilterCriteria
	edit     *core.Transaction
	form     FormState
	theme    Theme

	// user-visible fetch error indicators; cleared by the next success
	dashboardErr string
	accountsErr  string

	// gen invalidates fetches that were in flight when a newer user
	// action changed state; their late responses are dropped.
	gen uint64

	inFlight map[string]bool
}

func New(txns gateway.TransactionGateway, acct gateway.AccountGateway, theme Theme) *Session {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return &Session{
		txns:     txns,
		acct:     acct,
		theme:    theme,
		inFlight: map[string]bool{},
	}
}

// View is an immutable copy of the session state for rendering.
type View struct {
	Snapshot     *core.DashboardSnapshot
	Transactions []core.Transaction
	Accounts     []core.Account
	Filter       *core.FilterCriteria
	EditTarget   *core.Transaction
	Form         FormState
	Theme        Theme
	DashboardErr string
	AccountsErr  string
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		Snapshot:     s.snapshot,
		Transactions: append([]core.Transaction(nil), s.list...),
		Accounts:     append([]core.Account(nil), s.accounts...),
		Form:         s.form,
		Theme:        s.theme,
		DashboardErr: s.dashboardErr,
		AccountsErr:  s.accountsErr,
	}
	if s.filter != nil {
		f := *s.filter
		v.Filter = &f
	}
	if s.edit != nil {
		e := *s.edit
		v.EditTarget = &e
	}
	return v
}

// Load fetches the dashboard snapshot and the account list concurrently.
// The two fetches are independent: one failing does not blank out the
// other's result.
func (s *Session) Load(ctx context.Context) error {
	var g errgroup.Group
	var dashErr, acctErr error
	g.Go(func() error {
		dashErr = s.refreshDashboard(ctx)
		return nil
	})
	g.Go(func() error {
		acctErr = s.refreshAccounts(ctx)
		return nil
	})
	_ = g.Wait()
	return errors.Join(dashErr, acctErr)
}

// SubmitTransaction creates or updates depending on whether an edit target
// is set. On success the form closes and the dashboard is refetched; on
// failure the form state is left untouched so user input survives.
func (s *Session) SubmitTransaction(ctx context.Context, draft core.TransactionDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if !s.acquire("transaction") {
		return ErrBusy
	}
	defer s.release("transaction")

	s.mu.Lock()
	target := s.edit
	s.mu.Unlock()

	var err error
	if target != nil {
		_, err = s.txns.Update(ctx, target.ID, draft)
	} else {
		_, err = s.txns.Create(ctx, draft)
	}
	if err != nil {
		slog.WarnContext(ctx, "Transaction submit rejected", "error", err, "editing", target != nil)
		return err
	}

	s.mu.Lock()
	s.bumpLocked()
	s.edit = nil
	s.form = FormClosed
	s.mu.Unlock()
	return s.refreshDashboard(ctx)
}

// DeleteTransaction refuses to touch the network until the user confirmed.
func (s *Session) DeleteTransaction(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if !s.acquire("transaction") {
		return ErrBusy
	}
	defer s.release("transaction")

	if err := s.txns.Delete(ctx, id); err != nil {
		slog.WarnContext(ctx, "Transaction delete failed", "error", err, "transaction_id", id)
		return err
	}
	s.mu.Lock()
	s.bumpLocked()
	s.mu.Unlock()
	return s.refreshDashboard(ctx)
}

// ApplyFilter replaces the transaction list with the filtered result.
// The summary cards are not touched: they always reflect the unfiltered
// snapshot. Empty criteria reset the filter by refetching the snapshot.
func (s *Session) ApplyFilter(ctx context.Context, criteria core.FilterCriteria) error {
	s.mu.Lock()
	s.bumpLocked()
	start := s.gen
	s.mu.Unlock()

	if criteria.IsZero() {
		return s.refreshDashboard(ctx)
	}

	list, err := s.txns.Filter(ctx, criteria)
	if err != nil {
		slog.WarnContext(ctx, "Filter request failed", "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != start {
		// a newer action changed state while this was in flight
		return nil
	}
	s.list = list
	c := criteria
	s.filter = &c
	return nil
}

// CreateAccount validates the name locally; the balance defaults to zero
// when absent or non-numeric. Success refetches accounts and snapshot,
// since dashboard aggregates may depend on accounts.
func (s *Session) CreateAccount(ctx context.Context, name, rawBalance string) error {
	draft := core.AccountDraft{
		Name:    strings.TrimSpace(name),
		Balance: core.ParseBalance(rawBalance),
	}
	if err := draft.Validate(); err != nil {
		return err
	}
	if !s.acquire("account") {
		return ErrBusy
	}
	defer s.release("account")

	if _, err := s.acct.Create(ctx, draft); err != nil {
		slog.WarnContext(ctx, "Account create failed", "error", err, "name", draft.Name)
		return err
	}
	s.mu.Lock()
	s.bumpLocked()
	s.mu.Unlock()
	return errors.Join(s.refreshAccounts(ctx), s.refreshDashboard(ctx))
}

func (s *Session) DeleteAccount(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if !s.acquire("account") {
		return ErrBusy
	}
	defer s.release("account")

	if err := s.acct.Delete(ctx, id); err != nil {
		slog.WarnContext(ctx, "Account delete failed", "error", err, "account_id", id)
		return err
	}
	s.mu.Lock()
	s.bumpLocked()
	s.mu.Unlock()
	// cascading effects on transactions are not assumed visible without
	// a snapshot refetch
	return errors.Join(s.refreshAccounts(ctx), s.refreshDashboard(ctx))
}

// Transfer checks the two client-side rules (distinct accounts, positive
// amount) before any network traffic; everything else is backend-enforced.
func (s *Session) Transfer(ctx context.Context, req core.TransferRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !s.acquire("transfer") {
		return ErrBusy
	}
	defer s.release("transfer")

	if err := s.acct.Transfer(ctx, req); err != nil {
		slog.WarnContext(ctx, "Transfer failed", "error", err,
			"from_account_id", req.FromAccountID, "to_account_id", req.ToAccountID)
		return err
	}
	s.mu.Lock()
	s.bumpLocked()
	s.mu.Unlock()
	return errors.Join(s.refreshAccounts(ctx), s.refreshDashboard(ctx))
}

// refreshDashboard replaces the snapshot wholesale and resets the visible
// transaction list from it. On failure the previous snapshot stays
// visible and only the error indicator changes.
func (s *Session) refreshDashboard(ctx context.Context) error {
	s.mu.Lock()
	start := s.gen
	s.mu.Unlock()

	snap, err := s.txns.Dashboard(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != start {
		// a newer action already replaced this state; neither the result
		// nor the failure of a stale fetch may touch it
		return nil
	}
	if err != nil {
		s.dashboardErr = gateway.UserMessage(err, "Failed to fetch dashboard data.")
		return err
	}
	s.snapshot = &snap
	s.list = snap.Transactions
	s.filter = nil
	s.dashboardErr = ""
	return nil
}

func (s *Session) refreshAccounts(ctx context.Context) error {
	s.mu.Lock()
	start := s.gen
	s.mu.Unlock()

	accounts, err := s.acct.ListAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != start {
		return nil
	}
	if err != nil {
		s.accountsErr = gateway.UserMessage(err, "Failed to fetch accounts.")
		return err
	}
	s.accounts = accounts
	s.accountsErr = ""
	return nil
}

func (s *Session) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[key] {
		return false
	}
	s.inFlight[key] = true
	return true
}

func (s *Session) release(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}

// bumpLocked invalidates any fetch still in flight. Callers must hold mu.
func (s *Session) bumpLocked() {
	s.gen++
}
