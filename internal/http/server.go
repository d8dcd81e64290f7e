// Package http serves the money-manager UI. Pages and partials are
// rendered server-side from session state; htmx drives partial refreshes.
// Handlers never call the backend API directly: every state change goes
// through the session orchestrator.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"moneymgr/internal/middleware/ratelimit"
	"moneymgr/internal/middleware/security"
	"moneymgr/internal/middleware/trace"
	"moneymgr/internal/session"
	appweb "moneymgr/web"
)

type Server struct {
	http.Server
	templates *template.Template
	sess      *session.Session

	limiter      *ratelimit.Limiter
	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, sess *session.Session) (*Server, error) {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr: addr,
		},
		sess:    sess,
		limiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s.templates = t

	// Static assets from the embedded FS
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/", s.handleIndex)

	// UI partials
	mux.HandleFunc("/ui/dashboard-cards", s.handleDashboardCards)
	mux.HandleFunc("/ui/category-summary", s.handleCategorySummary)
	mux.HandleFunc("/ui/income-expense-chart", s.handleIncomeExpenseChart)
	mux.HandleFunc("/ui/transactions", s.handleTransactionTable)
	mux.HandleFunc("/ui/accounts", s.handleAccountsBar)
	mux.HandleFunc("/ui/transaction-form", s.handleTransactionForm)
	mux.HandleFunc("/ui/category-options", s.handleCategoryOptions)
	mux.HandleFunc("/ui/account-form", s.handleAccountForm)
	mux.HandleFunc("/ui/transfer-form", s.handleTransferForm)
	mux.HandleFunc("/ui/confirm", s.handleConfirmDialog)

	// Mutations
	mux.HandleFunc("/transactions", s.handleSubmitTransaction)
	mux.HandleFunc("/transactions/close", s.handleCloseForm)
	mux.HandleFunc("/transactions/delete", s.handleDeleteTransaction)
	mux.HandleFunc("/filter", s.handleFilter)
	mux.HandleFunc("/accounts", s.handleCreateAccount)
	mux.HandleFunc("/accounts/delete", s.handleDeleteAccount)
	mux.HandleFunc("/accounts/transfer", s.handleTransfer)
	mux.HandleFunc("/theme/toggle", s.handleThemeToggle)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(clientIP)
	limited := s.limiter.Middleware(clientIP)

	s.Handler = tracer.Middleware(headers.Middleware(limited(mux)))
	return s, nil
}

// Shutdown stops the HTTP server and the limiter's cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// handleIndex renders the full dashboard page. If the session has never
// loaded (or the first load failed), it retries the initial fetch; a
// fetch failure still renders the page with an error indicator rather
// than a blank screen.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if s.sess.View().Snapshot == nil {
		if err := s.sess.Load(r.Context()); err != nil {
			slog.WarnContext(r.Context(), "Initial load incomplete", "error", err)
		}
	}

	data := s.pageData()
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
