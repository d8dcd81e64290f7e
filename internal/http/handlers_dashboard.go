package http

import (
	"log/slog"
	"net/http"
)

// render writes one named template. Partial handlers all go through here
// so a broken template shows up in the logs with the partial's name.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "template", name, "error", err)
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

// The dashboard partials render from session state as-is. State changes
// happen in the mutation handlers; by the time htmx refetches a region
// the session already holds the refreshed snapshot.

func (s *Server) handleDashboardCards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "dashboard_cards", buildCards(s.sess.View()))
}

func (s *Server) handleCategorySummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "category_summary", buildCategorySummary(s.sess.View()))
}

func (s *Server) handleIncomeExpenseChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "income_expense_chart", buildChart(s.sess.View()))
}

func (s *Server) handleTransactionTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "transaction_table", buildTransactions(s.sess.View()))
}

func (s *Server) handleAccountsBar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "accounts_bar", buildAccounts(s.sess.View()))
}

// handleThemeToggle flips the theme and asks htmx for a full page reload
// so every region picks up the new palette at once.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	theme := s.sess.ToggleTheme()
	slog.InfoContext(r.Context(), "Theme toggled", "theme", string(theme))
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}
