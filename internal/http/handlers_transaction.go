package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"moneymgr/internal/core"
	"moneymgr/internal/session"
)

// handleTransactionForm opens the modal. With ?id= it is an edit of that
// row; without, a blank create form.
func (s *Server) handleTransactionForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if id := formInt64(r, "id"); id > 0 {
		if err := s.sess.BeginEdit(r.Context(), id); err != nil {
			slog.WarnContext(r.Context(), "Edit target lookup failed", "transaction_id", id, "error", err)
			newTriggers().Notify("error", errorMessage(err, "Transaction not found.")).Apply(w)
			s.render(w, r, "transaction_form", (*TransactionFormData)(nil))
			return
		}
	} else {
		s.sess.OpenCreate()
	}
	s.render(w, r, "transaction_form", buildForm(s.sess.View(), ""))
}

// handleCategoryOptions re-renders the category select when the user
// flips the type radio. The current selection survives only if it is
// valid for the new type.
func (s *Server) handleCategoryOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	t := core.TransactionType(strings.TrimSpace(r.FormValue("type")))
	if !t.Valid() {
		t = core.TypeExpense
	}
	selected := strings.TrimSpace(r.FormValue("category"))
	if !core.Category(selected).ValidFor(t) {
		selected = ""
	}
	s.render(w, r, "category_options", categoryOptions(t, selected))
}

func (s *Server) handleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	draft, err := parseTransactionForm(r)
	if err == nil {
		err = s.sess.SubmitTransaction(r.Context(), draft)
	}
	if err != nil {
		// keep the form open with the user's input and the error inline
		s.render(w, r, "transaction_form", resubmitForm(r, errorMessage(err, "Failed to save transaction.")))
		return
	}

	newTriggers().Dashboard().Notify("success", "Transaction saved.").Apply(w)
	s.render(w, r, "transaction_form", (*TransactionFormData)(nil))
}

func (s *Server) handleCloseForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.sess.CloseForm()
	s.render(w, r, "transaction_form", (*TransactionFormData)(nil))
}

// handleConfirmDialog shows the confirmation step for a destructive
// action. kind selects which delete the dialog will submit to.
func (s *Server) handleConfirmDialog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	kind := strings.TrimSpace(r.FormValue("kind"))
	id := formInt64(r, "id")
	if id <= 0 || (kind != "transaction" && kind != "account") {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	msg := "Delete this transaction? This cannot be undone."
	if kind == "account" {
		msg = "Delete this account? Its transactions may be affected."
	}
	s.render(w, r, "confirm_dialog", ConfirmData{Kind: kind, ID: id, Message: msg})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := formInt64(r, "id")
	if id <= 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	err := s.sess.DeleteTransaction(r.Context(), id, formBool(r, "confirmed"))
	switch {
	case errors.Is(err, session.ErrConfirmationRequired):
		// declined or not yet confirmed; nothing was sent
		s.render(w, r, "confirm_dialog", ConfirmData{})
	case err != nil:
		newTriggers().Notify("error", errorMessage(err, "Failed to delete transaction.")).Apply(w)
		s.render(w, r, "confirm_dialog", ConfirmData{})
	default:
		newTriggers().Dashboard().Notify("success", "Transaction deleted.").Apply(w)
		s.render(w, r, "confirm_dialog", ConfirmData{})
	}
}

// handleFilter narrows the table. Submitting with every field empty
// resets the filter and restores the unfiltered list.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	criteria, err := parseFilterForm(r)
	if err == nil {
		err = s.sess.ApplyFilter(r.Context(), criteria)
	}
	if err != nil {
		newTriggers().Notify("error", errorMessage(err, "Failed to filter transactions.")).Apply(w)
	}
	if criteria.IsZero() && err == nil {
		// reset refetches the snapshot, so the cards may have moved too
		newTriggers().Dashboard().Apply(w)
	}
	s.render(w, r, "transaction_table", buildTransactions(s.sess.View()))
}

// resubmitForm rebuilds the form view from the submitted values so the
// user's input is not lost on a failed save.
func resubmitForm(r *http.Request, errMsg string) *TransactionFormData {
	d := &TransactionFormData{
		Type:        strings.TrimSpace(r.FormValue("type")),
		Amount:      strings.TrimSpace(r.FormValue("amount")),
		Description: sanitizeInput(r.FormValue("description")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Division:    strings.TrimSpace(r.FormValue("division")),
		Date:        strings.TrimSpace(r.FormValue("date")),
		Error:       errMsg,
	}
	if id := formInt64(r, "id"); id > 0 {
		d.Editing = true
		d.ID = id
	}
	t := core.TransactionType(d.Type)
	if !t.Valid() {
		t = core.TypeExpense
		d.Type = string(t)
	}
	d.Categories = categoryOptions(t, d.Category)
	d.Divisions = divisionOptions(d.Division)
	return d
}
