package http

import (
	"errors"
	"net/http"
	"strings"

	"moneymgr/internal/session"
)

type AccountFormData struct {
	Name    string
	Balance string
	Error   string
}

type TransferFormData struct {
	Accounts      []AccountRowData
	FromAccountID int64
	ToAccountID   int64
	Amount        string
	Error         string
}

func (s *Server) handleAccountForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "account_form", &AccountFormData{})
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f, err := parseAccountForm(r)
	if err == nil {
		err = s.sess.CreateAccount(r.Context(), f.Name, f.Balance)
	}
	if err != nil {
		s.render(w, r, "account_form", &AccountFormData{
			Name:    sanitizeInput(r.FormValue("name")),
			Balance: strings.TrimSpace(r.FormValue("balance")),
			Error:   errorMessage(err, "Failed to create account."),
		})
		return
	}

	newTriggers().Accounts().Dashboard().Notify("success", "Account created.").Apply(w)
	s.render(w, r, "account_form", (*AccountFormData)(nil))
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := formInt64(r, "id")
	if id <= 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	err := s.sess.DeleteAccount(r.Context(), id, formBool(r, "confirmed"))
	switch {
	case errors.Is(err, session.ErrConfirmationRequired):
		s.render(w, r, "confirm_dialog", ConfirmData{})
	case err != nil:
		newTriggers().Notify("error", errorMessage(err, "Failed to delete account.")).Apply(w)
		s.render(w, r, "confirm_dialog", ConfirmData{})
	default:
		newTriggers().Accounts().Dashboard().Notify("success", "Account deleted.").Apply(w)
		s.render(w, r, "confirm_dialog", ConfirmData{})
	}
}

func (s *Server) handleTransferForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "transfer_form", &TransferFormData{
		Accounts: buildAccounts(s.sess.View()).Rows,
	})
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseTransferForm(r)
	if err == nil {
		err = s.sess.Transfer(r.Context(), req)
	}
	if err != nil {
		s.render(w, r, "transfer_form", &TransferFormData{
			Accounts:      buildAccounts(s.sess.View()).Rows,
			FromAccountID: req.FromAccountID,
			ToAccountID:   req.ToAccountID,
			Amount:        strings.TrimSpace(r.FormValue("amount")),
			Error:         errorMessage(err, "Transfer failed. Please try again."),
		})
		return
	}

	newTriggers().Accounts().Dashboard().Notify("success", "Transfer completed.").Apply(w)
	s.render(w, r, "transfer_form", (*TransferFormData)(nil))
}
