package http

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"moneymgr/internal/core"
	"moneymgr/internal/gateway"
	"moneymgr/internal/session"
)

// errorMessage turns an operation error into the string shown to the
// user. Local validation failures get specific wording; backend errors
// surface the backend's message via gateway.UserMessage.
func errorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, core.ErrInvalidType):
		return "Please choose income or expense."
	case errors.Is(err, core.ErrInvalidAmount):
		return "Please enter a valid amount."
	case errors.Is(err, core.ErrNegativeAmount):
		return "Amount cannot be negative."
	case errors.Is(err, core.ErrEmptyDescription):
		return "Please enter a description."
	case errors.Is(err, core.ErrInvalidCategory):
		return "Please pick a category that matches the transaction type."
	case errors.Is(err, core.ErrInvalidDivision):
		return "Please choose a division."
	case errors.Is(err, core.ErrFutureDate):
		return "Date cannot be in the future."
	case errors.Is(err, core.ErrEmptyName):
		return "Please enter an account name."
	case errors.Is(err, core.ErrMissingAccount):
		return "Please select both accounts."
	case errors.Is(err, core.ErrSameAccount):
		return "Source and destination accounts must differ."
	case errors.Is(err, core.ErrNonPositiveAmount):
		return "Amount must be greater than zero."
	case errors.Is(err, session.ErrBusy):
		return "Previous request is still in progress. Please wait."
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return "Please fill in all required fields."
	}
	return gateway.UserMessage(err, fallback)
}
