// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/httpx"
	"github.com/ghuser/bizzy/pkg/idseq"
	"github.com/ghuser/bizzy/pkg/storage"
	accountdomain "github.com/ghuser/bizzy/services/account/domain"
	assistantdomain "github.com/ghuser/bizzy/services/assistant/domain"
	documentdomain "github.com/ghuser/bizzy/services/document/domain"
	inventorydomain "github.com/ghuser/bizzy/services/inventory/domain"
	notificationdomain "github.com/ghuser/bizzy/services/notification/domain"
	taskdomain "github.com/ghuser/bizzy/services/task/domain"
	transactiondomain "github.com/ghuser/bizzy/services/transaction/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors. Server-side
// failures never expose the wrapped error chain.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, message(err, status))
}

func message(err error, status int) string {
	switch {
	case status < http.StatusInternalServerError:
		return err.Error()
	case errors.Is(err, idseq.ErrScopeUnavailable):
		return idseq.ErrScopeUnavailable.Error()
	case errors.Is(err, assistantdomain.ErrAssistantUnavailable):
		return assistantdomain.ErrAssistantUnavailable.Error()
	default:
		return http.StatusText(status)
	}
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, httpx.ErrInvalidID):
		return http.StatusBadRequest // 400

	case errors.Is(err, auth.ErrUserIDNotFound),
		errors.Is(err, accountdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401

	case errors.Is(err, accountdomain.ErrAccountNotFound),
		errors.Is(err, inventorydomain.ErrItemNotFound),
		errors.Is(err, taskdomain.ErrTaskNotFound),
		errors.Is(err, transactiondomain.ErrTransactionNotFound),
		errors.Is(err, documentdomain.ErrDocumentNotFound),
		errors.Is(err, notificationdomain.ErrNotificationNotFound),
		errors.Is(err, storage.ErrObjectNotFound):
		return http.StatusNotFound // 404

	case errors.Is(err, accountdomain.ErrEmailTaken),
		errors.Is(err, inventorydomain.ErrItemAlreadyExists),
		errors.Is(err, taskdomain.ErrTaskAlreadyExists):
		return http.StatusConflict // 409

	case errors.Is(err, accountdomain.ErrInvalidAccount),
		errors.Is(err, business.ErrInvalidSector),
		errors.Is(err, inventorydomain.ErrInvalidItem),
		errors.Is(err, inventorydomain.ErrInsufficientStock),
		errors.Is(err, inventorydomain.ErrStockNotTracked),
		errors.Is(err, taskdomain.ErrInvalidTask),
		errors.Is(err, transactiondomain.ErrInvalidTransaction),
		errors.Is(err, transactiondomain.ErrInvalidPeriod),
		errors.Is(err, documentdomain.ErrInvalidDocument),
		errors.Is(err, documentdomain.ErrTooManyFiles),
		errors.Is(err, assistantdomain.ErrInvalidMessage),
		errors.Is(err, notificationdomain.ErrInvalidNotification):
		return http.StatusUnprocessableEntity // 422

	case errors.Is(err, assistantdomain.ErrAssistantUnavailable):
		return http.StatusBadGateway // 502

	default:
		return http.StatusInternalServerError // 500
	}
}
