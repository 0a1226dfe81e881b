// Package respond writes JSON responses and maps fault codes onto HTTP
// statuses, so handlers never hand raw service errors to clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/schuelerstaat/statebank/internal/fault"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorBody struct {
	Code    fault.Code `json:"code"`
	Message string     `json:"message"`
}

// Error renders err with the status its fault code maps to. Errors without a
// code are internal: logged, and hidden behind a generic 500.
func Error(w http.ResponseWriter, err error) {
	code := fault.CodeOf(err)
	if code == "" {
		slog.Error("request failed", "error", err)
		JSON(w, http.StatusInternalServerError, errorBody{Code: "INTERNAL", Message: "internal error"})
		return
	}

	JSON(w, statusOf(code), errorBody{Code: code, Message: err.Error()})
}

func statusOf(code fault.Code) int {
	switch code {
	case fault.CodeBadUserInput:
		return http.StatusBadRequest
	case fault.CodeInvalidPassword, fault.CodeCredentialsMissing:
		return http.StatusUnauthorized
	case fault.CodePermissionDenied, fault.CodeCredentialsSet:
		return http.StatusForbidden
	case fault.CodeUserNotFound, fault.CodeProductNotFound,
		fault.CodeEmploymentNotFound, fault.CodeWorktimeNotFound,
		fault.CodeTransactionNotFound, fault.CodeChangeTransactionNotFound,
		fault.CodePurchaseTransactionNotFound:
		return http.StatusNotFound
	case fault.CodeBalanceTooLow, fault.CodeWorktimeAlreadyPaid,
		fault.CodePurchaseTransactionAlreadyPaid:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
