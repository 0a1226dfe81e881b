// Package fault carries the typed failure codes the ledger surfaces to callers.
// Codes are stable strings; transports map them to their own status schemes.
package fault

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeBadUserInput        Code = "BAD_USER_INPUT"
	CodeBalanceTooLow       Code = "BALANCE_TOO_LOW"
	CodeUserNotFound        Code = "USER_NOT_FOUND"
	CodePermissionDenied    Code = "PERMISSION_DENIED"
	CodeInvalidPassword     Code = "INVALID_PASSWORD"
	CodeCredentialsSet      Code = "CREDENTIALS_SET"
	CodeCredentialsMissing  Code = "CREDENTIALS_MISSING"
	CodeProductNotFound     Code = "PRODUCT_NOT_FOUND"
	CodeEmploymentNotFound  Code = "EMPLOYMENT_NOT_FOUND"
	CodeWorktimeNotFound    Code = "WORKTIME_NOT_FOUND"
	CodeWorktimeAlreadyPaid Code = "WORKTIME_ALREADY_PAID"

	CodeTransactionNotFound            Code = "TRANSACTION_NOT_FOUND"
	CodeChangeTransactionNotFound      Code = "CHANGE_TRANSACTION_NOT_FOUND"
	CodePurchaseTransactionNotFound    Code = "PURCHASE_TRANSACTION_NOT_FOUND"
	CodePurchaseTransactionAlreadyPaid Code = "PURCHASE_TRANSACTION_ALREADY_PAID"
)

// Error is a failure with a stable code. Two Errors are equivalent for
// errors.Is when their codes match, so services can return enriched messages
// while callers keep matching against the package sentinels.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

// New returns a fault with the given code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the code from err, or empty if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ""
}

var (
	ErrBadUserInput        = &Error{Code: CodeBadUserInput}
	ErrBalanceTooLow       = &Error{Code: CodeBalanceTooLow}
	ErrUserNotFound        = &Error{Code: CodeUserNotFound}
	ErrPermissionDenied    = &Error{Code: CodePermissionDenied}
	ErrInvalidPassword     = &Error{Code: CodeInvalidPassword}
	ErrCredentialsSet      = &Error{Code: CodeCredentialsSet}
	ErrCredentialsMissing  = &Error{Code: CodeCredentialsMissing}
	ErrProductNotFound     = &Error{Code: CodeProductNotFound}
	ErrEmploymentNotFound  = &Error{Code: CodeEmploymentNotFound}
	ErrWorktimeNotFound    = &Error{Code: CodeWorktimeNotFound}
	ErrWorktimeAlreadyPaid = &Error{Code: CodeWorktimeAlreadyPaid}

	ErrTransactionNotFound      = &Error{Code: CodeTransactionNotFound}
	ErrChangeDraftNotFound      = &Error{Code: CodeChangeTransactionNotFound}
	ErrPurchaseDraftNotFound    = &Error{Code: CodePurchaseTransactionNotFound}
	ErrPurchaseDraftAlreadyPaid = &Error{Code: CodePurchaseTransactionAlreadyPaid}
)
