package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

const (
	CodeInsufficientFunds      = "WAL_001"
	CodeWalletFrozen           = "WAL_002"
	CodeInvalidAmount          = "WAL_003"
	CodeRefundExceedsHold      = "WAL_004"
	CodeInvalidStateTransition = "RET_001"
	CodeForbiddenActor         = "RET_002"
	CodeReturnWindowClosed     = "RET_003"
	CodeOpenReturnExists       = "RET_004"
	CodeBillAlreadyPaid        = "PAY_001"
	CodeOpenBillExists         = "PAY_002"
	CodeNothingToBill          = "PAY_003"
	CodeExternalService        = "EXT_001"
	CodeNotFound               = "SYS_404"
	CodeDataIntegrity          = "SYS_003"
)

// ---- Security & Authentication (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAdminRequired() *AppError {
	return New("AUTH_005", "Admin role required", http.StatusForbidden)
}

func ErrRateLimitExceeded() *AppError {
	return New("SEC_005", "Too many requests", http.StatusTooManyRequests)
}

// ---- Wallets (WAL) ----

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrWalletFrozen() *AppError {
	return New(CodeWalletFrozen, "Wallet is frozen", http.StatusLocked)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

func ErrRefundExceedsHold() *AppError {
	return New(CodeRefundExceedsHold, "Amount exceeds the funds held for the order", http.StatusUnprocessableEntity)
}

// ---- Returns (RET) ----

func ErrInvalidStateTransition(from, to string) *AppError {
	return New(CodeInvalidStateTransition, fmt.Sprintf("Cannot move from %s to %s", from, to), http.StatusConflict)
}

func ErrForbiddenActor() *AppError {
	return New(CodeForbiddenActor, "Actor is not a party to this request", http.StatusForbidden)
}

func ErrReturnWindowClosed() *AppError {
	return New(CodeReturnWindowClosed, "Return window has closed", http.StatusUnprocessableEntity)
}

func ErrOpenReturnExists() *AppError {
	return New(CodeOpenReturnExists, "An open return already covers this item", http.StatusConflict)
}

// ---- Payout bills (PAY) ----

func ErrBillAlreadyPaid() *AppError {
	return New(CodeBillAlreadyPaid, "Payout bill is already paid", http.StatusConflict)
}

func ErrOpenBillExists() *AppError {
	return New(CodeOpenBillExists, "Store already has an open payout bill", http.StatusConflict)
}

func ErrNothingToBill() *AppError {
	return New(CodeNothingToBill, "No eligible items to bill", http.StatusUnprocessableEntity)
}

// ---- External collaborators (EXT) ----

func ErrExternalService(service string, err error) *AppError {
	return Wrap(CodeExternalService, fmt.Sprintf("%s is unavailable", service), http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrDataIntegrity(err error) *AppError {
	return Wrap(CodeDataIntegrity, "Data integrity violation", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a 400 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
