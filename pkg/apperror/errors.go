package apperror

import (
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

// Is matches on Code so errors.Is(err, ErrAlreadyClaimed()) works regardless of message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
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

// Economy error codes. Every caller-recoverable failure answers 400.
const (
	CodeInvalidArgument      = "ECO_001"
	CodeDuplicateTransaction = "ECO_002"
	CodeAlreadyClaimed       = "ECO_003"
	CodeNotComplete          = "ECO_004"
	CodeInsufficientFunds    = "ECO_005"

	CodeRateLimited = "RATE_001"
	CodeInternal    = "SYS_001"
	CodeNotFound    = "SYS_404"
)

// ---- Economy (ECO) ----

func ErrInvalidArgument(message string) *AppError {
	return New(CodeInvalidArgument, message, http.StatusBadRequest)
}

func ErrDuplicateTransaction() *AppError {
	return New(CodeDuplicateTransaction, "duplicate txId", http.StatusBadRequest)
}

func ErrAlreadyClaimed(what string) *AppError {
	return New(CodeAlreadyClaimed, what+" already claimed", http.StatusBadRequest)
}

func ErrNotComplete() *AppError {
	return New(CodeNotComplete, "mission not complete", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "not enough paid cash for x2 claim", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

func ErrRouteNotFound() *AppError {
	return New(CodeNotFound, "NOT_FOUND", http.StatusNotFound)
}

// InternalError wraps an internal error as an opaque SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "INTERNAL_ERROR", http.StatusInternalServerError, err)
}

// Validation is shorthand for ErrInvalidArgument, used for request binding failures.
func Validation(message string) *AppError {
	return ErrInvalidArgument(message)
}
