// Package errors provides custom error types for the Alcancía API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so wrapped copies still compare equal to
// their sentinel under errors.Is.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if stderrors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Verification errors.
var (
	ErrVerificationNotFound = &AppError{Code: "VERIFICATION_NOT_FOUND", Message: "Verification code not found", StatusCode: http.StatusNotFound}
	ErrVerificationExpired  = &AppError{Code: "VERIFICATION_EXPIRED", Message: "Verification code has expired", StatusCode: http.StatusGone}
	ErrVerificationUsed     = &AppError{Code: "VERIFICATION_USED", Message: "Verification code has already been used", StatusCode: http.StatusConflict}
)

// Questionnaire errors.
var (
	ErrQuestionnaireNotFound = &AppError{Code: "QUESTIONNAIRE_NOT_FOUND", Message: "Questionnaire not found", StatusCode: http.StatusNotFound}
	ErrInvalidIncome         = &AppError{Code: "INVALID_INCOME", Message: "Monthly income must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrNoCategories          = &AppError{Code: "NO_CATEGORIES", Message: "At least one expense category must be selected", StatusCode: http.StatusBadRequest}
	ErrUnknownCategory       = &AppError{Code: "UNKNOWN_CATEGORY", Message: "Unknown expense category", StatusCode: http.StatusBadRequest}
	ErrEmptyLog              = &AppError{Code: "EMPTY_LOG", Message: "The monthly log must contain expenses before a budget can be created", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Budget & report errors.
var (
	ErrBudgetNotFound    = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrTemplateNotFound  = &AppError{Code: "TEMPLATE_NOT_FOUND", Message: "Budget template not found", StatusCode: http.StatusNotFound}
	ErrReportTooEarly    = &AppError{Code: "REPORT_TOO_EARLY", Message: "The report can only be generated at the end of the month", StatusCode: http.StatusConflict}
	ErrReportNotFound    = &AppError{Code: "REPORT_NOT_FOUND", Message: "Budget has no generated report", StatusCode: http.StatusNotFound}
	ErrChartRenderFailed = &AppError{Code: "CHART_RENDER_FAILED", Message: "Failed to render report charts", StatusCode: http.StatusBadGateway}
	ErrExportFailed      = &AppError{Code: "EXPORT_FAILED", Message: "Failed to export report", StatusCode: http.StatusInternalServerError}
)
