package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConfiguration indicates that a required setting (e.g. the provider credential) is missing.
var ErrConfiguration = errors.New("configuration error")

// ErrUpstream indicates that the exchange-rate provider answered with a failure.
var ErrUpstream = errors.New("upstream provider error")

// ErrStore indicates that a read or write against persistence failed.
var ErrStore = errors.New("store error")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientFunds indicates that a wallet balance does not cover the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// AppError is an error carrying the HTTP status it should be reported with.
// Kind is one of the sentinels above; Err is the underlying cause, if any.
// Both are reachable through errors.Is / errors.As.
type AppError struct {
	Code    int
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError builds an AppError with an explicit status code and no kind.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports bad caller input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: ErrValidation, Message: message}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Kind: ErrNotFound, Message: message}
}

// NewForbiddenError reports an action the caller is not allowed to take.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Kind: ErrForbidden, Message: message}
}

// NewConfigurationError reports a missing or invalid setting.
func NewConfigurationError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Kind: ErrConfiguration, Message: message}
}

// NewUpstreamError reports a provider failure. The provider message is kept verbatim.
func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Kind: ErrUpstream, Message: message, Err: cause}
}

// NewStoreError reports a persistence failure.
func NewStoreError(message string, cause error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Kind: ErrStore, Message: message, Err: cause}
}

// StatusCode returns the HTTP status for err, defaulting to 500.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
