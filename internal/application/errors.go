package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	IDNumber   string
	Details    any
	Fields     []domain.FieldViolation
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeProviderRejected = "PROVIDER_REJECTED"
	ErrCodeTimeout          = "TIMEOUT"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

func NewInvalidInputError(err error) *ServiceError {
	svcErr := &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
	if domainErr, ok := domain.IsValidationError(err); ok {
		svcErr.Code = domainErr.Code
		svcErr.Message = domainErr.Message
		svcErr.Fields = domainErr.Fields
	}
	return svcErr
}

// NewProviderRejectedError mirrors Cashea's status back to the caller.
// Statuses that would read as success to a client become 502.
func NewProviderRejectedError(idNumber domain.ProviderOrderID, confirmation *domain.ProviderConfirmation) *ServiceError {
	status := confirmation.StatusCode
	// Deliberate remap: mirroring a 202 or 3xx would read as success.
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	return &ServiceError{
		Code:       ErrCodeProviderRejected,
		Message:    "Error al confirmar con Cashea",
		HTTPStatus: status,
		IDNumber:   idNumber.String(),
		Details:    confirmation.Body,
		Err:        fmt.Errorf("cashea returned status %d", confirmation.StatusCode),
	}
}

func NewTimeoutError(idNumber domain.ProviderOrderID, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "An upstream service timed out",
		HTTPStatus: http.StatusInternalServerError,
		IDNumber:   idNumber.String(),
		Err:        err,
	}
}

func NewInternalError(idNumber domain.ProviderOrderID, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		IDNumber:   idNumber.String(),
		Err:        err,
	}
}

func NewMethodNotAllowedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeMethodNotAllowed,
		Message:    "Solo se acepta POST",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// PlatformRejectedError is Shopify refusing the order, or answering
// success without an order we can read.
type PlatformRejectedError struct {
	StatusCode int
	Body       any
	Reason     string
}

func (e *PlatformRejectedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("shopify rejected order (status: %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("shopify rejected order (status: %d)", e.StatusCode)
}

func IsPlatformRejected(err error) (*PlatformRejectedError, bool) {
	var rejErr *PlatformRejectedError
	ok := errors.As(err, &rejErr)
	return rejErr, ok
}
