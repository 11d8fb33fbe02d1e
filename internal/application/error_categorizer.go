package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/infrastructure/upstream"
)

// ErrorCategory describes an error for logging and alerting.
type ErrorCategory string

const (
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryUpstream       ErrorCategory = "UPSTREAM_REJECTION"
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if _, ok := domain.IsValidationError(err); ok {
		return CategoryClientError
	}

	if _, ok := IsPlatformRejected(err); ok {
		return CategoryUpstream
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeProviderRejected:
			return CategoryUpstream
		case ErrCodeTimeout:
			return CategoryTransient
		case ErrCodeInvalidInput, ErrCodeMethodNotAllowed:
			return CategoryClientError
		}
	}

	if upstream.IsTimeout(err) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if _, ok := domain.IsValidationError(err); ok {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if domainErr, ok := domain.IsValidationError(err); ok {
		return domainErr.Code
	}

	if upstream.IsTimeout(err) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
