package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Fields  []FieldViolation
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// FieldViolation names one field that failed request validation and the
// rule it broke.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Request validation errors
const (
	ErrCodeMissingOrderID      = "MISSING_ORDER_ID"
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeMissingItems        = "MISSING_ITEMS"
	ErrCodeMissingCustomerData = "MISSING_CUSTOMER_DATA"
	ErrCodeMalformedBody       = "MALFORMED_BODY"
)

var messages = map[string]string{
	ErrCodeMissingOrderID:      "missing order id",
	ErrCodeInvalidAmount:       "invalid amount",
	ErrCodeMissingItems:        "missing items",
	ErrCodeMissingCustomerData: "missing customer data",
	ErrCodeMalformedBody:       "malformed request body",
}

func NewValidationError(code string, fields []FieldViolation) *DomainError {
	return &DomainError{
		Code:    code,
		Message: messages[code],
		Fields:  fields,
	}
}

func NewMalformedBodyError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeMalformedBody,
		Message: messages[ErrCodeMalformedBody],
		Err:     err,
	}
}

// IsValidationError reports whether err is a request the caller must fix.
func IsValidationError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
