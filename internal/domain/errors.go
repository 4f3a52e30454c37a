package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
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

const (
	ErrCodeInvalidTransition     = "INVALID_TRANSITION"
	ErrCodePaymentNotFound       = "PAYMENT_NOT_FOUND"
	ErrCodeInvalidAmount         = "INVALID_AMOUNT"
	ErrCodeInvalidTrackingNumber = "INVALID_TRACKING_NUMBER"
	ErrCodeMissingCallbackURL    = "MISSING_CALLBACK_URL"
	ErrCodeDuplicateTracking     = "DUPLICATE_TRACKING_NUMBER"
)

func NewError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func NewPaymentNotFoundError(trackingNumber int64) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("no payment found for tracking number %d", trackingNumber),
	}
}

func NewDuplicateTrackingError(trackingNumber int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateTracking,
		Message: fmt.Sprintf("a payment already exists for tracking number %d", trackingNumber),
	}
}

// IsErrorCode checks whether err is a DomainError with the given code.
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
