package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is the merchant-facing error for the application layer. The
// HTTPStatus is advisory for the REST surface.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
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
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidState    = "INVALID_STATE"
	ErrCodeGatewayRejected = "GATEWAY_REJECTED"
	ErrCodeUnsupported     = "UNSUPPORTED"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    "Payment not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewInvalidStateError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidState,
		Message:    "Invalid state",
		HTTPStatus: http.StatusConflict,
		Err:        err,
	}
}

// NewGatewayRejectedError carries the gateway's own failure message, which is
// already safe for merchant display.
func NewGatewayRejectedError(message string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeGatewayRejected,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
	}
}

func NewUnsupportedError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnsupported,
		Message:    "Operation is not supported by the gateway",
		HTTPStatus: http.StatusNotImplemented,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
