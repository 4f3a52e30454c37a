package tara

import (
	"errors"
	"fmt"
)

// ErrRefundNotSupported is returned for refund attempts. Tara exposes no
// refund API, so the operation is reported as unsupported instead of being
// emulated.
var ErrRefundNotSupported = errors.New("refund operation is not supported by the tara gateway")

// AuthError is the only fault the client lets escape, and only out of
// Authenticate. Authentication has no partial-success concept, so transport
// failures, bad status codes, unparsable bodies, gateway-reported failures
// and a missing token all surface as this one type. Request, Verify and
// Inquire catch it and fold it into their failure results.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx gateway response. The body is kept raw: on
// these paths the gateway returns error pages rather than JSON, and the body
// text is the most useful diagnostic available.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}
