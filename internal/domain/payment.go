package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	// StatusPending - record created, token not yet requested from the gateway.
	StatusPending PaymentStatus = "PENDING"
	// StatusRedirected - token issued, payer sent to the gateway's payment page.
	StatusRedirected PaymentStatus = "REDIRECTED"
	// StatusSucceeded - callback received and verification confirmed settlement.
	StatusSucceeded PaymentStatus = "SUCCEEDED"
	// StatusFailed - terminal failure at any phase.
	StatusFailed PaymentStatus = "FAILED"
)

// Payment is one payment attempt tracked by the merchant service. The
// gateway-echoed fields (token, transaction reference, type) are stored
// opaquely for audit and never interpreted.
type Payment struct {
	ID             string
	TrackingNumber int64
	Amount         int64
	CallbackURL    string
	Status         PaymentStatus
	GatewayToken   *string
	TransactionRef *string
	GatewayType    *string
	Message        *string
	CreatedAt      time.Time
	RedirectedAt   *time.Time
	CompletedAt    *time.Time
}

func NewPayment(trackingNumber, amount int64, callbackURL string) (*Payment, error) {
	if trackingNumber <= 0 {
		return nil, NewError(ErrCodeInvalidTrackingNumber, "tracking number must be positive")
	}
	if amount <= 0 {
		return nil, NewError(ErrCodeInvalidAmount, "amount must be positive")
	}
	if callbackURL == "" {
		return nil, NewError(ErrCodeMissingCallbackURL, "callback url is required")
	}

	return &Payment{
		ID:             uuid.New().String(),
		TrackingNumber: trackingNumber,
		Amount:         amount,
		CallbackURL:    callbackURL,
		Status:         StatusPending,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func (p *Payment) IsTerminal() bool {
	return p.Status == StatusSucceeded || p.Status == StatusFailed
}

// MarkRedirected records the payment token and the hand-off to the gateway's
// payment page. Valid only from PENDING.
func (p *Payment) MarkRedirected(token string, at time.Time) error {
	if p.Status != StatusPending {
		return NewError(ErrCodeInvalidTransition, "payment is not pending: "+string(p.Status))
	}
	p.Status = StatusRedirected
	p.GatewayToken = &token
	p.RedirectedAt = &at
	return nil
}

// MarkFailed is a terminal transition allowed from any non-terminal state: a
// request can fail before redirection, a callback or verification after it.
func (p *Payment) MarkFailed(message string, at time.Time) error {
	if p.IsTerminal() {
		return NewError(ErrCodeInvalidTransition, "payment already settled: "+string(p.Status))
	}
	p.Status = StatusFailed
	p.Message = &message
	p.CompletedAt = &at
	return nil
}

// MarkSucceeded records a verified settlement. Valid only from REDIRECTED:
// verification happens strictly after the payer's return, so a payment that
// never reached the gateway cannot succeed.
func (p *Payment) MarkSucceeded(transactionRef, gatewayType, message string, at time.Time) error {
	if p.Status != StatusRedirected {
		return NewError(ErrCodeInvalidTransition, "payment was never redirected: "+string(p.Status))
	}
	p.Status = StatusSucceeded
	p.TransactionRef = &transactionRef
	p.GatewayType = &gatewayType
	p.Message = &message
	p.CompletedAt = &at
	return nil
}
