package domain

import (
	"testing"
	"time"
)

func TestNewPayment_Valid(t *testing.T) {
	p, err := NewPayment(12345, 10000, "https://merchant.example.com/callback")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Status != StatusPending {
		t.Errorf("expected status PENDING, got %s", p.Status)
	}
	if p.ID == "" {
		t.Error("expected generated id")
	}
}

func TestNewPayment_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		trackingNumber int64
		amount         int64
		callbackURL    string
		wantCode       string
	}{
		{"zero tracking number", 0, 10000, "https://merchant.example.com/cb", ErrCodeInvalidTrackingNumber},
		{"negative amount", 1, -5, "https://merchant.example.com/cb", ErrCodeInvalidAmount},
		{"zero amount", 1, 0, "https://merchant.example.com/cb", ErrCodeInvalidAmount},
		{"missing callback url", 1, 10000, "", ErrCodeMissingCallbackURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPayment(tt.trackingNumber, tt.amount, tt.callbackURL)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsErrorCode(err, tt.wantCode) {
				t.Errorf("expected code %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestPayment_Lifecycle(t *testing.T) {
	p, _ := NewPayment(1, 10000, "https://merchant.example.com/cb")
	now := time.Now().UTC()

	if err := p.MarkRedirected("P1", now); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Status != StatusRedirected || p.GatewayToken == nil || *p.GatewayToken != "P1" {
		t.Errorf("unexpected state after redirect: %+v", p)
	}

	if err := p.MarkSucceeded("RRN-1", "PURCHASE", "ok", now); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Status != StatusSucceeded || *p.TransactionRef != "RRN-1" || *p.GatewayType != "PURCHASE" {
		t.Errorf("unexpected state after success: %+v", p)
	}
	if !p.IsTerminal() {
		t.Error("expected terminal state")
	}
}

func TestPayment_CannotSucceedWithoutRedirect(t *testing.T) {
	p, _ := NewPayment(1, 10000, "https://merchant.example.com/cb")

	err := p.MarkSucceeded("RRN-1", "PURCHASE", "ok", time.Now().UTC())
	if !IsErrorCode(err, ErrCodeInvalidTransition) {
		t.Errorf("expected INVALID_TRANSITION, got %v", err)
	}
}

func TestPayment_FailIsTerminal(t *testing.T) {
	p, _ := NewPayment(1, 10000, "https://merchant.example.com/cb")
	now := time.Now().UTC()

	if err := p.MarkFailed("declined", now); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := p.MarkFailed("again", now); !IsErrorCode(err, ErrCodeInvalidTransition) {
		t.Errorf("expected INVALID_TRANSITION, got %v", err)
	}
	if err := p.MarkRedirected("P1", now); !IsErrorCode(err, ErrCodeInvalidTransition) {
		t.Errorf("expected INVALID_TRANSITION, got %v", err)
	}
}
