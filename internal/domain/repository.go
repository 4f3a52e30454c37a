package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when no payment matches.
var ErrNotFound = errors.New("payment not found")

// PaymentRepository is the persistence port for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id string) (*Payment, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber int64) (*Payment, error)
	// FindStaleRedirected lists payments that were handed to the gateway but
	// whose callback never settled them, oldest first.
	FindStaleRedirected(ctx context.Context, olderThan time.Duration, limit int) ([]*Payment, error)
	Update(ctx context.Context, payment *Payment) error
}
