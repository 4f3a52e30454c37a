package services

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/parspay/tara-gateway/internal/domain"
	"github.com/parspay/tara-gateway/internal/tara"
)

type mockPaymentRepository struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment

	createErr error
	updateErr error
}

func newMockPaymentRepository() *mockPaymentRepository {
	return &mockPaymentRepository{payments: make(map[string]*domain.Payment)}
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	copied := *payment
	m.payments[payment.ID] = &copied
	return nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.payments[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockPaymentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber int64) (*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.payments {
		if p.TrackingNumber == trackingNumber {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockPaymentRepository) FindStaleRedirected(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var stale []*domain.Payment
	for _, p := range m.payments {
		if p.Status == domain.StatusRedirected && p.RedirectedAt != nil && time.Since(*p.RedirectedAt) > olderThan {
			copied := *p
			stale = append(stale, &copied)
			if len(stale) == limit {
				break
			}
		}
	}
	return stale, nil
}

func (m *mockPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.payments[payment.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *payment
	m.payments[payment.ID] = &copied
	return nil
}

type mockGateway struct {
	requestFn func(ctx context.Context, account tara.Account, invoice tara.Invoice, opts tara.RequestOptions) *tara.RequestResult
	verifyFn  func(ctx context.Context, account tara.Account, callback tara.CallbackResult) *tara.VerifyResult
	inquireFn func(ctx context.Context, account tara.Account, orderID int64) *tara.InquiryResult

	verifyCalls int
}

func (m *mockGateway) Request(ctx context.Context, account tara.Account, invoice tara.Invoice, opts tara.RequestOptions) *tara.RequestResult {
	if m.requestFn != nil {
		return m.requestFn(ctx, account, invoice, opts)
	}
	return &tara.RequestResult{
		Succeeded:  true,
		Token:      "P1",
		PaymentURL: "https://pay.tara360.ir/pay/api/ipgPurchase",
		Form:       map[string]string{"username": account.Username, "token": "P1"},
	}
}

func (m *mockGateway) ParseCallback(params url.Values) tara.CallbackResult {
	return tara.ParseCallback(params, tara.DefaultMessages())
}

func (m *mockGateway) Verify(ctx context.Context, account tara.Account, callback tara.CallbackResult) *tara.VerifyResult {
	m.verifyCalls++
	if m.verifyFn != nil {
		return m.verifyFn(ctx, account, callback)
	}
	return &tara.VerifyResult{
		Status:         tara.VerifySucceeded,
		TransactionRef: "RRN-777",
		Message:        tara.DefaultMessages().PaymentSucceeded,
		AdditionalData: map[string]string{"token": callback.Token, "type": "PURCHASE"},
	}
}

func (m *mockGateway) Inquire(ctx context.Context, account tara.Account, orderID int64) *tara.InquiryResult {
	if m.inquireFn != nil {
		return m.inquireFn(ctx, account, orderID)
	}
	return &tara.InquiryResult{Succeeded: true, OrderID: "12345"}
}
