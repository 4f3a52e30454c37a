package services

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parspay/tara-gateway/internal/application"
	"github.com/parspay/tara-gateway/internal/domain"
	"github.com/parspay/tara-gateway/internal/tara"
)

func testService(repo *mockPaymentRepository, gateway *mockGateway) *PaymentService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	account := tara.Account{Username: "merchant", Password: "secret", IP: "10.0.0.1"}
	return NewPaymentService(repo, gateway, account, logger)
}

func createInput() CreatePaymentInput {
	return CreatePaymentInput{
		TrackingNumber: 12345,
		Amount:         10000,
		CallbackURL:    "https://merchant.example.com/callback",
	}
}

func successParams() url.Values {
	return url.Values{
		"result":  {"0"},
		"token":   {"P1"},
		"orderId": {"12345"},
	}
}

func TestPaymentService_Create_Success(t *testing.T) {
	repo := newMockPaymentRepository()
	out, err := testService(repo, &mockGateway{}).Create(context.Background(), createInput())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRedirected, out.Payment.Status)
	assert.Equal(t, "https://pay.tara360.ir/pay/api/ipgPurchase", out.PaymentURL)
	assert.Equal(t, map[string]string{"username": "merchant", "token": "P1"}, out.Form)
	assert.Contains(t, out.RedirectHTML, `action="https://pay.tara360.ir/pay/api/ipgPurchase"`)

	stored, err := repo.FindByTrackingNumber(context.Background(), 12345)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRedirected, stored.Status)
	require.NotNil(t, stored.GatewayToken)
	assert.Equal(t, "P1", *stored.GatewayToken)
}

func TestPaymentService_Create_InvalidInput(t *testing.T) {
	in := createInput()
	in.Amount = -1

	_, err := testService(newMockPaymentRepository(), &mockGateway{}).Create(context.Background(), in)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidInput, svcErr.Code)
}

func TestPaymentService_Create_DuplicateTrackingNumber(t *testing.T) {
	repo := newMockPaymentRepository()
	service := testService(repo, &mockGateway{})

	_, err := service.Create(context.Background(), createInput())
	require.NoError(t, err)

	_, err = service.Create(context.Background(), createInput())
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidState, svcErr.Code)
}

func TestPaymentService_Create_GatewayRejection(t *testing.T) {
	repo := newMockPaymentRepository()
	gateway := &mockGateway{
		requestFn: func(ctx context.Context, account tara.Account, invoice tara.Invoice, opts tara.RequestOptions) *tara.RequestResult {
			return &tara.RequestResult{Message: "مبلغ بیشتر از حد مجاز"}
		},
	}

	_, err := testService(repo, gateway).Create(context.Background(), createInput())

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeGatewayRejected, svcErr.Code)
	assert.Equal(t, "مبلغ بیشتر از حد مجاز", svcErr.Message)

	stored, findErr := repo.FindByTrackingNumber(context.Background(), 12345)
	require.NoError(t, findErr)
	assert.Equal(t, domain.StatusFailed, stored.Status)
}

func TestPaymentService_HandleCallback_Success(t *testing.T) {
	repo := newMockPaymentRepository()
	gateway := &mockGateway{}
	service := testService(repo, gateway)

	_, err := service.Create(context.Background(), createInput())
	require.NoError(t, err)

	out, err := service.HandleCallback(context.Background(), successParams())

	require.NoError(t, err)
	assert.True(t, out.Succeeded)
	assert.Equal(t, domain.StatusSucceeded, out.Payment.Status)
	require.NotNil(t, out.Payment.TransactionRef)
	assert.Equal(t, "RRN-777", *out.Payment.TransactionRef)
	require.NotNil(t, out.Payment.GatewayType)
	assert.Equal(t, "PURCHASE", *out.Payment.GatewayType)
	assert.Equal(t, 1, gateway.verifyCalls)
}

func TestPaymentService_HandleCallback_FailedCallbackSkipsVerify(t *testing.T) {
	repo := newMockPaymentRepository()
	gateway := &mockGateway{}
	service := testService(repo, gateway)

	_, err := service.Create(context.Background(), createInput())
	require.NoError(t, err)

	params := successParams()
	params.Set("result", "8")

	out, err := service.HandleCallback(context.Background(), params)

	require.NoError(t, err)
	assert.False(t, out.Succeeded)
	assert.Equal(t, "توکن تکراری است", out.Message)
	assert.Equal(t, domain.StatusFailed, out.Payment.Status)
	assert.Equal(t, 0, gateway.verifyCalls, "verify must not run for a failed callback")
}

func TestPaymentService_HandleCallback_VerificationFailure(t *testing.T) {
	repo := newMockPaymentRepository()
	gateway := &mockGateway{
		verifyFn: func(ctx context.Context, account tara.Account, callback tara.CallbackResult) *tara.VerifyResult {
			return &tara.VerifyResult{Status: tara.VerifyFailed, Message: "توکن یافت نشد"}
		},
	}
	service := testService(repo, gateway)

	_, err := service.Create(context.Background(), createInput())
	require.NoError(t, err)

	out, err := service.HandleCallback(context.Background(), successParams())

	require.NoError(t, err)
	assert.False(t, out.Succeeded)
	assert.Equal(t, "توکن یافت نشد", out.Message)
	assert.Equal(t, domain.StatusFailed, out.Payment.Status)
}

func TestPaymentService_HandleCallback_UnknownOrder(t *testing.T) {
	service := testService(newMockPaymentRepository(), &mockGateway{})

	_, err := service.HandleCallback(context.Background(), successParams())

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeNotFound, svcErr.Code)
}

func TestPaymentService_HandleCallback_RepeatedCallbackIsIdempotent(t *testing.T) {
	repo := newMockPaymentRepository()
	gateway := &mockGateway{}
	service := testService(repo, gateway)

	_, err := service.Create(context.Background(), createInput())
	require.NoError(t, err)

	first, err := service.HandleCallback(context.Background(), successParams())
	require.NoError(t, err)
	require.True(t, first.Succeeded)

	second, err := service.HandleCallback(context.Background(), successParams())
	require.NoError(t, err)
	assert.True(t, second.Succeeded)
	assert.Equal(t, 1, gateway.verifyCalls, "settled payment must not be verified twice")
}

func TestPaymentService_Refund_Unsupported(t *testing.T) {
	repo := newMockPaymentRepository()
	service := testService(repo, &mockGateway{})

	out, err := service.Create(context.Background(), createInput())
	require.NoError(t, err)

	err = service.Refund(context.Background(), out.Payment.ID)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeUnsupported, svcErr.Code)
	assert.ErrorIs(t, err, tara.ErrRefundNotSupported)
}

func TestPaymentService_Inquire(t *testing.T) {
	repo := newMockPaymentRepository()
	service := testService(repo, &mockGateway{})

	out, err := service.Create(context.Background(), createInput())
	require.NoError(t, err)

	result, err := service.Inquire(context.Background(), out.Payment.ID)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)

	_, err = service.Inquire(context.Background(), "00000000-0000-0000-0000-000000000000")
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeNotFound, svcErr.Code)
}
