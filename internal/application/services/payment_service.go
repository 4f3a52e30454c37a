package services

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/parspay/tara-gateway/internal/application"
	"github.com/parspay/tara-gateway/internal/domain"
	"github.com/parspay/tara-gateway/internal/tara"
)

// GatewayClient is the slice of the Tara client the service depends on.
type GatewayClient interface {
	Request(ctx context.Context, account tara.Account, invoice tara.Invoice, opts tara.RequestOptions) *tara.RequestResult
	ParseCallback(params url.Values) tara.CallbackResult
	Verify(ctx context.Context, account tara.Account, callback tara.CallbackResult) *tara.VerifyResult
	Inquire(ctx context.Context, account tara.Account, orderID int64) *tara.InquiryResult
}

// PaymentService orchestrates one payment lifecycle: create a record, request
// a token, hand the payer to the gateway, and settle on the callback. The
// service enforces the ordering the gateway requires: verification runs only
// for a stored payment whose callback parsed as successful.
type PaymentService struct {
	repo    domain.PaymentRepository
	gateway GatewayClient
	account tara.Account
	logger  *slog.Logger
	now     func() time.Time
}

func NewPaymentService(repo domain.PaymentRepository, gateway GatewayClient, account tara.Account, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		repo:    repo,
		gateway: gateway,
		account: account,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type CreatePaymentInput struct {
	TrackingNumber int64
	Amount         int64
	CallbackURL    string
	Options        tara.RequestOptions
}

type CreatePaymentOutput struct {
	Payment      *domain.Payment
	PaymentURL   string
	Form         map[string]string
	RedirectHTML string
}

// Create persists a new payment record and requests a payment token from the
// gateway. On success the output carries everything the caller needs to build
// the payer redirect. A gateway rejection marks the payment failed and is
// returned as a GATEWAY_REJECTED error carrying the gateway's message.
func (s *PaymentService) Create(ctx context.Context, in CreatePaymentInput) (*CreatePaymentOutput, error) {
	if _, err := s.repo.FindByTrackingNumber(ctx, in.TrackingNumber); err == nil {
		return nil, application.NewInvalidStateError(domain.NewDuplicateTrackingError(in.TrackingNumber))
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, application.NewInternalError(err)
	}

	payment, err := domain.NewPayment(in.TrackingNumber, in.Amount, in.CallbackURL)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	invoice := tara.Invoice{
		TrackingNumber: in.TrackingNumber,
		Amount:         in.Amount,
		CallbackURL:    in.CallbackURL,
	}

	result := s.gateway.Request(ctx, s.account, invoice, in.Options)
	if !result.Succeeded {
		s.logger.Warn("payment request rejected",
			"payment_id", payment.ID,
			"tracking_number", payment.TrackingNumber,
			"message", result.Message,
		)
		s.settleFailed(ctx, payment, result.Message)
		return nil, application.NewGatewayRejectedError(result.Message)
	}

	if err := payment.MarkRedirected(result.Token, s.now()); err != nil {
		return nil, application.NewInternalError(err)
	}
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	html, err := result.RedirectForm()
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment token issued",
		"payment_id", payment.ID,
		"tracking_number", payment.TrackingNumber,
	)

	return &CreatePaymentOutput{
		Payment:      payment,
		PaymentURL:   result.PaymentURL,
		Form:         result.Form,
		RedirectHTML: html,
	}, nil
}

type CallbackOutput struct {
	Payment   *domain.Payment
	Succeeded bool
	Message   string
}

// HandleCallback parses the gateway's return parameters, loads the matching
// payment and, only when the callback reports success, verifies settlement
// with the gateway. A repeated callback for an already settled payment
// returns the stored outcome without contacting the gateway again.
func (s *PaymentService) HandleCallback(ctx context.Context, params url.Values) (*CallbackOutput, error) {
	callback := s.gateway.ParseCallback(params)

	payment, err := s.repo.FindByTrackingNumber(ctx, callback.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, application.NewNotFoundError(domain.NewPaymentNotFoundError(callback.OrderID))
		}
		return nil, application.NewInternalError(err)
	}

	if payment.IsTerminal() {
		message := ""
		if payment.Message != nil {
			message = *payment.Message
		}
		return &CallbackOutput{
			Payment:   payment,
			Succeeded: payment.Status == domain.StatusSucceeded,
			Message:   message,
		}, nil
	}

	if !callback.Succeeded {
		s.logger.Warn("payment callback reported failure",
			"payment_id", payment.ID,
			"result", callback.Result,
		)
		s.settleFailed(ctx, payment, callback.Message)
		return &CallbackOutput{Payment: payment, Message: callback.Message}, nil
	}

	verify := s.gateway.Verify(ctx, s.account, callback)
	if verify.Status != tara.VerifySucceeded {
		s.logger.Warn("payment verification failed",
			"payment_id", payment.ID,
			"message", verify.Message,
		)
		s.settleFailed(ctx, payment, verify.Message)
		return &CallbackOutput{Payment: payment, Message: verify.Message}, nil
	}

	err = payment.MarkSucceeded(verify.TransactionRef, verify.AdditionalData["type"], verify.Message, s.now())
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment settled",
		"payment_id", payment.ID,
		"tracking_number", payment.TrackingNumber,
		"transaction_ref", verify.TransactionRef,
	)

	return &CallbackOutput{Payment: payment, Succeeded: true, Message: verify.Message}, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, application.NewNotFoundError(err)
		}
		return nil, application.NewInternalError(err)
	}
	return payment, nil
}

// Inquire asks the gateway for the settlement history of a stored payment.
func (s *PaymentService) Inquire(ctx context.Context, id string) (*tara.InquiryResult, error) {
	payment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.gateway.Inquire(ctx, s.account, payment.TrackingNumber), nil
}

// Refund always fails: Tara exposes no refund API, and the service reports
// that honestly instead of emulating one.
func (s *PaymentService) Refund(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return application.NewUnsupportedError(tara.ErrRefundNotSupported)
}

// settleFailed is best-effort: a failed state write must not mask the
// gateway's failure message, so the error is only logged.
func (s *PaymentService) settleFailed(ctx context.Context, payment *domain.Payment, message string) {
	if err := payment.MarkFailed(message, s.now()); err != nil {
		s.logger.Error("failed to mark payment failed", "payment_id", payment.ID, "error", err)
		return
	}
	if err := s.repo.Update(ctx, payment); err != nil {
		s.logger.Error("failed to persist failed payment", "payment_id", payment.ID, "error", err)
	}
}
