package worker

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/parspay/tara-gateway/internal/domain"
	"github.com/parspay/tara-gateway/internal/tara"
)

// InquiryGateway is the slice of the Tara client the reconciler uses.
type InquiryGateway interface {
	Inquire(ctx context.Context, account tara.Account, orderID int64) *tara.InquiryResult
}

// Reconciler settles payments whose payer never came back: a browser crash or
// a dropped callback leaves the record in REDIRECTED forever, while the
// gateway knows the real outcome. Each cycle it inquires a batch of stale
// redirected payments and applies what the gateway reports.
type Reconciler struct {
	repo       domain.PaymentRepository
	gateway    InquiryGateway
	account    tara.Account
	messages   tara.Messages
	interval   time.Duration
	staleAfter time.Duration
	batchSize  int
	logger     *slog.Logger
	now        func() time.Time
}

func NewReconciler(
	repo domain.PaymentRepository,
	gateway InquiryGateway,
	account tara.Account,
	messages tara.Messages,
	interval time.Duration,
	staleAfter time.Duration,
	batchSize int,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		repo:       repo,
		gateway:    gateway,
		account:    account,
		messages:   messages,
		interval:   interval,
		staleAfter: staleAfter,
		batchSize:  batchSize,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting payment reconciler",
		"interval", r.interval,
		"stale_after", r.staleAfter,
		"batch_size", r.batchSize,
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping payment reconciler")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle.
func (r *Reconciler) RunOnce(ctx context.Context) {
	stale, err := r.repo.FindStaleRedirected(ctx, r.staleAfter, r.batchSize)
	if err != nil {
		r.logger.Error("failed to fetch stale payments", "error", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	r.logger.Info("reconciling stale payments", "count", len(stale))

	for _, payment := range stale {
		if err := r.reconcile(ctx, payment); err != nil {
			r.logger.Error("failed to reconcile payment",
				"payment_id", payment.ID,
				"tracking_number", payment.TrackingNumber,
				"error", err,
			)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context, payment *domain.Payment) error {
	result := r.gateway.Inquire(ctx, r.account, payment.TrackingNumber)
	if !result.Succeeded {
		// The gateway could not answer; the payment stays redirected and is
		// retried next cycle.
		r.logger.Warn("inquiry inconclusive",
			"payment_id", payment.ID,
			"tracking_number", payment.TrackingNumber,
			"message", result.Message,
		)
		return nil
	}

	if settled := r.settledPurchase(payment, result.Purchases); settled != nil {
		if err := payment.MarkSucceeded(settled.RRN, settled.Type, r.messages.PaymentSucceeded, r.now()); err != nil {
			return err
		}
		if err := r.repo.Update(ctx, payment); err != nil {
			return err
		}
		r.logger.Info("payment settled by reconciler",
			"payment_id", payment.ID,
			"tracking_number", payment.TrackingNumber,
			"transaction_ref", settled.RRN,
		)
		return nil
	}

	if err := payment.MarkFailed(r.failureMessage(result.Purchases), r.now()); err != nil {
		return err
	}
	if err := r.repo.Update(ctx, payment); err != nil {
		return err
	}
	r.logger.Info("payment failed by reconciler",
		"payment_id", payment.ID,
		"tracking_number", payment.TrackingNumber,
	)
	return nil
}

// settledPurchase returns the purchase track that settled this payment, or
// nil. When the payment token is known only a matching track counts.
func (r *Reconciler) settledPurchase(payment *domain.Payment, purchases []tara.TrackPurchase) *tara.TrackPurchase {
	for i := range purchases {
		purchase := &purchases[i]
		if !strings.EqualFold(purchase.Result, tara.SuccessResult) {
			continue
		}
		if payment.GatewayToken != nil && *payment.GatewayToken != purchase.Token {
			continue
		}
		return purchase
	}
	return nil
}

func (r *Reconciler) failureMessage(purchases []tara.TrackPurchase) string {
	if len(purchases) == 0 {
		return r.messages.PaymentFailed
	}
	last := purchases[len(purchases)-1]
	return tara.Translate(last.Result, r.messages.PaymentFailed)
}
