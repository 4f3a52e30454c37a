package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parspay/tara-gateway/internal/domain"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
            id, tracking_number, amount, callback_url, status,
            gateway_token, transaction_ref, gateway_type, message,
            created_at, redirected_at, completed_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.TrackingNumber,
		payment.Amount,
		payment.CallbackURL,
		payment.Status,
		payment.GatewayToken,
		payment.TransactionRef,
		payment.GatewayType,
		payment.Message,
		payment.CreatedAt,
		payment.RedirectedAt,
		payment.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, selectPayment+` WHERE id = $1`, id)
	return scanPayment(row)
}

func (r *PaymentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber int64) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, selectPayment+` WHERE tracking_number = $1`, trackingNumber)
	return scanPayment(row)
}

func (r *PaymentRepository) FindStaleRedirected(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.Payment, error) {
	query := selectPayment + `
		WHERE status = $1 AND redirected_at < $2
		ORDER BY redirected_at
		LIMIT $3
	`

	cutoff := time.Now().UTC().Add(-olderThan)
	rows, err := r.db.Query(ctx, query, domain.StatusRedirected, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale redirected payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	query := `
		UPDATE payments
		SET status = $2, gateway_token = $3, transaction_ref = $4,
		    gateway_type = $5, message = $6, redirected_at = $7, completed_at = $8
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.Status,
		payment.GatewayToken,
		payment.TransactionRef,
		payment.GatewayType,
		payment.Message,
		payment.RedirectedAt,
		payment.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

const selectPayment = `
	SELECT id, tracking_number, amount, callback_url, status,
	       gateway_token, transaction_ref, gateway_type, message,
	       created_at, redirected_at, completed_at
	FROM payments
`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID,
		&p.TrackingNumber,
		&p.Amount,
		&p.CallbackURL,
		&p.Status,
		&p.GatewayToken,
		&p.TransactionRef,
		&p.GatewayType,
		&p.Message,
		&p.CreatedAt,
		&p.RedirectedAt,
		&p.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}

	return &p, nil
}
