package rest

import (
	"time"

	"github.com/parspay/tara-gateway/internal/domain"
)

// PaymentView is the JSON shape of a payment. Fields the lifecycle has not
// reached yet are omitted rather than sent as nulls.
type PaymentView struct {
	ID             string     `json:"id"`
	TrackingNumber int64      `json:"tracking_number"`
	Amount         int64      `json:"amount"`
	CallbackURL    string     `json:"callback_url"`
	Status         string     `json:"status"`
	TransactionRef string     `json:"transaction_ref,omitempty"`
	GatewayType    string     `json:"gateway_type,omitempty"`
	Message        string     `json:"message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	RedirectedAt   *time.Time `json:"redirected_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func ToPaymentView(p *domain.Payment) PaymentView {
	view := PaymentView{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		Amount:         p.Amount,
		CallbackURL:    p.CallbackURL,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		RedirectedAt:   p.RedirectedAt,
		CompletedAt:    p.CompletedAt,
	}

	if p.TransactionRef != nil {
		view.TransactionRef = *p.TransactionRef
	}
	if p.GatewayType != nil {
		view.GatewayType = *p.GatewayType
	}
	if p.Message != nil {
		view.Message = *p.Message
	}

	return view
}
