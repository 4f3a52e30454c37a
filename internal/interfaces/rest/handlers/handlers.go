package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-playground/validator"

	"github.com/parspay/tara-gateway/internal/application/services"
	"github.com/parspay/tara-gateway/internal/domain"
	"github.com/parspay/tara-gateway/internal/tara"
)

// PaymentService is the slice of the application layer the REST surface uses.
type PaymentService interface {
	Create(ctx context.Context, in services.CreatePaymentInput) (*services.CreatePaymentOutput, error)
	HandleCallback(ctx context.Context, params url.Values) (*services.CallbackOutput, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	Inquire(ctx context.Context, id string) (*tara.InquiryResult, error)
	Refund(ctx context.Context, id string) error
}

type PaymentHandler struct {
	service  PaymentService
	logger   *slog.Logger
	validate *validator.Validate
}

func NewPaymentHandler(service PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		logger:   logger,
		validate: validator.New(),
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payments", h.HandleCreate)
	mux.HandleFunc("GET /payments/callback", h.HandleCallback)
	mux.HandleFunc("POST /payments/callback", h.HandleCallback)
	mux.HandleFunc("GET /payments/{paymentID}", h.HandleGet)
	mux.HandleFunc("GET /payments/{paymentID}/inquiry", h.HandleInquiry)
	mux.HandleFunc("POST /payments/{paymentID}/refund", h.HandleRefund)
}
