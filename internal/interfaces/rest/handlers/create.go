package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/parspay/tara-gateway/internal/application"
	"github.com/parspay/tara-gateway/internal/application/services"
	"github.com/parspay/tara-gateway/internal/interfaces/rest"
	"github.com/parspay/tara-gateway/internal/tara"
)

type CreatePaymentRequest struct {
	TrackingNumber int64                `json:"tracking_number" validate:"required,gt=0"`
	Amount         int64                `json:"amount" validate:"required,gt=0"`
	CallbackURL    string               `json:"callback_url" validate:"required,url"`
	Mobile         string               `json:"mobile,omitempty"`
	AdditionalData string               `json:"additional_data,omitempty"`
	VAT            int64                `json:"vat,omitempty" validate:"gte=0"`
	ServiceAmounts []tara.ServiceAmount `json:"service_amounts,omitempty"`
	InvoiceItems   []tara.InvoiceItem   `json:"invoice_items,omitempty"`
}

type CreatePaymentResponse struct {
	Payment      rest.PaymentView  `json:"payment"`
	PaymentURL   string            `json:"payment_url"`
	Form         map[string]string `json:"form"`
	RedirectHTML string            `json:"redirect_html"`
}

// HandleCreate registers a payment and requests a token from the gateway.
// The response carries both the raw form fields and a ready-made
// auto-submitting HTML page, so the merchant can hand the payer off either
// way.
func (h *PaymentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	var req CreatePaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	out, err := h.service.Create(r.Context(), services.CreatePaymentInput{
		TrackingNumber: req.TrackingNumber,
		Amount:         req.Amount,
		CallbackURL:    req.CallbackURL,
		Options: tara.RequestOptions{
			ServiceAmounts: req.ServiceAmounts,
			InvoiceItems:   req.InvoiceItems,
			Mobile:         req.Mobile,
			AdditionalData: req.AdditionalData,
			VAT:            req.VAT,
		},
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, CreatePaymentResponse{
		Payment:      rest.ToPaymentView(out.Payment),
		PaymentURL:   out.PaymentURL,
		Form:         out.Form,
		RedirectHTML: out.RedirectHTML,
	})
}
