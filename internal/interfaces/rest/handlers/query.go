package handlers

import (
	"net/http"

	"github.com/parspay/tara-gateway/internal/interfaces/rest"
	"github.com/parspay/tara-gateway/internal/tara"
)

type InquiryResponse struct {
	Succeeded   bool                 `json:"succeeded"`
	Description string               `json:"description,omitempty"`
	DoTime      string               `json:"do_time,omitempty"`
	OrderID     string               `json:"order_id,omitempty"`
	Purchases   []tara.TrackPurchase `json:"purchases,omitempty"`
	Message     string               `json:"message"`
}

func (h *PaymentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	payment, err := h.service.Get(r.Context(), r.PathValue("paymentID"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToPaymentView(payment))
}

func (h *PaymentHandler) HandleInquiry(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Inquire(r.Context(), r.PathValue("paymentID"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, InquiryResponse{
		Succeeded:   result.Succeeded,
		Description: result.Description,
		DoTime:      result.DoTime,
		OrderID:     result.OrderID,
		Purchases:   result.Purchases,
		Message:     result.Message,
	})
}
