package handlers

import (
	"net/http"

	"github.com/parspay/tara-gateway/internal/interfaces/rest"
)

// HandleRefund exists so merchants get an explicit UNSUPPORTED answer instead
// of a 404. Tara has no refund API.
func (h *PaymentHandler) HandleRefund(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refund(r.Context(), r.PathValue("paymentID")); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, nil)
}
