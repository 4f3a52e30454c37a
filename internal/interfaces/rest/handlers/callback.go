package handlers

import (
	"net/http"

	"github.com/parspay/tara-gateway/internal/application"
	"github.com/parspay/tara-gateway/internal/interfaces/rest"
)

type CallbackResponse struct {
	Payment   rest.PaymentView `json:"payment"`
	Succeeded bool             `json:"succeeded"`
	Message   string           `json:"message"`
}

// HandleCallback receives the payer returning from the gateway. Tara sends
// the result either as query parameters or as a POST form, so both are
// accepted and merged by ParseForm.
func (h *PaymentHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	out, err := h.service.HandleCallback(r.Context(), r.Form)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CallbackResponse{
		Payment:   rest.ToPaymentView(out.Payment),
		Succeeded: out.Succeeded,
		Message:   out.Message,
	})
}
