package handlers

import (
	"net/http"
	"net/url"

	"francoggm/payment-service/internal/models"

	"github.com/go-chi/chi/v5"
)

// GetPaymentStatus always reports APPROVED. No payment is stored, so
// there is nothing to look the id up against.
func (h *Handlers) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")
	if decoded, err := url.PathUnescape(paymentID); err == nil {
		paymentID = decoded
	}

	h.writeJSON(w, http.StatusOK, models.PaymentStatus{
		PaymentID: paymentID,
		Status:    models.StatusApproved,
	})
}
