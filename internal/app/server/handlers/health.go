package handlers

import (
	"net/http"

	"francoggm/payment-service/internal/models"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.UpStatus())
}
