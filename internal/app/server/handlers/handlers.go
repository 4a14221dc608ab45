package handlers

import (
	"log/slog"
	"net/http"

	"francoggm/payment-service/internal/app/payment"

	"github.com/bytedance/sonic"
)

type Handlers struct {
	paymentService *payment.Service
	logger         *slog.Logger
}

func NewHandlers(paymentService *payment.Service, logger *slog.Logger) *Handlers {
	return &Handlers{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode response", "err", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
