package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"francoggm/payment-service/internal/models"

	"github.com/bytedance/sonic"
)

func (h *Handlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var fields map[string]any
	if err := sonic.Unmarshal(body, &fields); err != nil || fields == nil {
		h.logger.Warn("rejected payment request", "err", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	req, err := parsePaymentRequest(fields)
	if err != nil {
		h.logger.Error("payment request coercion failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	result := h.paymentService.Process(r.Context(), req)
	if !result.OK() {
		h.writeJSON(w, http.StatusInternalServerError, result.Failed)
		return
	}

	h.writeJSON(w, http.StatusOK, result.Approved)
}

// parsePaymentRequest coerces the loosely typed body. Absent or null
// fields take their zero value; any other JSON type is an error.
func parsePaymentRequest(fields map[string]any) (models.PaymentRequest, error) {
	var req models.PaymentRequest

	switch orderID := fields["orderId"].(type) {
	case nil:
	case string:
		req.OrderID = &orderID
	default:
		return req, fmt.Errorf("orderId must be a string, got %s", jsonType(orderID))
	}

	switch amount := fields["amount"].(type) {
	case nil:
	case float64:
		req.Amount = amount
	default:
		return req, fmt.Errorf("amount must be a number, got %s", jsonType(amount))
	}

	return req, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
