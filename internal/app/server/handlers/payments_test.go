package handlers

import (
	"strings"
	"testing"
)

func TestParsePaymentRequest(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]any
		wantOrder  *string
		wantAmount float64
		wantErr    string
	}{
		{name: "all fields", fields: map[string]any{"orderId": "ORD-1", "amount": 19.5}, wantOrder: strPtr("ORD-1"), wantAmount: 19.5},
		{name: "empty", fields: map[string]any{}},
		{name: "explicit nulls", fields: map[string]any{"orderId": nil, "amount": nil}},
		{name: "unknown fields ignored", fields: map[string]any{"currency": "BRL", "amount": 3.0}, wantAmount: 3},
		{name: "integer amount", fields: map[string]any{"amount": float64(100)}, wantAmount: 100},
		{name: "string amount", fields: map[string]any{"amount": "19.50"}, wantErr: "amount must be a number, got string"},
		{name: "boolean amount", fields: map[string]any{"amount": true}, wantErr: "amount must be a number, got boolean"},
		{name: "numeric order id", fields: map[string]any{"orderId": 12.0}, wantErr: "orderId must be a string, got number"},
		{name: "object order id", fields: map[string]any{"orderId": map[string]any{}}, wantErr: "orderId must be a string, got object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parsePaymentRequest(tt.fields)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if (req.OrderID == nil) != (tt.wantOrder == nil) || (req.OrderID != nil && *req.OrderID != *tt.wantOrder) {
				t.Errorf("OrderID = %v, want %v", req.OrderID, tt.wantOrder)
			}
			if req.Amount != tt.wantAmount {
				t.Errorf("Amount = %v, want %v", req.Amount, tt.wantAmount)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
