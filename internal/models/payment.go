package models

const (
	StatusApproved = "APPROVED"
	StatusFailed   = "FAILED"

	NotificationTypePaymentSuccess = "PAYMENT_SUCCESS"
)

// PaymentRequest is the coerced form of the inbound body. Both fields are
// optional: a nil OrderID is echoed back as null.
type PaymentRequest struct {
	OrderID *string
	Amount  float64
}

type ApprovedPayment struct {
	PaymentID          string  `json:"paymentId"`
	OrderID            *string `json:"orderId"`
	Status             string  `json:"status"`
	Amount             float64 `json:"amount"`
	ProcessingTimeMs   int64   `json:"processingTimeMs"`
	NotificationStatus any     `json:"notificationStatus"`
}

type FailedPayment struct {
	PaymentID string  `json:"paymentId"`
	OrderID   *string `json:"orderId"`
	Status    string  `json:"status"`
	Error     string  `json:"error"`
}

type PaymentStatus struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

type NotificationRequest struct {
	OrderID   *string `json:"orderId"`
	PaymentID string  `json:"paymentId"`
	Type      string  `json:"type"`
	Message   string  `json:"message"`
}
