package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"francoggm/payment-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProcessingInterrupted = errors.New("payment processing interrupted")

type Notifier interface {
	Send(ctx context.Context, notification *models.NotificationRequest) (any, error)
}

// Result holds exactly one of Approved or Failed.
type Result struct {
	Approved *models.ApprovedPayment
	Failed   *models.FailedPayment
}

func (r Result) OK() bool {
	return r.Approved != nil
}

type Service struct {
	notifier        Notifier
	processingDelay time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

func NewService(notifier Notifier, processingDelay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		notifier:        notifier,
		processingDelay: processingDelay,
		logger:          logger,
		now:             time.Now,
	}
}

// Process runs a payment through the simulated gateway and notifies the
// downstream service. Every error ends up in a Failed result.
func (s *Service) Process(ctx context.Context, req models.PaymentRequest) Result {
	start := s.now()
	paymentID := uuid.NewString()

	s.logger.Info("processing payment", "paymentId", paymentID, "orderId", orderAttr(req.OrderID), "amount", req.Amount)

	notificationStatus, err := s.process(ctx, paymentID, req)
	if err != nil {
		s.logger.Error("payment failed", "paymentId", paymentID, "orderId", orderAttr(req.OrderID), "err", err)

		return Result{Failed: &models.FailedPayment{
			PaymentID: paymentID,
			OrderID:   req.OrderID,
			Status:    models.StatusFailed,
			Error:     err.Error(),
		}}
	}

	duration := s.now().Sub(start).Milliseconds()
	s.logger.Info("payment completed", "paymentId", paymentID, "orderId", orderAttr(req.OrderID), "durationMs", duration)

	return Result{Approved: &models.ApprovedPayment{
		PaymentID:          paymentID,
		OrderID:            req.OrderID,
		Status:             models.StatusApproved,
		Amount:             req.Amount,
		ProcessingTimeMs:   duration,
		NotificationStatus: notificationStatus,
	}}
}

func (s *Service) process(ctx context.Context, paymentID string, req models.PaymentRequest) (any, error) {
	if err := s.simulateGateway(ctx); err != nil {
		return nil, err
	}

	return s.notifier.Send(ctx, &models.NotificationRequest{
		OrderID:   req.OrderID,
		PaymentID: paymentID,
		Type:      models.NotificationTypePaymentSuccess,
		Message:   SuccessMessage(req.Amount),
	})
}

func (s *Service) simulateGateway(ctx context.Context) error {
	timer := time.NewTimer(s.processingDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrProcessingInterrupted, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// SuccessMessage rounds the shortest decimal form of amount half away
// from zero, so 2.675 reads as $2.68.
func SuccessMessage(amount float64) string {
	return fmt.Sprintf("Payment of $%s processed successfully", decimal.NewFromFloat(amount).StringFixed(2))
}

func orderAttr(orderID *string) any {
	if orderID == nil {
		return nil
	}

	return *orderID
}
