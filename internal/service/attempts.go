package service

import (
	"context"

	"github.com/openpago/payments-core/internal/models"
)

// AttemptRepo defines the persistence operations for confirmation attempts.
type AttemptRepo interface {
	Create(ctx context.Context, attempt *models.PaymentAttempt) error
	GetByOrdered(ctx context.Context, key string, value interface{}, order string) (*[]models.PaymentAttempt, error)
	CountBy(ctx context.Context, key string, value interface{}) (int64, error)
}

// AttemptTracker records each confirmation try against a payment. Records are
// append-only; attempt numbers come from counting persisted rows, never from
// in-process counters.
type AttemptTracker struct {
	Repo  AttemptRepo
	Clock Clock
}

func NewAttemptTracker(repo AttemptRepo, clock Clock) *AttemptTracker {
	return &AttemptTracker{Repo: repo, Clock: clock}
}

func (t *AttemptTracker) RecordAttempt(ctx context.Context, paymentID string, status models.AttemptStatus, responseCode, gatewayCode, message, failureReason string) (*models.PaymentAttempt, error) {
	count, err := t.Repo.CountBy(ctx, "payment_id = ?", paymentID)
	if err != nil {
		return nil, err
	}

	now := t.Clock.Now()
	attempt := &models.PaymentAttempt{
		PaymentID:     paymentID,
		Number:        int(count) + 1,
		Status:        status,
		ResponseCode:  responseCode,
		GatewayCode:   gatewayCode,
		Message:       message,
		FailureReason: failureReason,
		CreatedAt:     now,
	}
	if status.IsTerminal() {
		attempt.CompletedAt = &now
	}

	if err := t.Repo.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// AttemptsFor returns the attempt history newest-first.
func (t *AttemptTracker) AttemptsFor(ctx context.Context, paymentID string) ([]models.PaymentAttempt, error) {
	attempts, err := t.Repo.GetByOrdered(ctx, "payment_id = ?", paymentID, "number DESC")
	if err != nil {
		return nil, err
	}
	return *attempts, nil
}

func (t *AttemptTracker) HasExceededMaxAttempts(ctx context.Context, paymentID string, max int) (bool, error) {
	count, err := t.Repo.CountBy(ctx, "payment_id = ?", paymentID)
	if err != nil {
		return false, err
	}
	return count >= int64(max), nil
}

func (t *AttemptTracker) LastAttempt(ctx context.Context, paymentID string) (*models.PaymentAttempt, error) {
	attempts, err := t.AttemptsFor(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}
	return &attempts[0], nil
}

func (t *AttemptTracker) SuccessfulAttempt(ctx context.Context, paymentID string) (*models.PaymentAttempt, error) {
	attempts, err := t.AttemptsFor(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	for i := range attempts {
		if attempts[i].Status == models.AttemptApproved {
			return &attempts[i], nil
		}
	}
	return nil, nil
}
