package worker

import (
	"context"
	"math/rand"
	"time"

	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/service"
	"github.com/sirupsen/logrus"
)

// Outcome decides a simulated bank review. Injected so tests can script
// deterministic approvals instead of sampling.
type Outcome interface {
	Approve() bool
}

// RandomOutcome approves with the configured percentage.
type RandomOutcome struct {
	ApprovalPercent int
	Rand            *rand.Rand
}

func (r *RandomOutcome) Approve() bool {
	return r.Rand.Intn(100) < r.ApprovalPercent
}

// PaymentResolver is the slice of the lifecycle manager the simulator uses.
type PaymentResolver interface {
	ResolveApproval(ctx context.Context, paymentID string, approved bool, actor string) (*models.Payment, error)
}

// PendingScanner lists payments awaiting bank review.
type PendingScanner interface {
	GetByStatus(ctx context.Context, status models.PaymentStatus) (*[]models.Payment, error)
}

// BankSimulator periodically resolves payments stuck in PENDING_APPROVAL.
// Each payment must dwell for at least DwellWindow since its last update
// before a decision is drawn; a failure on one payment never aborts the rest
// of the scan.
type BankSimulator struct {
	Payments PendingScanner
	Resolver PaymentResolver
	Outcome  Outcome
	Clock    service.Clock

	Interval    time.Duration
	DwellWindow time.Duration
}

func NewBankSimulator(payments PendingScanner, resolver PaymentResolver, outcome Outcome, clock service.Clock, interval, dwell time.Duration) *BankSimulator {
	return &BankSimulator{
		Payments:    payments,
		Resolver:    resolver,
		Outcome:     outcome,
		Clock:       clock,
		Interval:    interval,
		DwellWindow: dwell,
	}
}

// Run blocks until the context is cancelled, scanning on every tick.
func (s *BankSimulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	logrus.WithFields(logrus.Fields{
		"interval": s.Interval,
		"dwell":    s.DwellWindow,
	}).Info("bank simulator started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("bank simulator stopped")
			return
		case <-ticker.C:
			s.Scan(ctx)
		}
	}
}

// Scan processes one batch of pending-approval payments.
func (s *BankSimulator) Scan(ctx context.Context) {
	payments, err := s.Payments.GetByStatus(ctx, models.StatusPendingApproval)
	if err != nil {
		logrus.WithError(err).Error("bank simulator: scanning pending payments")
		return
	}

	now := s.Clock.Now()
	for _, payment := range *payments {
		if !s.eligible(&payment, now) {
			continue
		}

		approved := s.Outcome.Approve()
		if _, err := s.Resolver.ResolveApproval(ctx, payment.ID, approved, models.ActorBankSimulator); err != nil {
			logrus.WithError(err).WithField("payment_id", payment.ID).
				Error("bank simulator: resolving payment")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"approved":   approved,
		}).Info("bank simulator resolved payment")
	}
}

func (s *BankSimulator) eligible(payment *models.Payment, now time.Time) bool {
	if !payment.HasMethod() || payment.Method.Family() != models.FamilyDeferred {
		return false
	}
	return now.Sub(payment.UpdatedAt) >= s.DwellWindow
}
