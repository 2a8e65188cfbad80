package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrActiveRefundExists rejects a second refund request while one is still
// pending on the same payment.
var ErrActiveRefundExists = errors.New("an active refund already exists for this payment")

// RefundRepo defines the persistence operations for refunds.
type RefundRepo interface {
	Create(ctx context.Context, refund *models.Refund) error
	GetByID(ctx context.Context, id string) (*models.Refund, error)
	Save(ctx context.Context, refund *models.Refund) error
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.Refund, error)
	GetAll(ctx context.Context) (*[]models.Refund, error)
}

// RefundService runs the post-settlement compensating flow: requests bounded
// by the remaining refundable amount, payee-gated approval, and a ledger
// credit when funds go back.
type RefundService struct {
	Refunds   RefundRepo
	Payments  PaymentRepo
	Events    EventRepo
	Ledger    Ledger
	Publisher Publisher
	Clock     Clock
}

func NewRefundService(refunds RefundRepo, payments PaymentRepo, events EventRepo, ledger Ledger, publisher Publisher, clock Clock) *RefundService {
	return &RefundService{
		Refunds:   refunds,
		Payments:  payments,
		Events:    events,
		Ledger:    ledger,
		Publisher: publisher,
		Clock:     clock,
	}
}

// Create requests a refund against a settled payment owned by the requester.
func (s *RefundService) Create(ctx context.Context, req *dto.CreateRefund) (*models.Refund, error) {
	req.Sanitize()

	payment, err := s.payment(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}

	if payment.PayerID != req.RequesterID {
		return nil, &models.UnauthorizedError{Subject: req.RequesterID, Action: "refund payment " + payment.ID}
	}
	if payment.Status != models.StatusApproved {
		return nil, &models.InvalidStateError{Op: "create_refund", Status: string(payment.Status)}
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("refund amount must be greater than zero")
	}

	refunds, err := s.Refunds.GetBy(ctx, "payment_id = ?", payment.ID)
	if err != nil {
		return nil, fmt.Errorf("loading refunds: %w", err)
	}
	for _, r := range *refunds {
		if r.Status.IsActive() {
			return nil, ErrActiveRefundExists
		}
	}

	remaining := payment.Total.Sub(approvedTotal(*refunds))
	if req.Amount.GreaterThan(remaining) {
		return nil, &models.RefundLimitExceededError{
			PaymentID: payment.ID,
			Remaining: remaining,
			Requested: req.Amount,
		}
	}

	refund := &models.Refund{
		PaymentID:   payment.ID,
		RequesterID: req.RequesterID,
		Amount:      req.Amount,
		Reason:      req.Reason,
		Status:      models.RefundPending,
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Refunds.Create(ctx, refund); err != nil {
		return nil, fmt.Errorf("creating refund: %w", err)
	}

	if err := s.appendRefundEvent(ctx, payment, refund, models.EventRefundRequested, models.UserActor(req.RequesterID)); err != nil {
		return nil, err
	}
	s.publishRefundUpdate(ctx, refund, models.UserActor(req.RequesterID))

	return refund, nil
}

// Approve settles a pending refund. The refundable room is re-checked under
// current state to guard against refunds approved since the request, capping
// the amount when needed, and the payer's ledger is credited.
func (s *RefundService) Approve(ctx context.Context, refundID, approverID, message string) (*models.Refund, error) {
	refund, err := s.refund(ctx, refundID)
	if err != nil {
		return nil, err
	}
	if refund.Status != models.RefundPending {
		return nil, &models.InvalidStateError{Op: "approve_refund", Status: string(refund.Status)}
	}

	payment, err := s.payment(ctx, refund.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.PayeeID != approverID {
		return nil, &models.UnauthorizedError{Subject: approverID, Action: "approve refund " + refundID}
	}

	refunds, err := s.Refunds.GetBy(ctx, "payment_id = ?", payment.ID)
	if err != nil {
		return nil, fmt.Errorf("loading refunds: %w", err)
	}
	approved := approvedTotal(*refunds)
	remaining := payment.Total.Sub(approved)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return nil, &models.RefundLimitExceededError{
			PaymentID: payment.ID,
			Remaining: remaining,
			Requested: refund.Amount,
		}
	}

	amount := refund.Amount
	if amount.GreaterThan(remaining) {
		amount = remaining
	}

	if _, err := s.Ledger.Add(ctx, payment.PayerID, amount); err != nil {
		return nil, fmt.Errorf("crediting refund: %w", err)
	}

	now := s.Clock.Now()
	refund.Amount = amount
	refund.Message = message
	refund.ResolvedAt = &now
	if approved.Add(amount).Equal(payment.Total) {
		refund.Status = models.RefundTotal
	} else {
		refund.Status = models.RefundPartial
	}

	if err := s.Refunds.Save(ctx, refund); err != nil {
		return nil, fmt.Errorf("saving refund: %w", err)
	}

	if err := s.appendRefundEvent(ctx, payment, refund, models.EventRefundApproved, models.UserActor(approverID)); err != nil {
		return nil, err
	}
	s.publishRefundUpdate(ctx, refund, models.UserActor(approverID))

	return refund, nil
}

// Decline closes a pending refund with no ledger effect.
func (s *RefundService) Decline(ctx context.Context, refundID, approverID, message string) (*models.Refund, error) {
	refund, err := s.refund(ctx, refundID)
	if err != nil {
		return nil, err
	}
	if refund.Status != models.RefundPending {
		return nil, &models.InvalidStateError{Op: "decline_refund", Status: string(refund.Status)}
	}

	payment, err := s.payment(ctx, refund.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.PayeeID != approverID {
		return nil, &models.UnauthorizedError{Subject: approverID, Action: "decline refund " + refundID}
	}

	now := s.Clock.Now()
	refund.Status = models.RefundDeclined
	refund.Message = message
	refund.ResolvedAt = &now

	if err := s.Refunds.Save(ctx, refund); err != nil {
		return nil, fmt.Errorf("saving refund: %w", err)
	}

	if err := s.appendRefundEvent(ctx, payment, refund, models.EventRefundDeclined, models.UserActor(approverID)); err != nil {
		return nil, err
	}
	s.publishRefundUpdate(ctx, refund, models.UserActor(approverID))

	return refund, nil
}

func (s *RefundService) ByID(ctx context.Context, refundID string) (*models.Refund, error) {
	return s.refund(ctx, refundID)
}

func (s *RefundService) All(ctx context.Context) ([]models.Refund, error) {
	refunds, err := s.Refunds.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading refunds: %w", err)
	}
	return *refunds, nil
}

func (s *RefundService) ByPayment(ctx context.Context, paymentID string) ([]models.Refund, error) {
	refunds, err := s.Refunds.GetBy(ctx, "payment_id = ?", paymentID)
	if err != nil {
		return nil, fmt.Errorf("loading refunds: %w", err)
	}
	return *refunds, nil
}

func (s *RefundService) ByStatus(ctx context.Context, status models.RefundStatus) ([]models.Refund, error) {
	refunds, err := s.Refunds.GetBy(ctx, "status = ?", status)
	if err != nil {
		return nil, fmt.Errorf("loading refunds: %w", err)
	}
	return *refunds, nil
}

func (s *RefundService) refund(ctx context.Context, refundID string) (*models.Refund, error) {
	refund, err := s.Refunds.GetByID(ctx, refundID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "refund", ID: refundID}
		}
		return nil, fmt.Errorf("loading refund: %w", err)
	}
	return refund, nil
}

func (s *RefundService) payment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := s.Payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "payment", ID: paymentID}
		}
		return nil, fmt.Errorf("loading payment: %w", err)
	}
	return payment, nil
}

func (s *RefundService) appendRefundEvent(ctx context.Context, payment *models.Payment, refund *models.Refund, eventType models.PaymentEventType, actor string) error {
	payload := fmt.Sprintf(`{"refund_id":%q,"amount":%q,"status":%q}`,
		refund.ID, refund.Amount.StringFixed(2), refund.Status)
	event := &models.PaymentEvent{
		PaymentID: payment.ID,
		Type:      eventType,
		Payload:   payload,
		Actor:     actor,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Events.Create(ctx, event); err != nil {
		return fmt.Errorf("appending refund event: %w", err)
	}
	return nil
}

func (s *RefundService) publishRefundUpdate(ctx context.Context, refund *models.Refund, actor string) {
	if err := s.Publisher.Publish(ctx, models.RefundStatusUpdatedTopic, models.RefundStatusUpdatedEvent{
		RefundID:  refund.ID,
		PaymentID: refund.PaymentID,
		Status:    string(refund.Status),
		Amount:    refund.Amount,
		Actor:     actor,
		UpdatedAt: s.Clock.Now(),
	}); err != nil {
		logrus.WithError(err).WithField("refund_id", refund.ID).Error("failed to publish refund event")
	}
}

func approvedTotal(refunds []models.Refund) decimal.Decimal {
	total := decimal.Zero
	for _, r := range refunds {
		if r.Status.IsApproved() {
			total = total.Add(r.Amount)
		}
	}
	return total
}
