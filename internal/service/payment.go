package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrApprovalOutstanding signals that confirm was called while the bank
// decision is still pending; the payment is returned unchanged and no work is
// re-triggered.
var ErrApprovalOutstanding = errors.New("bank approval outstanding")

// CancelApprovedPolicy decides what happens to captured funds when an
// already-approved payment is cancelled administratively.
type CancelApprovedPolicy string

const (
	// PolicyRetainFunds flips the status and leaves the deduction in place.
	PolicyRetainFunds CancelApprovedPolicy = "retain_funds"
	// PolicyReleaseFunds credits the payer's balance for the captured total
	// before cancelling.
	PolicyReleaseFunds CancelApprovedPolicy = "release_funds"
)

// PaymentRepo defines the interface for payment data persistence operations.
type PaymentRepo interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	Save(ctx context.Context, payment *models.Payment) error
	GetByStatus(ctx context.Context, status models.PaymentStatus) (*[]models.Payment, error)
	Search(ctx context.Context, filter dto.PaymentFilter) (*[]models.Payment, error)
}

// EventRepo persists the append-only payment timeline.
type EventRepo interface {
	Create(ctx context.Context, event *models.PaymentEvent) error
	GetByOrdered(ctx context.Context, key string, value interface{}, order string) (*[]models.PaymentEvent, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Ledger is the balance store consulted by immediate-settlement confirmations
// and credited by refunds and fund-releasing cancellations.
type Ledger interface {
	HasSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error)
	Deduct(ctx context.Context, userID string, amount decimal.Decimal) (*models.Account, error)
	Add(ctx context.Context, userID string, amount decimal.Decimal) (*models.Account, error)
	CurrentBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}

// MethodMaterializer validates and builds the funding instrument variant.
type MethodMaterializer interface {
	Materialize(spec dto.MethodSpec) (models.PaymentMethod, error)
}

// AttemptRecorder appends confirmation attempt records.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, paymentID string, status models.AttemptStatus, responseCode, gatewayCode, message, failureReason string) (*models.PaymentAttempt, error)
}

// PaymentService owns the payment state machine and orchestrates the ledger,
// method registry, attempt tracker and event log around it.
type PaymentService struct {
	Repo      PaymentRepo
	Events    EventRepo
	Attempts  AttemptRecorder
	Ledger    Ledger
	Methods   MethodMaterializer
	Publisher Publisher
	Clock     Clock
	Policy    CancelApprovedPolicy

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPaymentService(repo PaymentRepo, events EventRepo, attempts AttemptRecorder, ledger Ledger, methods MethodMaterializer, publisher Publisher, clock Clock, policy CancelApprovedPolicy) *PaymentService {
	if policy == "" {
		policy = PolicyRetainFunds
	}
	return &PaymentService{
		Repo:      repo,
		Events:    events,
		Attempts:  attempts,
		Ledger:    ledger,
		Methods:   methods,
		Publisher: publisher,
		Clock:     clock,
		Policy:    policy,
		locks:     make(map[string]*sync.Mutex),
	}
}

// lock serializes transitions per payment so the bank simulator can never
// race a manual confirm or cancel on the same row.
func (s *PaymentService) lock(paymentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.locks[paymentID]; !ok {
		s.locks[paymentID] = &sync.Mutex{}
	}
	return s.locks[paymentID]
}

// Create computes the total, persists the payment in PENDING_PAYMENT and
// publishes payments.created. Balance sufficiency is not checked here: the
// front door pre-checks it and Confirm re-checks it against live state.
func (s *PaymentService) Create(ctx context.Context, req *dto.CreatePayment) (*models.Payment, error) {
	req.Sanitize()

	now := s.Clock.Now()
	payment := &models.Payment{
		PayerID:       req.PayerID,
		PayeeID:       req.PayeeID,
		Subtotal:      req.Subtotal,
		Taxes:         req.Taxes,
		Fees:          req.Fees,
		Total:         req.Subtotal.Add(req.Taxes).Add(req.Fees),
		Currency:      models.Currency(req.Currency),
		Status:        models.StatusPendingPayment,
		Metadata:      dto.ToMetadata(req.Metadata),
		CorrelationID: req.CorrelationID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	if err := s.appendEvent(ctx, payment, models.EventPaymentCreated, models.UserActor(payment.PayerID)); err != nil {
		return nil, err
	}

	s.publish(ctx, models.PaymentCreatedTopic, models.PaymentCreatedEvent{
		PaymentID:     payment.ID,
		PayerID:       payment.PayerID,
		PayeeID:       payment.PayeeID,
		Amount:        payment.Total,
		Currency:      string(payment.Currency),
		Status:        string(payment.Status),
		CorrelationID: payment.CorrelationID,
		CreatedAt:     payment.CreatedAt,
	})

	return payment, nil
}

// SelectMethod attaches a validated funding instrument. A REJECTED payment
// re-enters PENDING_PAYMENT here, which is also the retry path for payments
// the bank review turned down.
func (s *PaymentService) SelectMethod(ctx context.Context, paymentID string, spec dto.MethodSpec) (*models.Payment, error) {
	lock := s.lock(paymentID)
	lock.Lock()
	defer lock.Unlock()

	payment, err := s.ByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != models.StatusPendingPayment && payment.Status != models.StatusRejected {
		return nil, &models.InvalidStateError{Op: "select_method", Status: string(payment.Status)}
	}

	method, err := s.Methods.Materialize(spec)
	if err != nil {
		return nil, err
	}

	if payment.Status == models.StatusRejected {
		payment.Status = models.StatusPendingPayment
		payment.RejectedByBalance = false
	}
	payment.Method = method
	payment.UpdatedAt = s.Clock.Now()

	if err := s.Repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("saving payment method: %w", err)
	}

	if err := s.appendEvent(ctx, payment, models.EventMethodSelected, models.UserActor(payment.PayerID)); err != nil {
		return nil, err
	}

	s.publish(ctx, models.PaymentMethodSelectedTopic, models.PaymentMethodSelectedEvent{
		PaymentID:     payment.ID,
		MethodKind:    string(method.Kind),
		MethodFamily:  string(method.Family()),
		Amount:        payment.Total,
		Currency:      string(payment.Currency),
		CorrelationID: payment.CorrelationID,
		SelectedAt:    payment.UpdatedAt,
	})

	return payment, nil
}

// Confirm drives the payment towards settlement, dispatching on the method
// family. Confirming an already-approved payment is a no-op; a payment
// waiting on the bank returns ErrApprovalOutstanding alongside its state.
func (s *PaymentService) Confirm(ctx context.Context, paymentID string) (*models.Payment, error) {
	lock := s.lock(paymentID)
	lock.Lock()
	defer lock.Unlock()

	payment, err := s.ByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	switch payment.Status {
	case models.StatusApproved:
		return payment, nil
	case models.StatusPendingApproval:
		return payment, ErrApprovalOutstanding
	case models.StatusRejected:
		return nil, &models.NotConfirmableError{PaymentID: payment.ID, ByBalance: payment.RejectedByBalance}
	case models.StatusCancelled, models.StatusExpired:
		return nil, &models.InvalidStateError{Op: "confirm", Status: string(payment.Status)}
	}

	if !payment.HasMethod() {
		return nil, &models.MethodRequiredError{PaymentID: payment.ID}
	}

	if payment.Method.Family() == models.FamilyDeferred {
		return s.confirmDeferred(ctx, payment)
	}
	return s.confirmImmediate(ctx, payment)
}

func (s *PaymentService) confirmDeferred(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	old := payment.Status
	payment.Status = models.StatusPendingApproval
	payment.UpdatedAt = s.Clock.Now()

	if err := s.Repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("saving payment: %w", err)
	}
	if err := s.appendEvent(ctx, payment, models.EventPaymentPending, models.UserActor(payment.PayerID)); err != nil {
		return nil, err
	}
	if _, err := s.Attempts.RecordAttempt(ctx, payment.ID, models.AttemptPending, "", "", "awaiting bank approval", ""); err != nil {
		return nil, err
	}

	s.publishStatusUpdate(ctx, payment, old, models.UserActor(payment.PayerID))
	return payment, nil
}

func (s *PaymentService) confirmImmediate(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	old := payment.Status
	now := s.Clock.Now()

	_, err := s.Ledger.Deduct(ctx, payment.PayerID, payment.Total)

	var insufficient *models.InsufficientBalanceError
	switch {
	case err == nil:
		payment.Status = models.StatusApproved
		payment.CapturedAt = &now
		payment.UpdatedAt = now

		if err := s.Repo.Save(ctx, payment); err != nil {
			return nil, fmt.Errorf("saving payment: %w", err)
		}
		if err := s.appendEvent(ctx, payment, models.EventPaymentApproved, models.UserActor(payment.PayerID)); err != nil {
			return nil, err
		}
		if _, err := s.Attempts.RecordAttempt(ctx, payment.ID, models.AttemptApproved, "00", "LEDGER_OK", "settled against balance", ""); err != nil {
			return nil, err
		}

		s.publishStatusUpdate(ctx, payment, old, models.UserActor(payment.PayerID))
		return payment, nil

	case errors.As(err, &insufficient):
		payment.Status = models.StatusRejected
		payment.RejectedByBalance = true
		payment.UpdatedAt = now

		if saveErr := s.Repo.Save(ctx, payment); saveErr != nil {
			return nil, fmt.Errorf("saving payment: %w", saveErr)
		}
		if evErr := s.appendEvent(ctx, payment, models.EventPaymentRejected, models.UserActor(payment.PayerID)); evErr != nil {
			return nil, evErr
		}
		if _, atErr := s.Attempts.RecordAttempt(ctx, payment.ID, models.AttemptRejected, "51", "LEDGER_DECLINED", "", insufficient.Error()); atErr != nil {
			return nil, atErr
		}

		s.publishStatusUpdate(ctx, payment, old, models.UserActor(payment.PayerID))
		return payment, insufficient

	default:
		return nil, fmt.Errorf("deducting balance: %w", err)
	}
}

// Cancel moves the payment to CANCELLED. Already-terminal payments other than
// APPROVED are returned unchanged; cancelling an APPROVED payment follows the
// configured funds policy.
func (s *PaymentService) Cancel(ctx context.Context, paymentID, reason, actor string) (*models.Payment, error) {
	lock := s.lock(paymentID)
	lock.Lock()
	defer lock.Unlock()

	payment, err := s.ByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == models.StatusCancelled || payment.Status == models.StatusExpired {
		return payment, nil
	}

	if payment.Status == models.StatusApproved && s.Policy == PolicyReleaseFunds {
		if _, err := s.Ledger.Add(ctx, payment.PayerID, payment.Total); err != nil {
			return nil, fmt.Errorf("releasing captured funds: %w", err)
		}
	}

	old := payment.Status
	payment.Status = models.StatusCancelled
	payment.UpdatedAt = s.Clock.Now()

	if err := s.Repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("saving payment: %w", err)
	}
	if err := s.appendEventPayload(ctx, payment, models.EventPaymentCancelled, actor, map[string]string{"reason": reason}); err != nil {
		return nil, err
	}

	s.publishStatusUpdate(ctx, payment, old, actor)
	return payment, nil
}

// Expire is invoked by the external scheduler; terminal payments are returned
// unchanged.
func (s *PaymentService) Expire(ctx context.Context, paymentID string) (*models.Payment, error) {
	lock := s.lock(paymentID)
	lock.Lock()
	defer lock.Unlock()

	payment, err := s.ByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status.IsTerminal() {
		return payment, nil
	}

	old := payment.Status
	payment.Status = models.StatusExpired
	payment.UpdatedAt = s.Clock.Now()

	if err := s.Repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("saving payment: %w", err)
	}
	if err := s.appendEvent(ctx, payment, models.EventPaymentExpired, models.ActorSystem); err != nil {
		return nil, err
	}

	s.publishStatusUpdate(ctx, payment, old, models.ActorSystem)
	return payment, nil
}

// RetryAfterBalanceRejection re-opens a balance-rejected payment once the
// payer has topped up, bounded by the retry ceiling. Nothing is mutated when
// the balance is still short.
func (s *PaymentService) RetryAfterBalanceRejection(ctx context.Context, paymentID, payerID string) (*models.Payment, error) {
	lock := s.lock(paymentID)
	lock.Lock()
	defer lock.Unlock()

	payment, err := s.ByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.PayerID != payerID {
		return nil, &models.UnauthorizedError{Subject: payerID, Action: "retry payment " + paymentID}
	}
	if payment.Status != models.StatusRejected || !payment.RejectedByBalance {
		return nil, &models.InvalidStateError{Op: "retry_after_balance_rejection", Status: string(payment.Status)}
	}
	if payment.RetryCount >= models.MaxBalanceRetries {
		return nil, &models.RetryLimitExceededError{PaymentID: paymentID, Max: models.MaxBalanceRetries}
	}

	enough, err := s.Ledger.HasSufficientBalance(ctx, payerID, payment.Total)
	if err != nil {
		return nil, fmt.Errorf("checking balance: %w", err)
	}
	if !enough {
		balance, err := s.Ledger.CurrentBalance(ctx, payerID)
		if err != nil {
			return nil, fmt.Errorf("reading balance: %w", err)
		}
		return nil, &models.InsufficientBalanceError{AccountID: payerID, Balance: balance, Required: payment.Total}
	}

	old := payment.Status
	payment.RetryCount++
	payment.RejectedByBalance = false
	payment.Status = models.StatusPendingPayment
	payment.UpdatedAt = s.Clock.Now()

	if err := s.Repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("saving payment: %w", err)
	}
	if err := s.appendEventPayload(ctx, payment, models.EventPaymentRetried, models.UserActor(payerID), map[string]string{"retry": fmt.Sprintf("%d", payment.RetryCount)}); err != nil {
		return nil, err
	}

	s.publishStatusUpdate(ctx, payment, old, models.UserActor(payerID))
	return payment, nil
}

// ResolveApproval applies the bank decision to a payment still awaiting it.
// The status is re-read under the payment lock, so a confirm or cancel that
// slipped in first makes this a no-op.
func (s *PaymentService) ResolveApproval(ctx context.Context, paymentID string, approved bool, actor string) (*models.Payment, error) {
	lock := s.lock(paymentID)
	lock.Lock()
	defer lock.Unlock()

	payment, err := s.ByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.StatusPendingApproval {
		return payment, nil
	}

	old := payment.Status
	now := s.Clock.Now()
	payment.UpdatedAt = now

	if approved {
		payment.Status = models.StatusApproved
		payment.CapturedAt = &now
	} else {
		payment.Status = models.StatusRejected
	}

	if err := s.Repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("saving payment: %w", err)
	}

	if approved {
		if err := s.appendEvent(ctx, payment, models.EventPaymentApproved, actor); err != nil {
			return nil, err
		}
		if _, err := s.Attempts.RecordAttempt(ctx, payment.ID, models.AttemptApproved, "00", "BANK_APPROVED", "approved by bank review", ""); err != nil {
			return nil, err
		}
	} else {
		if err := s.appendEvent(ctx, payment, models.EventPaymentRejected, actor); err != nil {
			return nil, err
		}
		if _, err := s.Attempts.RecordAttempt(ctx, payment.ID, models.AttemptRejected, "05", "BANK_REJECTED", "", "rejected by bank review"); err != nil {
			return nil, err
		}
	}

	s.publishStatusUpdate(ctx, payment, old, actor)
	return payment, nil
}

func (s *PaymentService) ByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := s.Repo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "payment", ID: paymentID}
		}
		return nil, fmt.Errorf("loading payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) Search(ctx context.Context, filter dto.PaymentFilter) ([]models.Payment, error) {
	payments, err := s.Repo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching payments: %w", err)
	}
	return *payments, nil
}

// EventsFor returns the audit timeline oldest-first.
func (s *PaymentService) EventsFor(ctx context.Context, paymentID string) ([]models.PaymentEvent, error) {
	events, err := s.Events.GetByOrdered(ctx, "payment_id = ?", paymentID, "created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("loading payment events: %w", err)
	}
	return *events, nil
}

func (s *PaymentService) appendEvent(ctx context.Context, payment *models.Payment, eventType models.PaymentEventType, actor string) error {
	return s.appendEventPayload(ctx, payment, eventType, actor, nil)
}

func (s *PaymentService) appendEventPayload(ctx context.Context, payment *models.Payment, eventType models.PaymentEventType, actor string, extra map[string]string) error {
	snapshot := map[string]string{
		"status":   string(payment.Status),
		"total":    payment.Total.StringFixed(2),
		"currency": string(payment.Currency),
	}
	for k, v := range extra {
		snapshot[k] = v
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshaling event payload: %w", err)
	}

	event := &models.PaymentEvent{
		PaymentID: payment.ID,
		Type:      eventType,
		Payload:   string(payload),
		Actor:     actor,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Events.Create(ctx, event); err != nil {
		return fmt.Errorf("appending payment event: %w", err)
	}
	return nil
}

// publish hands the domain event to the transport; a failure there must not
// roll back a transition that already happened, so it is only logged.
func (s *PaymentService) publish(ctx context.Context, topic string, message interface{}) {
	if err := s.Publisher.Publish(ctx, topic, message); err != nil {
		logrus.WithError(err).WithField("topic", topic).Error("failed to publish domain event")
	}
}

func (s *PaymentService) publishStatusUpdate(ctx context.Context, payment *models.Payment, old models.PaymentStatus, actor string) {
	s.publish(ctx, models.PaymentStatusUpdatedTopic, models.PaymentStatusUpdatedEvent{
		PaymentID:     payment.ID,
		OldStatus:     string(old),
		NewStatus:     string(payment.Status),
		Amount:        payment.Total,
		Currency:      string(payment.Currency),
		Actor:         actor,
		CorrelationID: payment.CorrelationID,
		UpdatedAt:     payment.UpdatedAt,
	})
}
