package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
	"github.com/openpago/payments-core/internal/service"
	"github.com/openpago/payments-core/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type paymentFixture struct {
	repo      *mocks.MockPaymentRepo
	events    *mocks.MockEventRepo
	attempts  *mocks.MockAttemptRecorder
	ledger    *mocks.MockLedger
	methods   *mocks.MockMethodMaterializer
	publisher *mocks.MockPublisher
	service   *service.PaymentService
}

func newPaymentFixture(t *testing.T, policy service.CancelApprovedPolicy) *paymentFixture {
	f := &paymentFixture{
		repo:      mocks.NewMockPaymentRepo(t),
		events:    mocks.NewMockEventRepo(t),
		attempts:  mocks.NewMockAttemptRecorder(t),
		ledger:    mocks.NewMockLedger(t),
		methods:   mocks.NewMockMethodMaterializer(t),
		publisher: mocks.NewMockPublisher(t),
	}
	f.service = service.NewPaymentService(
		f.repo, f.events, f.attempts, f.ledger, f.methods, f.publisher,
		fixedClock{t: testNow}, policy,
	)
	return f
}

func pendingPayment(total string) *models.Payment {
	return &models.Payment{
		ID:       "payment-123",
		PayerID:  "user_1",
		PayeeID:  "merchant_1",
		Subtotal: decimal.RequireFromString("80.00"),
		Taxes:    decimal.RequireFromString("10.00"),
		Fees:     decimal.RequireFromString("5.00"),
		Total:    decimal.RequireFromString(total),
		Currency: models.CurrencyUSD,
		Status:   models.StatusPendingPayment,
	}
}

func TestCreatePayment_ComputesTotalAndPublishes(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	req := &dto.CreatePayment{
		Subtotal: decimal.RequireFromString("80.00"),
		Taxes:    decimal.RequireFromString("10.00"),
		Fees:     decimal.RequireFromString("5.00"),
		Currency: "usd",
		PayerID:  "user_1",
		PayeeID:  "merchant_1",
	}

	f.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Total.Equal(decimal.RequireFromString("95.00")) &&
				p.Status == models.StatusPendingPayment &&
				p.Currency == models.CurrencyUSD
		})).
		Return(nil).
		Once()

	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventPaymentCreated && e.Actor == "user_user_1"
		})).
		Return(nil).
		Once()

	f.publisher.EXPECT().
		Publish(ctx, models.PaymentCreatedTopic, mock.AnythingOfType("models.PaymentCreatedEvent")).
		Return(nil).
		Once()

	payment, err := f.service.Create(ctx, req)

	require.NoError(t, err)
	assert.True(t, payment.Total.Equal(payment.Subtotal.Add(payment.Taxes).Add(payment.Fees)))
	assert.Equal(t, models.StatusPendingPayment, payment.Status)
	assert.Equal(t, testNow, payment.CreatedAt)
}

func TestCreatePayment_InvalidCurrency(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)

	req := &dto.CreatePayment{
		Subtotal: decimal.RequireFromString("10.00"),
		Currency: "XXX",
		PayerID:  "user_1",
		PayeeID:  "merchant_1",
	}

	_, err := f.service.Create(context.Background(), req)

	assert.Error(t, err)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSelectMethod_AttachesInstrument(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()
	payment := pendingPayment("95.00")

	method := models.PaymentMethod{Kind: models.MethodCash, BranchCode: "001"}
	spec := dto.MethodSpec{Kind: "CASH", BranchCode: "001"}

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.methods.EXPECT().Materialize(spec).Return(method, nil).Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Method.Kind == models.MethodCash
		})).
		Return(nil).
		Once()
	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventMethodSelected
		})).
		Return(nil).
		Once()
	f.publisher.EXPECT().
		Publish(ctx, models.PaymentMethodSelectedTopic, mock.AnythingOfType("models.PaymentMethodSelectedEvent")).
		Return(nil).
		Once()

	updated, err := f.service.SelectMethod(ctx, payment.ID, spec)

	require.NoError(t, err)
	assert.Equal(t, models.MethodCash, updated.Method.Kind)
}

func TestSelectMethod_ResetsRejectedPayment(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusRejected
	payment.RejectedByBalance = true

	method := models.PaymentMethod{Kind: models.MethodPaypalWallet, WalletUserID: "pp-1"}
	spec := dto.MethodSpec{Kind: "PAYPAL_WALLET", WalletUserID: "pp-1"}

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.methods.EXPECT().Materialize(spec).Return(method, nil).Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusPendingPayment && !p.RejectedByBalance
		})).
		Return(nil).
		Once()
	f.events.EXPECT().Create(ctx, mock.AnythingOfType("*models.PaymentEvent")).Return(nil).Once()
	f.publisher.EXPECT().Publish(ctx, models.PaymentMethodSelectedTopic, mock.Anything).Return(nil).Once()

	updated, err := f.service.SelectMethod(ctx, payment.ID, spec)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingPayment, updated.Status)
	assert.False(t, updated.RejectedByBalance)
}

func TestSelectMethod_ApprovedPaymentFails(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusApproved

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	_, err := f.service.SelectMethod(ctx, payment.ID, dto.MethodSpec{Kind: "CASH", BranchCode: "001"})

	var invalidState *models.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
	assert.Equal(t, string(models.StatusApproved), invalidState.Status)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSelectMethod_WaitsForInFlightConfirm(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Method = models.PaymentMethod{Kind: models.MethodCreditCard}

	var mu sync.Mutex
	current := payment
	var saveOnce sync.Once
	confirmSaving := make(chan struct{})
	release := make(chan struct{})

	f.repo.EXPECT().
		GetByID(ctx, payment.ID).
		RunAndReturn(func(ctx context.Context, id string) (*models.Payment, error) {
			mu.Lock()
			defer mu.Unlock()
			snapshot := *current
			return &snapshot, nil
		}).
		Times(2)
	f.repo.EXPECT().
		Save(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, p *models.Payment) error {
			saveOnce.Do(func() { close(confirmSaving) })
			<-release
			mu.Lock()
			current = p
			mu.Unlock()
			return nil
		}).
		Once()
	f.events.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	f.attempts.EXPECT().
		RecordAttempt(ctx, payment.ID, models.AttemptPending, "", "", "awaiting bank approval", "").
		Return(&models.PaymentAttempt{Number: 1}, nil).
		Once()
	f.publisher.EXPECT().Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).Return(nil).Once()
	f.methods.EXPECT().Materialize(mock.Anything).Return(models.PaymentMethod{Kind: models.MethodCash}, nil).Maybe()

	confirmErr := make(chan error, 1)
	go func() {
		_, err := f.service.Confirm(ctx, payment.ID)
		confirmErr <- err
	}()

	<-confirmSaving

	selectErr := make(chan error, 1)
	go func() {
		_, err := f.service.SelectMethod(ctx, payment.ID, dto.MethodSpec{Kind: "CASH", BranchCode: "001"})
		selectErr <- err
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-confirmErr)

	var invalidState *models.InvalidStateError
	err := <-selectErr
	require.ErrorAs(t, err, &invalidState)
	assert.Equal(t, string(models.StatusPendingApproval), invalidState.Status)
	f.methods.AssertNotCalled(t, "Materialize", mock.Anything)
}

func TestConfirm_NoMethodSelected(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()
	payment := pendingPayment("95.00")

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	_, err := f.service.Confirm(ctx, payment.ID)

	var methodRequired *models.MethodRequiredError
	assert.ErrorAs(t, err, &methodRequired)
}

func TestConfirm_AlreadyApprovedIsIdempotent(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusApproved
	payment.Method = models.PaymentMethod{Kind: models.MethodCash, BranchCode: "001"}

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	confirmed, err := f.service.Confirm(ctx, payment.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, confirmed.Status)
	f.ledger.AssertNotCalled(t, "Deduct", mock.Anything, mock.Anything, mock.Anything)
	f.events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestConfirm_PendingApprovalSignalsOutstanding(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusPendingApproval
	payment.Method = models.PaymentMethod{Kind: models.MethodCreditCard}

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	confirmed, err := f.service.Confirm(ctx, payment.ID)

	assert.ErrorIs(t, err, service.ErrApprovalOutstanding)
	assert.Equal(t, models.StatusPendingApproval, confirmed.Status)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestConfirm_RejectedByBalanceIsNotConfirmable(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusRejected
	payment.RejectedByBalance = true

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	_, err := f.service.Confirm(ctx, payment.ID)

	var notConfirmable *models.NotConfirmableError
	require.ErrorAs(t, err, &notConfirmable)
	assert.True(t, notConfirmable.ByBalance)
}

func TestConfirm_DeferredMethodAwaitsBank(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Method = models.PaymentMethod{Kind: models.MethodCreditCard, CardNetwork: models.NetworkVisa, CardLastFour: "4242"}

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusPendingApproval
		})).
		Return(nil).
		Once()
	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventPaymentPending
		})).
		Return(nil).
		Once()
	f.attempts.EXPECT().
		RecordAttempt(ctx, payment.ID, models.AttemptPending, "", "", "awaiting bank approval", "").
		Return(&models.PaymentAttempt{Number: 1}, nil).
		Once()
	f.publisher.EXPECT().
		Publish(ctx, models.PaymentStatusUpdatedTopic, mock.AnythingOfType("models.PaymentStatusUpdatedEvent")).
		Return(nil).
		Once()

	confirmed, err := f.service.Confirm(ctx, payment.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingApproval, confirmed.Status)
	f.ledger.AssertNotCalled(t, "Deduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_ImmediateMethodSettles(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Method = models.PaymentMethod{Kind: models.MethodCash, BranchCode: "001"}
	total := payment.Total

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.ledger.EXPECT().
		Deduct(ctx, "user_1", total).
		Return(&models.Account{ID: "acc-1", Balance: decimal.RequireFromString("5.00")}, nil).
		Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusApproved && p.CapturedAt != nil
		})).
		Return(nil).
		Once()
	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventPaymentApproved
		})).
		Return(nil).
		Once()
	f.attempts.EXPECT().
		RecordAttempt(ctx, payment.ID, models.AttemptApproved, "00", "LEDGER_OK", "settled against balance", "").
		Return(&models.PaymentAttempt{Number: 1}, nil).
		Once()
	f.publisher.EXPECT().
		Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).
		Return(nil).
		Once()

	confirmed, err := f.service.Confirm(ctx, payment.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, confirmed.Status)
	assert.Equal(t, testNow, *confirmed.CapturedAt)
}

func TestConfirm_InsufficientBalanceRejects(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Method = models.PaymentMethod{Kind: models.MethodMercadoPagoWallet, WalletUserID: "mp-1"}

	ledgerErr := &models.InsufficientBalanceError{
		AccountID: "acc-1",
		Balance:   decimal.RequireFromString("50.00"),
		Required:  payment.Total,
	}

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.ledger.EXPECT().Deduct(ctx, "user_1", payment.Total).Return(nil, ledgerErr).Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusRejected && p.RejectedByBalance
		})).
		Return(nil).
		Once()
	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventPaymentRejected
		})).
		Return(nil).
		Once()
	f.attempts.EXPECT().
		RecordAttempt(ctx, payment.ID, models.AttemptRejected, "51", "LEDGER_DECLINED", "", ledgerErr.Error()).
		Return(&models.PaymentAttempt{Number: 1}, nil).
		Once()
	f.publisher.EXPECT().
		Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).
		Return(nil).
		Once()

	confirmed, err := f.service.Confirm(ctx, payment.ID)

	var insufficient *models.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, models.StatusRejected, confirmed.Status)
	assert.True(t, confirmed.RejectedByBalance)
	assert.Equal(t, 0, confirmed.RetryCount)
}

func TestConfirm_PublishFailureDoesNotFailTransition(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Method = models.PaymentMethod{Kind: models.MethodCash, BranchCode: "001"}

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.ledger.EXPECT().Deduct(ctx, "user_1", payment.Total).Return(&models.Account{}, nil).Once()
	f.repo.EXPECT().Save(ctx, mock.Anything).Return(nil).Once()
	f.events.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	f.attempts.EXPECT().
		RecordAttempt(ctx, payment.ID, models.AttemptApproved, "00", "LEDGER_OK", "settled against balance", "").
		Return(&models.PaymentAttempt{Number: 1}, nil).
		Once()
	f.publisher.EXPECT().
		Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).
		Return(errors.New("kafka down")).
		Once()

	confirmed, err := f.service.Confirm(ctx, payment.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, confirmed.Status)
}

func TestCancel_TerminalPaymentIsIdempotent(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusCancelled

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	cancelled, err := f.service.Cancel(ctx, payment.ID, "dup", models.ActorSystem)

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCancel_ApprovedRetainFundsKeepsDeduction(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusApproved

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusCancelled
		})).
		Return(nil).
		Once()
	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventPaymentCancelled
		})).
		Return(nil).
		Once()
	f.publisher.EXPECT().Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).Return(nil).Once()

	cancelled, err := f.service.Cancel(ctx, payment.ID, "admin cancel", "user_admin")

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	f.ledger.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_ApprovedReleaseFundsCreditsPayer(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyReleaseFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusApproved

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.ledger.EXPECT().
		Add(ctx, "user_1", payment.Total).
		Return(&models.Account{ID: "acc-1"}, nil).
		Once()
	f.repo.EXPECT().Save(ctx, mock.Anything).Return(nil).Once()
	f.events.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).Return(nil).Once()

	cancelled, err := f.service.Cancel(ctx, payment.ID, "admin cancel", "user_admin")

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestExpire_NonTerminalPayment(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusPendingApproval

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusExpired
		})).
		Return(nil).
		Once()
	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventPaymentExpired && e.Actor == models.ActorSystem
		})).
		Return(nil).
		Once()
	f.publisher.EXPECT().Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).Return(nil).Once()

	expired, err := f.service.Expire(ctx, payment.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusExpired, expired.Status)
}

func TestExpire_ApprovedPaymentUnchanged(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusApproved

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	expired, err := f.service.Expire(ctx, payment.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, expired.Status)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRetry_ReopensBalanceRejectedPayment(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusRejected
	payment.RejectedByBalance = true
	payment.RetryCount = 1

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.ledger.EXPECT().HasSufficientBalance(ctx, "user_1", payment.Total).Return(true, nil).Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusPendingPayment &&
				!p.RejectedByBalance && p.RetryCount == 2
		})).
		Return(nil).
		Once()
	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventPaymentRetried
		})).
		Return(nil).
		Once()
	f.publisher.EXPECT().Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).Return(nil).Once()

	retried, err := f.service.RetryAfterBalanceRejection(ctx, payment.ID, "user_1")

	require.NoError(t, err)
	assert.Equal(t, 2, retried.RetryCount)
	assert.Equal(t, models.StatusPendingPayment, retried.Status)
}

func TestRetry_LimitExceeded(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusRejected
	payment.RejectedByBalance = true
	payment.RetryCount = models.MaxBalanceRetries

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	_, err := f.service.RetryAfterBalanceRejection(ctx, payment.ID, "user_1")

	var retryLimit *models.RetryLimitExceededError
	require.ErrorAs(t, err, &retryLimit)
	assert.Equal(t, models.MaxBalanceRetries, retryLimit.Max)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRetry_StillInsufficientDoesNotMutate(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusRejected
	payment.RejectedByBalance = true

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.ledger.EXPECT().HasSufficientBalance(ctx, "user_1", payment.Total).Return(false, nil).Once()
	f.ledger.EXPECT().CurrentBalance(ctx, "user_1").Return(decimal.RequireFromString("50.00"), nil).Once()

	_, err := f.service.RetryAfterBalanceRejection(ctx, payment.ID, "user_1")

	var insufficient *models.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "50.00", insufficient.Balance.StringFixed(2))
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRetry_WrongPayerIsUnauthorized(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusRejected
	payment.RejectedByBalance = true

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	_, err := f.service.RetryAfterBalanceRejection(ctx, payment.ID, "user_2")

	var unauthorized *models.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorized)
}

func TestResolveApproval_ApprovesPendingPayment(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusPendingApproval
	payment.Method = models.PaymentMethod{Kind: models.MethodCreditCard}

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()
	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusApproved && p.CapturedAt != nil
		})).
		Return(nil).
		Once()
	f.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.Type == models.EventPaymentApproved && e.Actor == models.ActorBankSimulator
		})).
		Return(nil).
		Once()
	f.attempts.EXPECT().
		RecordAttempt(ctx, payment.ID, models.AttemptApproved, "00", "BANK_APPROVED", "approved by bank review", "").
		Return(&models.PaymentAttempt{Number: 2}, nil).
		Once()
	f.publisher.EXPECT().Publish(ctx, models.PaymentStatusUpdatedTopic, mock.Anything).Return(nil).Once()

	resolved, err := f.service.ResolveApproval(ctx, payment.ID, true, models.ActorBankSimulator)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, resolved.Status)
}

func TestResolveApproval_SkipsNonPendingPayment(t *testing.T) {
	f := newPaymentFixture(t, service.PolicyRetainFunds)
	ctx := context.Background()

	payment := pendingPayment("95.00")
	payment.Status = models.StatusCancelled

	f.repo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil).Once()

	resolved, err := f.service.ResolveApproval(ctx, payment.ID, true, models.ActorBankSimulator)

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, resolved.Status)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
