package models_test

import (
	"testing"
	"time"

	"github.com/openpago/payments-core/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validPayment() *models.Payment {
	return &models.Payment{
		PayerID:  "user_1",
		PayeeID:  "merchant_1",
		Subtotal: decimal.RequireFromString("80.00"),
		Taxes:    decimal.RequireFromString("10.00"),
		Fees:     decimal.RequireFromString("5.00"),
		Total:    decimal.RequireFromString("95.00"),
		Currency: models.CurrencyUSD,
		Status:   models.StatusPendingPayment,
	}
}

func TestPaymentValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Payment)
		wantErr bool
	}{
		{name: "valid payment", mutate: func(p *models.Payment) {}},
		{
			name:    "invalid currency",
			mutate:  func(p *models.Payment) { p.Currency = "XXX" },
			wantErr: true,
		},
		{
			name:    "negative taxes",
			mutate:  func(p *models.Payment) { p.Taxes = decimal.RequireFromString("-1.00") },
			wantErr: true,
		},
		{
			name:    "total does not match components",
			mutate:  func(p *models.Payment) { p.Total = decimal.RequireFromString("100.00") },
			wantErr: true,
		},
		{
			name: "zero total",
			mutate: func(p *models.Payment) {
				p.Subtotal = decimal.Zero
				p.Taxes = decimal.Zero
				p.Fees = decimal.Zero
				p.Total = decimal.Zero
			},
			wantErr: true,
		},
		{
			name:    "missing payer",
			mutate:  func(p *models.Payment) { p.PayerID = "" },
			wantErr: true,
		},
		{
			name:    "missing payee",
			mutate:  func(p *models.Payment) { p.PayeeID = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := validPayment()
			tt.mutate(payment)

			err := payment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from models.PaymentStatus
		to   models.PaymentStatus
		want bool
	}{
		{models.StatusPendingPayment, models.StatusPendingApproval, true},
		{models.StatusPendingPayment, models.StatusApproved, true},
		{models.StatusPendingPayment, models.StatusRejected, true},
		{models.StatusPendingPayment, models.StatusCancelled, true},
		{models.StatusPendingApproval, models.StatusApproved, true},
		{models.StatusPendingApproval, models.StatusRejected, true},
		{models.StatusPendingApproval, models.StatusCancelled, false},
		{models.StatusRejected, models.StatusPendingPayment, true},
		{models.StatusRejected, models.StatusCancelled, true},
		{models.StatusRejected, models.StatusApproved, false},
		{models.StatusApproved, models.StatusCancelled, false},
		{models.StatusApproved, models.StatusExpired, false},
		{models.StatusCancelled, models.StatusExpired, false},
		{models.StatusPendingPayment, models.StatusExpired, true},
		{models.StatusPendingApproval, models.StatusExpired, true},
		{models.StatusRejected, models.StatusExpired, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatusIsTerminal(t *testing.T) {
	assert.True(t, models.StatusApproved.IsTerminal())
	assert.True(t, models.StatusCancelled.IsTerminal())
	assert.True(t, models.StatusExpired.IsTerminal())
	assert.False(t, models.StatusPendingPayment.IsTerminal())
	assert.False(t, models.StatusPendingApproval.IsTerminal())
	assert.False(t, models.StatusRejected.IsTerminal())
}

func TestHasMethod(t *testing.T) {
	payment := validPayment()
	assert.False(t, payment.HasMethod())

	payment.Method = models.PaymentMethod{Kind: models.MethodCash, BranchCode: "001"}
	assert.True(t, payment.HasMethod())
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	payment := validPayment()
	assert.False(t, payment.IsExpired(now))

	past := now.Add(-time.Hour)
	payment.ExpiresAt = &past
	assert.True(t, payment.IsExpired(now))

	future := now.Add(time.Hour)
	payment.ExpiresAt = &future
	assert.False(t, payment.IsExpired(now))
}

func TestMethodFamily(t *testing.T) {
	deferred := []models.MethodKind{models.MethodCreditCard, models.MethodDebitCard, models.MethodBankTransfer}
	for _, kind := range deferred {
		assert.Equal(t, models.FamilyDeferred, models.PaymentMethod{Kind: kind}.Family(), string(kind))
	}

	immediate := []models.MethodKind{models.MethodCash, models.MethodMercadoPagoWallet, models.MethodPaypalWallet}
	for _, kind := range immediate {
		assert.Equal(t, models.FamilyImmediate, models.PaymentMethod{Kind: kind}.Family(), string(kind))
	}
}
