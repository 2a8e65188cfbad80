package service_test

import (
	"errors"
	"testing"

	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
	"github.com/openpago/payments-core/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *service.MethodRegistry {
	return service.NewMethodRegistry(&service.AllowlistCardValidator{
		Prefixes: []string{"4", "51", "52", "53", "54", "55", "34", "37"},
	})
}

func TestMaterialize(t *testing.T) {
	tests := []struct {
		name     string
		spec     dto.MethodSpec
		want     models.PaymentMethod
		wantCode string
	}{
		{
			name: "visa credit card",
			spec: dto.MethodSpec{Kind: "CREDIT_CARD", CardNumber: "4111 1111 1111 4242"},
			want: models.PaymentMethod{
				Kind:         models.MethodCreditCard,
				CardNetwork:  models.NetworkVisa,
				CardLastFour: "4242",
			},
		},
		{
			name: "mastercard debit card",
			spec: dto.MethodSpec{Kind: "DEBIT_CARD", CardNumber: "5105105105105100"},
			want: models.PaymentMethod{
				Kind:         models.MethodDebitCard,
				CardNetwork:  models.NetworkMastercard,
				CardLastFour: "5100",
			},
		},
		{
			name: "amex credit card",
			spec: dto.MethodSpec{Kind: "CREDIT_CARD", CardNumber: "371449635398431"},
			want: models.PaymentMethod{
				Kind:         models.MethodCreditCard,
				CardNetwork:  models.NetworkAmex,
				CardLastFour: "8431",
			},
		},
		{
			name: "bank transfer",
			spec: dto.MethodSpec{Kind: "BANK_TRANSFER", BankName: "Banco Galicia", BranchCode: "021"},
			want: models.PaymentMethod{
				Kind:       models.MethodBankTransfer,
				BankName:   "Banco Galicia",
				BranchCode: "021",
			},
		},
		{
			name: "cash at branch",
			spec: dto.MethodSpec{Kind: "cash", BranchCode: "001"},
			want: models.PaymentMethod{Kind: models.MethodCash, BranchCode: "001"},
		},
		{
			name: "mercadopago wallet",
			spec: dto.MethodSpec{Kind: "MERCADOPAGO_WALLET", WalletUserID: "mp-99"},
			want: models.PaymentMethod{Kind: models.MethodMercadoPagoWallet, WalletUserID: "mp-99"},
		},
		{
			name: "paypal wallet",
			spec: dto.MethodSpec{Kind: "PAYPAL_WALLET", WalletUserID: "pp-7"},
			want: models.PaymentMethod{Kind: models.MethodPaypalWallet, WalletUserID: "pp-7"},
		},
		{
			name:     "unknown kind",
			spec:     dto.MethodSpec{Kind: "CHECK"},
			wantCode: models.MethodErrMissingField,
		},
		{
			name:     "card without number",
			spec:     dto.MethodSpec{Kind: "CREDIT_CARD"},
			wantCode: models.MethodErrMissingField,
		},
		{
			name:     "card bin not allowed",
			spec:     dto.MethodSpec{Kind: "CREDIT_CARD", CardNumber: "6011000990139424"},
			wantCode: models.MethodErrBinRejected,
		},
		{
			name:     "bank transfer missing branch",
			spec:     dto.MethodSpec{Kind: "BANK_TRANSFER", BankName: "Banco Galicia"},
			wantCode: models.MethodErrMissingField,
		},
		{
			name:     "cash missing branch",
			spec:     dto.MethodSpec{Kind: "CASH"},
			wantCode: models.MethodErrMissingField,
		},
		{
			name:     "wallet missing user",
			spec:     dto.MethodSpec{Kind: "PAYPAL_WALLET"},
			wantCode: models.MethodErrMissingField,
		},
	}

	registry := newRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Materialize(tt.spec)

			if tt.wantCode != "" {
				var invalid *models.InvalidMethodError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.wantCode, invalid.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaterialize_CardNumberIsNotStored(t *testing.T) {
	registry := newRegistry()

	method, err := registry.Materialize(dto.MethodSpec{Kind: "CREDIT_CARD", CardNumber: "4111111111114242"})

	require.NoError(t, err)
	assert.Equal(t, "4242", method.CardLastFour)
	assert.NotContains(t, method.BankName+method.BranchCode+method.WalletUserID, "4111")
}

func TestAllowlistCardValidator(t *testing.T) {
	validator := &service.AllowlistCardValidator{Prefixes: []string{"4", "51"}}

	assert.True(t, validator.IsAllowed("4111111111111111"))
	assert.True(t, validator.IsAllowed("5105105105105100"))
	assert.False(t, validator.IsAllowed("5205105105105100"))
	assert.False(t, validator.IsAllowed("6011000990139424"))
}

func TestMaterialize_ErrorIsTyped(t *testing.T) {
	registry := newRegistry()

	_, err := registry.Materialize(dto.MethodSpec{Kind: "CREDIT_CARD", CardNumber: "6011000990139424"})

	var invalid *models.InvalidMethodError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, models.MethodErrBinRejected, invalid.Code)
}
