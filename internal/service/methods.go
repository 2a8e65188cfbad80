package service

import (
	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
)

// CardValidator is the external collaborator that vets card numbers against
// the BIN allowlist.
type CardValidator interface {
	IsAllowed(cardNumber string) bool
}

// MethodRegistry validates a caller-supplied method spec and materializes it
// as the tagged variant stored on the payment.
type MethodRegistry struct {
	Cards CardValidator
}

func NewMethodRegistry(cards CardValidator) *MethodRegistry {
	return &MethodRegistry{Cards: cards}
}

func (r *MethodRegistry) Materialize(spec dto.MethodSpec) (models.PaymentMethod, error) {
	spec.Sanitize()

	kind := models.MethodKind(spec.Kind)
	if !kind.IsValid() {
		return models.PaymentMethod{}, &models.InvalidMethodError{
			Code:   models.MethodErrMissingField,
			Reason: "unknown payment method kind " + spec.Kind,
		}
	}

	method := models.PaymentMethod{Kind: kind}

	switch kind {
	case models.MethodCreditCard, models.MethodDebitCard:
		if spec.CardNumber == "" {
			return models.PaymentMethod{}, &models.InvalidMethodError{
				Code:   models.MethodErrMissingField,
				Reason: "card number is required",
			}
		}
		if !r.Cards.IsAllowed(spec.CardNumber) {
			return models.PaymentMethod{}, &models.InvalidMethodError{
				Code:   models.MethodErrBinRejected,
				Reason: "card BIN is not accepted",
			}
		}
		method.CardNetwork = networkFromBIN(spec.CardNumber)
		method.CardLastFour = lastFour(spec.CardNumber)

	case models.MethodBankTransfer:
		if spec.BankName == "" || spec.BranchCode == "" {
			return models.PaymentMethod{}, &models.InvalidMethodError{
				Code:   models.MethodErrMissingField,
				Reason: "bank name and branch code are required",
			}
		}
		method.BankName = spec.BankName
		method.BranchCode = spec.BranchCode

	case models.MethodCash:
		if spec.BranchCode == "" {
			return models.PaymentMethod{}, &models.InvalidMethodError{
				Code:   models.MethodErrMissingField,
				Reason: "branch code is required for cash payments",
			}
		}
		method.BranchCode = spec.BranchCode

	case models.MethodMercadoPagoWallet, models.MethodPaypalWallet:
		if spec.WalletUserID == "" {
			return models.PaymentMethod{}, &models.InvalidMethodError{
				Code:   models.MethodErrMissingField,
				Reason: "wallet user id is required",
			}
		}
		method.WalletUserID = spec.WalletUserID
	}

	return method, nil
}

func networkFromBIN(cardNumber string) models.CardNetwork {
	switch cardNumber[0] {
	case '4':
		return models.NetworkVisa
	case '5':
		return models.NetworkMastercard
	case '3':
		return models.NetworkAmex
	default:
		return models.NetworkUnknown
	}
}

func lastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}

// AllowlistCardValidator accepts cards whose leading digits are on the
// configured BIN prefixes.
type AllowlistCardValidator struct {
	Prefixes []string
}

func (v *AllowlistCardValidator) IsAllowed(cardNumber string) bool {
	for _, p := range v.Prefixes {
		if len(cardNumber) >= len(p) && cardNumber[:len(p)] == p {
			return true
		}
	}
	return false
}
