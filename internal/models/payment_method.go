package models

type MethodKind string
type MethodFamily string
type CardNetwork string

const (
	MethodCreditCard        MethodKind = "CREDIT_CARD"
	MethodDebitCard         MethodKind = "DEBIT_CARD"
	MethodBankTransfer      MethodKind = "BANK_TRANSFER"
	MethodCash              MethodKind = "CASH"
	MethodMercadoPagoWallet MethodKind = "MERCADOPAGO_WALLET"
	MethodPaypalWallet      MethodKind = "PAYPAL_WALLET"

	// FamilyDeferred instruments settle asynchronously through bank review
	// and never touch the balance ledger at confirmation time.
	FamilyDeferred MethodFamily = "DEFERRED_APPROVAL"
	// FamilyImmediate instruments draw down the payer's balance
	// synchronously during confirmation.
	FamilyImmediate MethodFamily = "IMMEDIATE_SETTLEMENT"

	NetworkVisa       CardNetwork = "VISA"
	NetworkMastercard CardNetwork = "MASTERCARD"
	NetworkAmex       CardNetwork = "AMERICAN_EXPRESS"
	NetworkUnknown    CardNetwork = "UNKNOWN"
)

// PaymentMethod is the chosen funding instrument, stored as a tagged variant:
// Kind is the discriminant and the remaining fields are per-variant payload.
// An empty Kind means no method has been selected yet.
type PaymentMethod struct {
	Kind         MethodKind  `json:"kind"`
	CardNetwork  CardNetwork `json:"card_network,omitempty"`
	CardLastFour string      `json:"card_last_four,omitempty"`
	BankName     string      `json:"bank_name,omitempty"`
	BranchCode   string      `json:"branch_code,omitempty"`
	WalletUserID string      `json:"wallet_user_id,omitempty"`
}

func (k MethodKind) IsValid() bool {
	switch k {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer,
		MethodCash, MethodMercadoPagoWallet, MethodPaypalWallet:
		return true
	default:
		return false
	}
}

// Family classifies the instrument for confirmation dispatch.
func (k MethodKind) Family() MethodFamily {
	switch k {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer:
		return FamilyDeferred
	default:
		return FamilyImmediate
	}
}

func (m PaymentMethod) Family() MethodFamily {
	return m.Kind.Family()
}
