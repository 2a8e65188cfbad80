package dto

import (
	"strings"
	"time"

	"github.com/openpago/payments-core/internal/models"
	"github.com/shopspring/decimal"
)

type CreatePayment struct {
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Taxes         decimal.Decimal   `json:"taxes"`
	Fees          decimal.Decimal   `json:"fees"`
	Currency      string            `json:"currency"`
	PayerID       string            `json:"payer_id"`
	PayeeID       string            `json:"payee_id"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

func (p *CreatePayment) Sanitize() {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	p.PayerID = strings.TrimSpace(p.PayerID)
	p.PayeeID = strings.TrimSpace(p.PayeeID)
	p.CorrelationID = strings.TrimSpace(p.CorrelationID)
}

// MethodSpec is the caller's description of a funding instrument before
// validation. CardNumber is consumed during materialization and never stored.
type MethodSpec struct {
	Kind         string `json:"kind"`
	CardNumber   string `json:"card_number,omitempty"`
	BankName     string `json:"bank_name,omitempty"`
	BranchCode   string `json:"branch_code,omitempty"`
	WalletUserID string `json:"wallet_user_id,omitempty"`
}

func (m *MethodSpec) Sanitize() {
	m.Kind = strings.ToUpper(strings.TrimSpace(m.Kind))
	m.CardNumber = strings.ReplaceAll(strings.TrimSpace(m.CardNumber), " ", "")
	m.BankName = strings.TrimSpace(m.BankName)
	m.BranchCode = strings.TrimSpace(m.BranchCode)
	m.WalletUserID = strings.TrimSpace(m.WalletUserID)
}

type CreateRefund struct {
	PaymentID   string          `json:"payment_id"`
	RequesterID string          `json:"requester_id"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason,omitempty"`
}

func (r *CreateRefund) Sanitize() {
	r.PaymentID = strings.TrimSpace(r.PaymentID)
	r.RequesterID = strings.TrimSpace(r.RequesterID)
	r.Reason = strings.TrimSpace(r.Reason)
}

// PaymentFilter carries the optional read-path filters.
type PaymentFilter struct {
	PayerID   string
	PayeeID   string
	Status    string
	Currency  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	From      *time.Time
	To        *time.Time
}

func ToMetadata(m map[string]string) models.Metadata {
	if len(m) == 0 {
		return nil
	}
	return models.Metadata(m)
}
