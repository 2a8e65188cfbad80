package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string
type Currency string

const (
	StatusPendingPayment  PaymentStatus = "PENDING_PAYMENT"
	StatusPendingApproval PaymentStatus = "PENDING_APPROVAL"
	StatusApproved        PaymentStatus = "APPROVED"
	StatusRejected        PaymentStatus = "REJECTED"
	StatusCancelled       PaymentStatus = "CANCELLED"
	StatusExpired         PaymentStatus = "EXPIRED"

	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyARS Currency = "ARS"
	CurrencyMXN Currency = "MXN"
	CurrencyCOP Currency = "COP"

	// MaxBalanceRetries caps how many times a payer may retry a payment
	// that was rejected for insufficient funds.
	MaxBalanceRetries = 3
)

// Metadata is a free-form string map persisted as a JSON column.
type Metadata map[string]string

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}
	return json.Unmarshal(raw, m)
}

type Payment struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	PayerID           string          `json:"payer_id" gorm:"index;not null"`
	PayeeID           string          `json:"payee_id" gorm:"index;not null"`
	Subtotal          decimal.Decimal `json:"subtotal" gorm:"type:numeric(19,2)"`
	Taxes             decimal.Decimal `json:"taxes" gorm:"type:numeric(19,2)"`
	Fees              decimal.Decimal `json:"fees" gorm:"type:numeric(19,2)"`
	Total             decimal.Decimal `json:"total" gorm:"type:numeric(19,2)"`
	Currency          Currency        `json:"currency" gorm:"not null"`
	Status            PaymentStatus   `json:"status" gorm:"index;not null"`
	Method            PaymentMethod   `json:"method" gorm:"embedded;embeddedPrefix:method_"`
	RejectedByBalance bool            `json:"rejected_by_balance"`
	RetryCount        int             `json:"retry_count"`
	Metadata          Metadata        `json:"metadata,omitempty" gorm:"type:jsonb"`
	CorrelationID     string          `json:"correlation_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	CapturedAt        *time.Time      `json:"captured_at,omitempty"`
	ExpiresAt         *time.Time      `json:"expires_at,omitempty"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (p *Payment) Validate() error {
	if !p.Currency.IsValid() {
		return fmt.Errorf("invalid currency: %s", p.Currency)
	}
	if p.Subtotal.IsNegative() || p.Taxes.IsNegative() || p.Fees.IsNegative() {
		return fmt.Errorf("amount components must not be negative")
	}
	if !p.Total.Equal(p.Subtotal.Add(p.Taxes).Add(p.Fees)) {
		return fmt.Errorf("total %s does not equal subtotal+taxes+fees", p.Total)
	}
	if p.Total.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("total must be greater than zero")
	}
	if p.PayerID == "" {
		return fmt.Errorf("payer ID is required")
	}
	if p.PayeeID == "" {
		return fmt.Errorf("payee ID is required")
	}
	return nil
}

// HasMethod reports whether a funding instrument has been attached.
func (p *Payment) HasMethod() bool {
	return p.Method.Kind != ""
}

// IsExpired reports whether the payment carries an expiry timestamp that has
// already passed. Payments without an expiry never expire.
func (p *Payment) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusPendingApproval, StatusApproved,
		StatusRejected, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the normal payment flow.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// CanTransitionTo enforces the payment state machine. REJECTED may re-enter
// PENDING_PAYMENT only through an explicit retry or method re-selection; any
// non-terminal status may expire.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if next == StatusExpired {
		return !s.IsTerminal()
	}
	switch s {
	case StatusPendingPayment:
		switch next {
		case StatusPendingApproval, StatusApproved, StatusRejected, StatusCancelled:
			return true
		}
	case StatusPendingApproval:
		switch next {
		case StatusApproved, StatusRejected:
			return true
		}
	case StatusRejected:
		switch next {
		case StatusPendingPayment, StatusCancelled:
			return true
		}
	}
	return false
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyARS, CurrencyMXN, CurrencyCOP:
		return true
	default:
		return false
	}
}
