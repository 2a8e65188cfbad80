package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentCreatedTopic        = "payments.created"
	PaymentStatusUpdatedTopic  = "payments.status_updated"
	PaymentMethodSelectedTopic = "payments.method_selected"
	RefundStatusUpdatedTopic   = "refunds.status_updated"
	PaymentsDLQTopic           = "payments.dlq"
)

type PaymentCreatedEvent struct {
	PaymentID     string          `json:"payment_id"`
	PayerID       string          `json:"payer_id"`
	PayeeID       string          `json:"payee_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PaymentStatusUpdatedEvent struct {
	PaymentID     string          `json:"payment_id"`
	OldStatus     string          `json:"old_status"`
	NewStatus     string          `json:"new_status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Actor         string          `json:"actor"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentMethodSelectedEvent struct {
	PaymentID     string          `json:"payment_id"`
	MethodKind    string          `json:"method_kind"`
	MethodFamily  string          `json:"method_family"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	SelectedAt    time.Time       `json:"selected_at"`
}

type RefundStatusUpdatedEvent struct {
	RefundID  string          `json:"refund_id"`
	PaymentID string          `json:"payment_id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	Actor     string          `json:"actor"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
