package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentEventType string

const (
	EventPaymentCreated   PaymentEventType = "PAYMENT_CREATED"
	EventPaymentPending   PaymentEventType = "PAYMENT_PENDING"
	EventPaymentApproved  PaymentEventType = "PAYMENT_APPROVED"
	EventPaymentRejected  PaymentEventType = "PAYMENT_REJECTED"
	EventPaymentCancelled PaymentEventType = "PAYMENT_CANCELLED"
	EventPaymentExpired   PaymentEventType = "PAYMENT_EXPIRED"
	EventPaymentRetried   PaymentEventType = "PAYMENT_RETRIED"
	EventMethodSelected   PaymentEventType = "METHOD_SELECTED"
	EventRefundRequested  PaymentEventType = "REFUND_REQUESTED"
	EventRefundApproved   PaymentEventType = "REFUND_APPROVED"
	EventRefundDeclined   PaymentEventType = "REFUND_DECLINED"

	ActorSystem        = "system"
	ActorBankSimulator = "bank_simulator"
)

// PaymentEvent is one entry in a payment's append-only audit trail. Rows are
// only ever inserted and read, never updated or deleted; ordering by CreatedAt
// per payment forms the timeline.
type PaymentEvent struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	PaymentID string           `json:"payment_id" gorm:"index;not null"`
	Type      PaymentEventType `json:"type" gorm:"not null"`
	Payload   string           `json:"payload"`
	Actor     string           `json:"actor" gorm:"not null"`
	CreatedAt time.Time        `json:"created_at"`
}

func (e *PaymentEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

// UserActor formats the actor label for a user-initiated transition.
func UserActor(userID string) string {
	return "user_" + userID
}
