package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptStatus string

const (
	AttemptPending  AttemptStatus = "PENDING"
	AttemptApproved AttemptStatus = "APPROVED"
	AttemptRejected AttemptStatus = "REJECTED"
)

// PaymentAttempt records a single confirmation try against a payment.
// Attempts are append-only; Number is assigned from the count of prior
// attempts for the same payment.
type PaymentAttempt struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	PaymentID     string        `json:"payment_id" gorm:"index;not null"`
	Number        int           `json:"number" gorm:"not null"`
	Status        AttemptStatus `json:"status" gorm:"not null"`
	ResponseCode  string        `json:"response_code,omitempty"`
	GatewayCode   string        `json:"gateway_code,omitempty"`
	Message       string        `json:"message,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
}

func (a *PaymentAttempt) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// IsTerminal reports whether the attempt reached a final outcome.
func (s AttemptStatus) IsTerminal() bool {
	return s == AttemptApproved || s == AttemptRejected
}
