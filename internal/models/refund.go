package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RefundStatus string

const (
	RefundPending  RefundStatus = "PENDING"
	RefundApproved RefundStatus = "APPROVED"
	RefundDeclined RefundStatus = "DECLINED"
	RefundPartial  RefundStatus = "PARTIAL_REFUND"
	RefundTotal    RefundStatus = "TOTAL_REFUND"
	RefundFailed   RefundStatus = "FAILED"
)

// Refund is a post-settlement compensating flow against an approved payment.
type Refund struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	PaymentID   string          `json:"payment_id" gorm:"index;not null"`
	RequesterID string          `json:"requester_id" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(19,2)"`
	Reason      string          `json:"reason,omitempty"`
	Status      RefundStatus    `json:"status" gorm:"index;not null"`
	Message     string          `json:"message,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`
}

func (r *Refund) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

// IsActive reports whether the refund still blocks new refunds on the same
// payment. Only PENDING refunds are active.
func (s RefundStatus) IsActive() bool {
	return s == RefundPending
}

// IsApproved covers every status that represents committed refunded funds.
func (s RefundStatus) IsApproved() bool {
	switch s {
	case RefundApproved, RefundPartial, RefundTotal:
		return true
	default:
		return false
	}
}
