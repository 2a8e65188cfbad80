package models

import "time"

const (
	PaymentExpireRequestedTopic = "payments.expire.requested"
)

// PaymentExpireRequestedEvent is emitted by the external scheduler that owns
// expiry deadlines; the core never infers expiry from reads.
type PaymentExpireRequestedEvent struct {
	PaymentID   string    `json:"payment_id"`
	RequestedAt time.Time `json:"requested_at"`
}
