package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountRole string

const (
	RolePayer    AccountRole = "PAYER"
	RoleMerchant AccountRole = "MERCHANT"
)

// Account holds a user's available funds. Balance is mutated only through the
// ledger's deduct/add operations; merchant accounts carry no balance concept
// and pass every sufficiency check.
type Account struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	UserID    string          `json:"user_id" gorm:"uniqueIndex;not null"`
	Role      AccountRole     `json:"role" gorm:"not null"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:numeric(19,2)"`
	Email     string          `json:"email,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// HoldsBalance reports whether the account participates in balance checks.
func (a *Account) HoldsBalance() bool {
	return a.Role == RolePayer
}

// RoundAmount normalizes a generated amount to the ledger scale: two
// fractional digits, half-up.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
