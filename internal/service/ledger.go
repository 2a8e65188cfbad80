package service

import (
	"context"

	"github.com/openpago/payments-core/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AccountRepo defines the persistence operations the ledger relies on. The
// balance mutations must be atomic conditional updates so concurrent
// confirmations against the same payer cannot both pass the sufficiency check.
type AccountRepo interface {
	GetByUserID(ctx context.Context, userID string) (*models.Account, error)
	DeductBalance(ctx context.Context, accountID string, amount decimal.Decimal) (*models.Account, error)
	AddBalance(ctx context.Context, accountID string, amount decimal.Decimal) (*models.Account, error)
}

// LedgerService is the only mutator of monetary balance. Merchant accounts
// carry no balance concept: sufficiency is always true and deduct/add are
// pass-through no-ops.
type LedgerService struct {
	Accounts AccountRepo
}

func NewLedgerService(accounts AccountRepo) *LedgerService {
	return &LedgerService{Accounts: accounts}
}

func (s *LedgerService) HasSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error) {
	account, err := s.Accounts.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if !account.HoldsBalance() {
		return true, nil
	}
	return account.Balance.GreaterThanOrEqual(amount), nil
}

func (s *LedgerService) Deduct(ctx context.Context, userID string, amount decimal.Decimal) (*models.Account, error) {
	account, err := s.Accounts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.HoldsBalance() {
		return account, nil
	}

	updated, err := s.Accounts.DeductBalance(ctx, account.ID, amount)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"user_id":    userID,
		"amount":     amount.StringFixed(2),
		"balance":    updated.Balance.StringFixed(2),
	}).Info("balance deducted")

	return updated, nil
}

func (s *LedgerService) Add(ctx context.Context, userID string, amount decimal.Decimal) (*models.Account, error) {
	account, err := s.Accounts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.HoldsBalance() {
		return account, nil
	}

	updated, err := s.Accounts.AddBalance(ctx, account.ID, amount)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"user_id":    userID,
		"amount":     amount.StringFixed(2),
		"balance":    updated.Balance.StringFixed(2),
	}).Info("balance credited")

	return updated, nil
}

func (s *LedgerService) CurrentBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	account, err := s.Accounts.GetByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}
