package posgrest

import (
	"context"
	"errors"

	"github.com/openpago/payments-core/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountRepository extends the generic repository with the atomic balance
// mutations the ledger needs. The conditional decrement closes the
// check-then-act window: two concurrent confirmations against the same payer
// cannot both pass the sufficiency guard inside the UPDATE.
type AccountRepository struct {
	*repository[models.Account]
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		repository: New[models.Account](db),
		db:         db,
	}
}

func (r *AccountRepository) GetByUserID(ctx context.Context, userID string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "account", ID: userID}
		}
		return nil, err
	}
	return &account, nil
}

// DeductBalance runs `balance = balance - amount WHERE balance >= amount`.
// Zero rows affected on an existing account means insufficient funds; the
// returned error carries the balance observed after the failed attempt.
func (r *AccountRepository) DeductBalance(ctx context.Context, accountID string, amount decimal.Decimal) (*models.Account, error) {
	res := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND balance >= ?", accountID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		account, err := r.repository.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &models.NotFoundError{Entity: "account", ID: accountID}
			}
			return nil, err
		}
		return nil, &models.InsufficientBalanceError{
			AccountID: accountID,
			Balance:   account.Balance,
			Required:  amount,
		}
	}
	return r.repository.GetByID(ctx, accountID)
}

// AddBalance credits the account unconditionally.
func (r *AccountRepository) AddBalance(ctx context.Context, accountID string, amount decimal.Decimal) (*models.Account, error) {
	res := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &models.NotFoundError{Entity: "account", ID: accountID}
	}
	return r.repository.GetByID(ctx, accountID)
}
