package database

import (
	"math/rand"
	"time"

	"github.com/openpago/payments-core/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedAccounts creates a few demo accounts. Payer balances are randomized and
// normalized to the ledger scale (two decimals, half-up) at generation time.
func SeedAccounts(db *gorm.DB) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	accounts := []models.Account{
		{
			ID:      "acc-1",
			UserID:  "user_1",
			Role:    models.RolePayer,
			Balance: randomBalance(rng, 10000),
			Email:   "alice@example.com",
		},
		{
			ID:      "acc-2",
			UserID:  "user_2",
			Role:    models.RolePayer,
			Balance: randomBalance(rng, 5000),
			Email:   "bob@example.com",
		},
		{
			ID:      "acc-3",
			UserID:  "user_3",
			Role:    models.RolePayer,
			Balance: randomBalance(rng, 2000),
			Email:   "carol@example.com",
		},
		{
			ID:     "acc-100",
			UserID: "merchant_1",
			Role:   models.RoleMerchant,
			Email:  "store@example.com",
		},
	}

	for _, account := range accounts {
		result := db.Where(models.Account{ID: account.ID}).FirstOrCreate(&account)
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.Info("accounts seeded successfully")
	return nil
}

func randomBalance(rng *rand.Rand, max float64) decimal.Decimal {
	return models.RoundAmount(decimal.NewFromFloat(rng.Float64() * max))
}
