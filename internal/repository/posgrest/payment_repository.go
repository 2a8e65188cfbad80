package posgrest

import (
	"context"

	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
	"gorm.io/gorm"
)

// PaymentRepository adds the filtered read paths on top of the generic
// repository.
type PaymentRepository struct {
	*repository[models.Payment]
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		repository: New[models.Payment](db),
		db:         db,
	}
}

func (r *PaymentRepository) Search(ctx context.Context, filter dto.PaymentFilter) (*[]models.Payment, error) {
	q := r.db.WithContext(ctx).Model(&models.Payment{})
	if filter.PayerID != "" {
		q = q.Where("payer_id = ?", filter.PayerID)
	}
	if filter.PayeeID != "" {
		q = q.Where("payee_id = ?", filter.PayeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Currency != "" {
		q = q.Where("currency = ?", filter.Currency)
	}
	if filter.MinAmount != nil {
		q = q.Where("total >= ?", filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Where("total <= ?", filter.MaxAmount)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", filter.To)
	}

	var payments []models.Payment
	if err := q.Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return &payments, nil
}

// GetByStatus is the simulator's scan query.
func (r *PaymentRepository) GetByStatus(ctx context.Context, status models.PaymentStatus) (*[]models.Payment, error) {
	return r.repository.GetBy(ctx, "status = ?", status)
}
