package posgrest

import (
	"context"

	"gorm.io/gorm"
)

type repository[T interface{}] struct {
	db *gorm.DB
}

func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

func (r *repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return &entities, nil
}

func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entity []T
	if err := r.db.WithContext(ctx).Where(key, value).Find(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetByOrdered behaves like GetBy with an explicit ORDER BY clause; the
// event and attempt timelines depend on it.
func (r *repository[T]) GetByOrdered(ctx context.Context, key string, value interface{}, order string) (*[]T, error) {
	var entity []T
	if err := r.db.WithContext(ctx).Where(key, value).Order(order).Find(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// CountBy returns the number of rows matching key = value.
func (r *repository[T]) CountBy(ctx context.Context, key string, value interface{}) (int64, error) {
	var model T
	var count int64
	if err := r.db.WithContext(ctx).Model(&model).Where(key, value).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save writes every field of the entity, zero values included. State
// transitions rely on it to clear flags like rejected_by_balance.
func (r *repository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}
