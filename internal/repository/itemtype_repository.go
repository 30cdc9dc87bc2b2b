package repository

import (
	"context"
	"errors"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"

	"gorm.io/gorm"
)

type PostgresItemTypeRepository struct {
	db *gorm.DB
}

func NewItemTypeRepository(db *gorm.DB) ItemTypeRepository {
	return &PostgresItemTypeRepository{db: db}
}

func (r *PostgresItemTypeRepository) GetLatest(ctx context.Context) ([]itemtype.ItemType, error) {
	var items []itemtype.ItemType
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresItemTypeRepository) GetAll(ctx context.Context) ([]itemtype.ItemType, error) {
	var items []itemtype.ItemType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresItemTypeRepository) GetByID(ctx context.Context, id uint) (*itemtype.ItemType, error) {
	var it itemtype.ItemType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, registry_errors.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *PostgresItemTypeRepository) Upsert(ctx context.Context, it *itemtype.ItemType) error {
	if it.ID == 0 {
		return r.db.WithContext(ctx).Create(it).Error
	}

	res := r.db.WithContext(ctx).Save(it)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return registry_errors.ErrNotFound
	}
	return nil
}
